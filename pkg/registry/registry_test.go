package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

func TestRegisterAndGet(t *testing.T) {
	reg := New[item]()
	assert.Equal(t, 0, reg.Count())

	require.NoError(t, reg.Register("b", item{ID: 1, Name: "bee"}))
	require.NoError(t, reg.Register("a", item{ID: 2, Name: "ay"}))

	got, err := reg.Get("b")
	require.NoError(t, err)
	assert.Equal(t, item{ID: 1, Name: "bee"}, got)
	assert.True(t, reg.Has("a"))
	assert.False(t, reg.Has("c"))
	assert.Equal(t, 2, reg.Count())
}

func TestRegisterEmptyName(t *testing.T) {
	reg := New[item]()

	err := reg.Register("", item{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, 0, reg.Count())
}

func TestGetMissing(t *testing.T) {
	reg := New[item]()

	got, err := reg.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["name"])
	assert.Equal(t, item{}, got)
}

func TestOrdering(t *testing.T) {
	reg := New[item]()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(name, item{ID: i}))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.List())
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Ordered())
	assert.Equal(t, []item{{ID: 0}, {ID: 1}, {ID: 2}}, reg.Values())
}

func TestReRegisterKeepsPosition(t *testing.T) {
	reg := New[item]()
	require.NoError(t, reg.Register("first", item{ID: 1}))
	require.NoError(t, reg.Register("second", item{ID: 2}))
	require.NoError(t, reg.Register("first", item{ID: 10}))

	assert.Equal(t, []string{"first", "second"}, reg.Ordered())
	assert.Equal(t, 2, reg.Count())

	got, err := reg.Get("first")
	require.NoError(t, err)
	assert.Equal(t, 10, got.ID)
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	reg := New[item]()
	require.NoError(t, reg.Register("x", item{ID: 1}))

	names := reg.Ordered()
	names[0] = "changed"
	values := reg.Values()
	values[0].ID = 99

	assert.Equal(t, []string{"x"}, reg.Ordered())
	assert.Equal(t, 1, reg.Values()[0].ID)
}

func TestConcurrentRegister(t *testing.T) {
	reg := New[item]()
	const workers = 10
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				assert.NoError(t, reg.Register(fmt.Sprintf("w%d-%d", w, i), item{ID: w*perWorker + i}))
				_ = reg.Has("w0-0")
				_ = reg.List()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, reg.Count())
	assert.Len(t, reg.Ordered(), workers*perWorker)
}

func TestMustRegister(t *testing.T) {
	reg := New[item]()

	MustRegister(reg, "ok", item{ID: 1})
	assert.True(t, reg.Has("ok"))

	assert.Panics(t, func() { MustRegister(reg, "", item{}) })
}
