package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/deckout/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_format_error",
			code:    errors.ErrUnknownFormat,
			message: "format \"pdf\" is not registered",
			wantStr: "[UNKNOWN_FORMAT] format \"pdf\" is not registered",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid option key",
			wantStr: "[INVALID_INPUT] invalid option key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrCoercion, "option value %q could not be converted to %s", "abc", "int")
	want := `option value "abc" could not be converted to int`
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("disk full")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileWrite, "cannot write deck.html")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}
		wantStr := "[FILE_WRITE] cannot write deck.html: disk full"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrUnknownOption, "unknown option").
		WithDetail("format", "html").
		WithDetails(map[string]interface{}{
			"option": "nope",
			"valid":  []string{"title", "width"},
		})

	details := errors.GetErrorDetails(err)
	if details["format"] != "html" {
		t.Errorf("format detail = %v, want html", details["format"])
	}
	if details["option"] != "nope" {
		t.Errorf("option detail = %v, want nope", details["option"])
	}
	if valid, ok := details["valid"].([]string); !ok || len(valid) != 2 {
		t.Errorf("valid detail = %v, want two names", details["valid"])
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnknownFormat, "error 1")
	err2 := errors.New(errors.ErrUnknownFormat, "error 2")
	err3 := errors.New(errors.ErrCoercion, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match errors with the same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrCoercion, "bad int"),
			code:     errors.ErrCoercion,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrCoercion, "bad int"),
			code:     errors.ErrUnknownOption,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read deck")
	renderErr := errors.Wrap(fileErr, errors.ErrRender, "export failed")

	if errors.GetErrorCode(renderErr) != errors.ErrRender {
		t.Error("top level should have ErrRender code")
	}

	var inner *errors.Error
	if !stderrors.As(renderErr.Unwrap(), &inner) || inner.Code != errors.ErrFileAccess {
		t.Error("middle error should have ErrFileAccess code")
	}

	if !stderrors.Is(renderErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
