package deckout

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/deckout/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs the help command with the embedded help topics
func initTopics(rootCmd *cobra.Command) {
	fsys, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.Initialize(rootCmd, fsys, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
