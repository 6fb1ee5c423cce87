package deckout

import (
	"github.com/arthur-debert/deckout/pkg/config"
	"github.com/arthur-debert/deckout/pkg/logging"
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/presentation"
	"github.com/arthur-debert/deckout/pkg/ui/display"
)

// exportRequest carries the export command's arguments and flags
type exportRequest struct {
	Source  string
	Format  string
	Output  string
	Options []string
}

// runExport loads the deck at req.Source and renders it.
//
// An empty format falls back to the configured one and an empty output
// path is derived from the source. Configured option tokens are parsed
// ahead of req.Options so the command line wins.
func runExport(reg *output.Registry, cfg *config.Config, req exportRequest) (*display.ExportResult, error) {
	logger := logging.GetLogger("export")

	format := req.Format
	if format == "" {
		format = cfg.Output.Format
	}
	d, err := reg.GetFormat(format)
	if err != nil {
		return nil, err
	}

	pres, err := presentation.Load(req.Source)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(cfg.Output.Options)+len(req.Options))
	tokens = append(tokens, cfg.Output.Options...)
	tokens = append(tokens, req.Options...)
	resolved := reg.ParseOptions(tokens)

	path := req.Output
	if path == "" {
		path = cfg.OutputPath(req.Source, d.Extension)
	}

	logger.Info().
		Str("source", req.Source).
		Str("format", d.Name).
		Str("path", path).
		Msg("Exporting presentation")

	if err := reg.Render(pres, path, d.Name, resolved); err != nil {
		return nil, err
	}

	return &display.ExportResult{
		Source: req.Source,
		Title:  pres.Title(""),
		Format: d.Name,
		Path:   path,
		Slides: len(pres.Slides),
	}, nil
}
