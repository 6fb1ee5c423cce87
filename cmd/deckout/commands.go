package deckout

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/deckout/internal/version"
	"github.com/arthur-debert/deckout/pkg/config"
	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/logging"
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/ui"
	"github.com/arthur-debert/deckout/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity   int
	outputStyle string
	configPath  string
}

// renderer returns the ui renderer selected by --output-style
func (g *globalOptions) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.outputStyle)
	if err != nil {
		return nil, fmt.Errorf(MsgErrOutputStyle, err)
	}
	return ui.NewRenderer(format, w)
}

// loadConfig loads the layered configuration. A -v flag overrides
// logging.verbosity; without one the configured verbosity takes effect.
func (g *globalOptions) loadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if g.verbosity > 0 {
		overrides["logging.verbosity"] = g.verbosity
	}

	cfg, err := config.Load(config.LoadOptions{
		UserConfigPath: g.configPath,
		Overrides:      overrides,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Logging.Verbosity != g.verbosity {
		logging.SetupLogger(cfg.Logging.Verbosity)
	}
	return cfg, nil
}

// NewRootCmd creates the root command. Every command resolves formats
// through reg.
func NewRootCmd(reg *output.Registry) *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "deckout",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.outputStyle, "output-style", "auto", MsgFlagOutputStyle)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	_ = rootCmd.RegisterFlagCompletionFunc("output-style", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newExportCmd(reg, opts))
	rootCmd.AddCommand(newFormatsCmd(reg, opts))
	rootCmd.AddCommand(newOptionsCmd(reg, opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	initTopics(rootCmd)

	return rootCmd
}

// formatNamesCompletion completes a single format name argument
func formatNamesCompletion(reg *output.Registry) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return reg.ListNames(), cobra.ShellCompDirectiveNoFileComp
	}
}

func newExportCmd(reg *output.Registry, opts *globalOptions) *cobra.Command {
	var req exportRequest

	cmd := &cobra.Command{
		Use:     "export <deck.md>",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"md", "markdown"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			req.Source = args[0]
			result, err := runExport(reg, cfg, req)
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&req.Format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVarP(&req.Output, "output", "O", "", MsgFlagOutput)
	// StringArray keeps commas inside list values intact
	cmd.Flags().StringArrayVarP(&req.Options, "option", "o", nil, MsgFlagOption)

	_ = cmd.RegisterFlagCompletionFunc("format", formatNamesCompletion(reg))
	_ = cmd.RegisterFlagCompletionFunc("option", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return reg.ListOptions(), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	})

	return cmd
}

func newFormatsCmd(reg *output.Registry, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "formats",
		Short:   MsgFormatsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(display.NewFormatList(reg.Formats()))
		},
	}
}

func newOptionsCmd(reg *output.Registry, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "options [format]",
		Short:             MsgOptionsShort,
		Long:              MsgOptionsLong,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: formatNamesCompletion(reg),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			descs := reg.Formats()
			if len(args) == 1 {
				d, err := reg.Lookup(args[0])
				if err != nil {
					return err
				}
				descs = []output.Descriptor{d}
			}
			return renderer.RenderResult(display.NewOptionList(descs))
		},
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			if format, _ := ui.ParseFormat(opts.outputStyle); format == ui.FormatJSON {
				renderer, err := opts.renderer(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				return renderer.RenderResult(cfg)
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "DECKOUT",
				Section: "1",
				Source:  "deckout " + version.Version,
				Manual:  "deckout manual",
			}
			if err := doc.GenMan(cmd.Root(), header, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf(MsgErrGenerateMan, err)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.String())
			return err
		},
	}
}

// PrintError writes err to w in the error style, the way main reports a
// failed command
func PrintError(w io.Writer, err error) {
	renderer, rerr := ui.NewRenderer(ui.FormatAuto, w)
	if rerr != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	_ = renderer.RenderError(err)
}

// Execute builds the root command and runs it with the process arguments,
// returning the exit code
func Execute(reg *output.Registry) int {
	rootCmd := NewRootCmd(reg)
	if err := rootCmd.Execute(); err != nil {
		PrintError(os.Stderr, err)
		return 1
	}
	return 0
}
