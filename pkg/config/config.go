package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "DECKOUT_"

// ProjectConfigNames are the project config file names, in lookup order
var ProjectConfigNames = []string{".deckout.toml", "deckout.toml"}

// Config is the effective deckout configuration
type Config struct {
	Output  OutputConfig  `koanf:"output" toml:"output" json:"output"`
	Logging LoggingConfig `koanf:"logging" toml:"logging" json:"logging"`
}

// OutputConfig holds export defaults
type OutputConfig struct {
	Format    string   `koanf:"format" toml:"format" json:"format"`
	Options   []string `koanf:"options" toml:"options" json:"options"`
	Directory string   `koanf:"directory" toml:"directory" json:"directory"`
}

// LoggingConfig holds logging defaults
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity" json:"verbosity"`
}

// LoadOptions controls where Load looks for configuration
type LoadOptions struct {
	// WorkDir is searched for a project config; "" means the current directory
	WorkDir string
	// UserConfigPath overrides the XDG user config location
	UserConfigPath string
	// SkipEnv disables the environment layer
	SkipEnv bool
	// Overrides are dotted keys applied last, e.g. from command line flags
	Overrides map[string]interface{}
}

// UserConfigPath returns the default user config location
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "deckout", "config.toml")
}

// Load builds the effective configuration from every layer
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = UserConfigPath()
	}
	if err := loadFile(k, userPath); err != nil {
		return nil, err
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	for _, name := range ProjectConfigNames {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			break
		}
	}

	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Debug().
		Str("format", cfg.Output.Format).
		Strs("options", cfg.Output.Options).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// OutputPath derives the export destination for input when none was given:
// the input's base name with extension, placed in Output.Directory or next
// to the input.
func (c *Config) OutputPath(input, extension string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + extension
	if c.Output.Directory != "" {
		return filepath.Join(c.Output.Directory, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode configuration")
	}
	return data, nil
}
