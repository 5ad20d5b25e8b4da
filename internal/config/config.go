// Package config loads featgen settings from a YAML file and FEATGEN_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	KeyLanguage          = "language"
	KeyComponentFileCase = "component_file_case"
	KeyCopyPath          = "copy_path"
	KeyMinVersion        = "min_version"

	// LanguageAuto picks ts or js from the target project.
	LanguageAuto = "auto"

	EnvPrefix     = "FEATGEN"
	LocalFileName = ".featgen.yaml"
)

// ErrInvalid means a config file does not match the schema.
var ErrInvalid = errors.New("invalid config")

// Config is the effective configuration.
type Config struct {
	Language          string `mapstructure:"language" yaml:"language"`
	ComponentFileCase string `mapstructure:"component_file_case" yaml:"component_file_case"`
	CopyPath          bool   `mapstructure:"copy_path" yaml:"copy_path"`
	MinVersion        string `mapstructure:"min_version" yaml:"min_version,omitempty"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Language:          "ts",
		ComponentFileCase: "pascal",
	}
}

// Options control where Load looks.
type Options struct {
	FS afero.Fs
	// File is an explicit config path. It must exist.
	File    string
	WorkDir string
	HomeDir string
}

// UserFile returns the per-user config path under home.
func UserFile(home string) string {
	return filepath.Join(home, ".config", "featgen", "config.yaml")
}

// Load reads the first config file found, in order: o.File, .featgen.yaml
// in o.WorkDir, then the per-user file. A missing file is not an error
// unless it was named explicitly.
func Load(o Options) (Config, error) {
	if o.FS == nil {
		o.FS = afero.NewOsFs()
	}

	v := viper.New()
	v.SetFs(o.FS)
	v.SetConfigType("yaml")
	d := Defaults()
	v.SetDefault(KeyLanguage, d.Language)
	v.SetDefault(KeyComponentFileCase, d.ComponentFileCase)
	v.SetDefault(KeyCopyPath, d.CopyPath)
	v.SetDefault(KeyMinVersion, d.MinVersion)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	file, err := locate(o)
	if err != nil {
		return Config{}, err
	}
	if file != "" {
		data, err := afero.ReadFile(o.FS, file)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
		res, err := Validate(data)
		if err != nil {
			return Config{}, fmt.Errorf("validating config %s: %w", file, err)
		}
		if !res.Valid {
			return Config{}, fmt.Errorf("%w: %s: %s", ErrInvalid, file, res)
		}
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("loading config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = file
	if err := cfg.check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func locate(o Options) (string, error) {
	if o.File != "" {
		ok, err := afero.Exists(o.FS, o.File)
		if err != nil {
			return "", fmt.Errorf("checking config %s: %w", o.File, err)
		}
		if !ok {
			return "", fmt.Errorf("config %s: %w", o.File, os.ErrNotExist)
		}
		return o.File, nil
	}

	home := o.HomeDir
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	var candidates []string
	if o.WorkDir != "" {
		candidates = append(candidates, filepath.Join(o.WorkDir, LocalFileName))
	}
	if home != "" {
		candidates = append(candidates, UserFile(home))
	}
	for _, c := range candidates {
		if ok, _ := afero.Exists(o.FS, c); ok {
			return c, nil
		}
	}
	return "", nil
}

// check rejects values that came in through the environment, which the
// schema never sees.
func (c Config) check() error {
	switch c.Language {
	case "ts", "js", LanguageAuto:
	default:
		return fmt.Errorf("%w: %s must be ts, js or auto, got %q", ErrInvalid, KeyLanguage, c.Language)
	}
	switch c.ComponentFileCase {
	case "pascal", "param":
	default:
		return fmt.Errorf("%w: %s must be pascal or param, got %q", ErrInvalid, KeyComponentFileCase, c.ComponentFileCase)
	}
	return nil
}

// Marshal renders c as YAML.
func Marshal(c Config) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}

// Init writes the default configuration to path. An existing file is kept
// unless force is set.
func Init(fsys afero.Fs, path string, force bool) error {
	if !force {
		ok, err := afero.Exists(fsys, path)
		if err != nil {
			return fmt.Errorf("checking config %s: %w", path, err)
		}
		if ok {
			return fmt.Errorf("config %s: %w", path, os.ErrExist)
		}
	}
	data, err := Marshal(Defaults())
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
