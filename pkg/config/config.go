package config

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/ltime/pkg/zone"
)

// defaultFileNames are tried, in order, in the ltime config directory.
var defaultFileNames = []string{"config.yaml", "config.yml", "config.toml"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their yaml names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("zonerule", func(fl validator.FieldLevel) bool {
		_, err := zone.Parse(fl.Field().String())
		return err == nil
	})

	return v
}

// Load reads and validates a configuration file.
// An empty path searches the default locations; finding nothing there is not
// an error and yields the defaults. An explicit path must exist.
// Environment variables override values from the file.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}

// Read decodes the configuration and applies defaults and environment
// overrides without validating it. Callers that layer further overrides on
// top must call Validate before using Rule.
func Read(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	resolved, exists, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	if exists {
		if err := decodeFile(resolved, cfg); err != nil {
			return nil, err
		}
		cfg.path = resolved
	}

	cfg.applyDefaults()
	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// ResolvePath locates the configuration file. It reports whether the file
// exists; a missing explicit path is an error.
func ResolvePath(path string) (string, bool, error) {
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return "", false, errors.Wrap(err, "reading config file")
		}
		if info.IsDir() {
			return "", false, errors.Newf("reading config file: %s is a directory", path)
		}
		return path, true, nil
	}

	dir, err := DefaultDir()
	if err != nil {
		// No home directory: run on defaults.
		return "", false, nil
	}

	for _, name := range defaultFileNames {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", false, errors.Wrap(err, "checking config file")
		}
	}

	return "", false, nil
}

// DefaultDir returns the directory searched for a config file:
// $XDG_CONFIG_HOME/ltime, falling back to ~/.config/ltime.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ltime"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locating home directory")
	}
	return filepath.Join(home, ".config", "ltime"), nil
}

// decodeFile parses path into cfg, choosing the format by extension.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return errors.Wrap(err, "parsing config file")
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errors.Wrap(err, "parsing config file")
		}
	}
	return nil
}

// Validate checks a configuration for errors and parses the timezone rule.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return describeFieldError(verrs[0])
		}
		return errors.Wrap(err, "struct validation failed")
	}

	rule, err := zone.Parse(cfg.Timezone)
	if err != nil {
		return errors.Wrap(err, "timezone")
	}
	cfg.rule = rule

	return nil
}

func describeFieldError(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "zonerule":
		return errors.Newf("%s: %q is not local, utc, a ±HH:MM offset or an IANA zone name", field, fe.Value())
	case "oneof":
		return errors.Newf("%s: invalid value %q (must be one of: %s)", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return errors.Newf("%s: failed %q validation", field, fe.Tag())
	}
}
