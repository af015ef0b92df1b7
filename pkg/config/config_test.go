package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	_ "time/tzdata"
)

// isolate keeps tests away from the real user config and environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvTimezone, "")
	t.Setenv(EnvLogLevel, "")
	return dir
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	isolate(t)
	content := `
timezone: Asia/Tokyo
log:
  level: debug
  format: json
`
	path := writeTempFile(t, "config.yaml", content)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timezone != "Asia/Tokyo" {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, "Asia/Tokyo")
	}
	if cfg.Rule() == nil || cfg.Rule().String() != "Asia/Tokyo" {
		t.Errorf("Rule() = %v, want Asia/Tokyo", cfg.Rule())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_TOML(t *testing.T) {
	isolate(t)
	content := `
timezone = "+09:00"

[log]
level = "info"
`
	path := writeTempFile(t, "config.toml", content)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rule().String() != "+09:00" {
		t.Errorf("Rule() = %s, want +09:00", cfg.Rule())
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want default %q", cfg.Log.Format, DefaultLogFormat)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timezone != DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, DefaultTimezone)
	}
	if cfg.Rule().String() != "Local" {
		t.Errorf("Rule() = %s, want Local", cfg.Rule())
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(filepath.Join(dir, "ltime"), 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "ltime", "config.yaml")
	if err := os.WriteFile(path, []byte("timezone: utc\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if cfg.Rule().String() != "+00:00" {
		t.Errorf("Rule() = %s, want +00:00", cfg.Rule())
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvTimezone, "-08:00")
	t.Setenv(EnvLogLevel, "error")

	path := writeTempFile(t, "config.yaml", "timezone: Asia/Tokyo\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rule().String() != "-08:00" {
		t.Errorf("Rule() = %s, want -08:00 from environment", cfg.Rule())
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error from environment", cfg.Log.Level)
	}
}

func TestRead_DoesNotValidate(t *testing.T) {
	isolate(t)
	t.Setenv(EnvTimezone, "Nowhere/Bogus")

	cfg, err := Read(context.Background(), "")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Timezone != "Nowhere/Bogus" {
		t.Errorf("Timezone = %q, want value from environment", cfg.Timezone)
	}
	if cfg.Rule() != nil {
		t.Errorf("Rule() = %v, want nil before Validate", cfg.Rule())
	}

	cfg.Timezone = "+09:00"
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Rule().String() != "+09:00" {
		t.Errorf("Rule() = %s, want +09:00", cfg.Rule())
	}

	if _, err := Load(context.Background(), ""); err == nil {
		t.Error("Load() expected error for bad environment timezone")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	isolate(t)
	_, err := Load(context.Background(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	path := writeTempFile(t, "invalid.yaml", `invalid: yaml: content: [`)
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	isolate(t)
	path := writeTempFile(t, "invalid.toml", `timezone = `)
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for invalid TOML")
	}
}

func TestLoad_Directory(t *testing.T) {
	isolate(t)
	if _, err := Load(context.Background(), t.TempDir()); err == nil {
		t.Error("Load() expected error for a directory path")
	}
}

func TestValidate_UnknownTimezone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timezone = "Mars/Olympus_Mons"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() expected error for unknown timezone")
	}
	if !strings.Contains(err.Error(), "timezone") {
		t.Errorf("Validate() error %q does not name the field", err)
	}
}

func TestValidate_BadOffset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timezone = "+25:00"

	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for out of range offset")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "loud"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("Validate() error %q does not name log.level", err)
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Format = "xml"

	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for invalid log format")
	}
}

func TestValidate_Variants(t *testing.T) {
	tests := []struct {
		timezone string
		want     string
	}{
		{"local", "Local"},
		{"UTC", "+00:00"},
		{"+05:30", "+05:30"},
		{"Europe/Berlin", "Europe/Berlin"},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Timezone = tt.timezone
		if err := Validate(cfg); err != nil {
			t.Errorf("Validate(%q) error = %v", tt.timezone, err)
			continue
		}
		if got := cfg.Rule().String(); got != tt.want {
			t.Errorf("Validate(%q) rule = %s, want %s", tt.timezone, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.Timezone == "" {
		t.Error("DefaultConfig() has empty timezone")
	}
	if cfg.Log.Level == "" {
		t.Error("DefaultConfig() has empty log level")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("DefaultConfig() does not validate: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Timezone != DefaultTimezone || cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("applyDefaults() = %+v", cfg)
	}
}
