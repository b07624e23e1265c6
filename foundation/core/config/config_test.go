package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
)

func fakeEnv(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		want    MonitorConfig
		level   string
	}{
		{
			name: "toml",
			content: `
[monitor]
number_mode = "decimal"
zero_pad = true
max_chain_depth = 16
usings = ["sysbus.", "soc."]

[log]
level = "debug"
`,
			format: FormatTOML,
			want:   MonitorConfig{NumberMode: "decimal", ZeroPad: true, MaxChainDepth: 16, Usings: []string{"sysbus.", "soc."}},
			level:  "debug",
		},
		{
			name: "yaml",
			content: `
monitor:
  number_mode: both
  usings: ["soc."]
log:
  level: warn
`,
			format: FormatYAML,
			want:   MonitorConfig{NumberMode: "both", Usings: []string{"soc."}},
			level:  "warn",
		},
		{
			name:    "empty toml keeps defaults",
			content: "",
			format:  FormatTOML,
			want:    MonitorConfig{NumberMode: "hex", Usings: []string{"sysbus."}},
			level:   "info",
		},
		{
			name:    "empty yaml keeps defaults",
			content: "",
			format:  FormatYAML,
			want:    MonitorConfig{NumberMode: "hex", Usings: []string{"sysbus."}},
			level:   "info",
		},
		{
			name:    "auto is toml",
			content: "[monitor]\nnumber_mode = \"dec\"\n",
			format:  FormatAuto,
			want:    MonitorConfig{NumberMode: "dec", Usings: []string{"sysbus."}},
			level:   "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg.Monitor); diff != "" {
				t.Errorf("Monitor mismatch (-want +got):\n%s", diff)
			}
			if cfg.Log.Level != tt.level {
				t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, tt.level)
			}
		})
	}
}

func TestLoadFromStringErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		message string
	}{
		{"toml syntax", "[monitor\n", FormatTOML, "failed to parse"},
		{"toml unknown key", "[monitor]\ncolour = true\n", FormatTOML, "failed to parse"},
		{"yaml unknown key", "monitor:\n  colour: true\n", FormatYAML, "failed to parse"},
		{"bad number mode", "[monitor]\nnumber_mode = \"octal\"\n", FormatTOML, "monitor.number_mode"},
		{"negative depth", "[monitor]\nmax_chain_depth = -1\n", FormatTOML, "monitor.max_chain_depth"},
		{"using without dot", "[monitor]\nusings = [\"sysbus\"]\n", FormatTOML, "monitor.usings[0]"},
		{"bad log level", "[log]\nlevel = \"loud\"\n", FormatTOML, "log.level"},
		{"bad log format", "[log]\nformat = \"xml\"\n", FormatTOML, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, tt.format)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("code = %s, want %s", mdwerror.GetCode(err), mdwerror.CodeInvalidConfig)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.message)
			}
		})
	}
}

func TestLoadWithOptions(t *testing.T) {
	dir := t.TempDir()
	tomlPath := writeFile(t, dir, "devmon.toml", "[monitor]\nnumber_mode = \"decimal\"\n")
	yamlPath := writeFile(t, dir, "devmon.yml", "monitor:\n  zero_pad: true\n")

	if got := (LoadOptions{}).Format; got != FormatAuto {
		t.Errorf("zero LoadOptions format = %v, want auto", got)
	}

	cfg, err := LoadWithOptions(tomlPath, LoadOptions{})
	if err != nil {
		t.Fatalf("load toml: %v", err)
	}
	if cfg.Monitor.NumberMode != "decimal" || cfg.Source != tomlPath {
		t.Errorf("toml config = %+v", cfg)
	}

	cfg, err = LoadWithOptions(yamlPath, LoadOptions{})
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if !cfg.Monitor.ZeroPad || cfg.Source != yamlPath {
		t.Error("yaml zero_pad was not applied")
	}

	// an explicit format overrides the extension
	if _, err := LoadWithOptions(yamlPath, LoadOptions{Format: FormatTOML}); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("yaml parsed as toml: error = %v, want INVALID_CONFIG", err)
	}

	if _, err := LoadWithOptions(filepath.Join(dir, "missing.toml"), LoadOptions{}); !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("missing file error = %v, want %s", err, mdwerror.CodeMissingConfig)
	}
	if _, err := LoadWithOptions("  ", LoadOptions{}); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("blank path error = %v, want %s", err, mdwerror.CodeInvalidInput)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "devmon.toml", "[monitor]\nnumber_mode = \"decimal\"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{
		EnvPrefix: "DEVMON",
		LookupEnv: fakeEnv(map[string]string{
			"DEVMON_MONITOR_NUMBER_MODE":     "both",
			"DEVMON_MONITOR_ZERO_PAD":        "true",
			"DEVMON_MONITOR_MAX_CHAIN_DEPTH": "8",
			"DEVMON_MONITOR_USINGS":          " sysbus. , soc.cpu. ,",
			"DEVMON_LOG_LEVEL":               "debug",
			"DEVMON_LOG_FORMAT":              "json",
		}),
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	want := &Config{
		Monitor: MonitorConfig{NumberMode: "both", ZeroPad: true, MaxChainDepth: 8, Usings: []string{"sysbus.", "soc.cpu."}},
		Log:     LogConfig{Level: "debug", Format: "json"},
		Source:  path,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverrideErrors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		variable string
	}{
		{"zero pad", map[string]string{"DEVMON_MONITOR_ZERO_PAD": "sometimes"}, "DEVMON_MONITOR_ZERO_PAD"},
		{"depth", map[string]string{"DEVMON_MONITOR_MAX_CHAIN_DEPTH": "deep"}, "DEVMON_MONITOR_MAX_CHAIN_DEPTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(LoadOptions{LookupEnv: fakeEnv(tt.env)})
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Fatalf("error = %v, want %s", err, mdwerror.CodeInvalidConfig)
			}
			var coded *mdwerror.Error
			if !errors.As(err, &coded) {
				t.Fatalf("error %T is not a *mdwerror.Error", err)
			}
			if got := coded.Details()["variable"]; got != tt.variable {
				t.Errorf("variable = %v, want %s", got, tt.variable)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		prefix, key, want string
	}{
		{"DEVMON", "monitor.number_mode", "DEVMON_MONITOR_NUMBER_MODE"},
		{"devmon", "log.level", "DEVMON_LOG_LEVEL"},
		{"", "log.format", "LOG_FORMAT"},
	}
	for _, tt := range tests {
		if got := EnvKey(tt.prefix, tt.key); got != tt.want {
			t.Errorf("EnvKey(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
		}
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Monitor.NumberMode = "roman"
	cfg.Monitor.MaxChainDepth = MaxChainDepthLimit + 1
	cfg.Log.Level = "chatty"

	result := cfg.Validate()
	if result.Valid {
		t.Fatal("expected an invalid result")
	}
	if len(result.Errors) != 3 {
		t.Errorf("errors = %v, want 3 entries", result.Errors)
	}
	if err := Default().Validate().Err(); err != nil {
		t.Errorf("defaults are invalid: %v", err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "config")
	if err := os.Mkdir(nested, 0o700); err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, nested, "devmon.yaml", "monitor:\n  number_mode: decimal\n")

	options := DiscoveryOptions{
		Paths:      []string{dir, nested},
		Filenames:  []string{"devmon"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}

	found, err := FindConfigFile(options)
	if err != nil || found != path {
		t.Fatalf("FindConfigFile() = %q, %v; want %q", found, err, path)
	}

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.Monitor.NumberMode != "decimal" || cfg.Source != path {
		t.Errorf("discovered config = %+v", cfg)
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	options := DiscoveryOptions{
		Paths:      []string{t.TempDir()},
		Filenames:  []string{"devmon"},
		Extensions: []string{".toml"},
		EnvPrefix:  "DEVMON_TEST_UNSET",
	}

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}

	options.Required = true
	if _, err := Discover(options); !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("required discovery error = %v, want %s", err, mdwerror.CodeMissingConfig)
	}
}

func TestDefaultDiscoveryOptions(t *testing.T) {
	options := DefaultDiscoveryOptions()
	if options.Paths[0] != "." || options.Filenames[0] != "devmon" || options.EnvPrefix != DefaultEnvPrefix {
		t.Errorf("DefaultDiscoveryOptions() = %+v", options)
	}
}
