package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"DBFile", cfg.DBFile, DBFileName},
		{"Verbose", cfg.Verbose, false},
		{"Theme", cfg.Theme, "night"},
		{"Prince.Endpoint", cfg.Prince.Endpoint, ""},
		{"Prince.Timeout", cfg.Prince.Timeout, 8 * time.Second},
		{"Server.Addr", cfg.Server.Addr, ":3001"},
		{"Claude.Path", cfg.Claude.Path, "claude"},
		{"Claude.Model", cfg.Claude.Model, ""},
		{"Claude.MaxBudgetUSD", cfg.Claude.MaxBudgetUSD, 0.05},
		{"Claude.Disabled", cfg.Claude.Disabled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
	if cfg.DataDir == "" {
		t.Error("DataDir should not be empty")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "db_file",
			envKey: "LITTLEPRINCE_DB_FILE",
			envVal: "sky.db",
			field:  func(c Config) any { return c.DBFile },
			want:   "sky.db",
		},
		{
			name:   "verbose",
			envKey: "LITTLEPRINCE_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
		{
			name:   "prince.endpoint",
			envKey: "LITTLEPRINCE_PRINCE_ENDPOINT",
			envVal: "http://localhost:3001/api/prince",
			field:  func(c Config) any { return c.Prince.Endpoint },
			want:   "http://localhost:3001/api/prince",
		},
		{
			name:   "prince.timeout",
			envKey: "LITTLEPRINCE_PRINCE_TIMEOUT",
			envVal: "2s",
			field:  func(c Config) any { return c.Prince.Timeout },
			want:   2 * time.Second,
		},
		{
			name:   "server.addr",
			envKey: "LITTLEPRINCE_SERVER_ADDR",
			envVal: "127.0.0.1:9000",
			field:  func(c Config) any { return c.Server.Addr },
			want:   "127.0.0.1:9000",
		},
		{
			name:   "claude.max_budget_usd",
			envKey: "LITTLEPRINCE_CLAUDE_MAX_BUDGET_USD",
			envVal: "0.25",
			field:  func(c Config) any { return c.Claude.MaxBudgetUSD },
			want:   0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			BindEnv(viper.GetViper())
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_NonPositiveTimeoutUsesDefault(t *testing.T) {
	v := viper.New()
	v.Set("prince.timeout", "0s")
	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Prince.Timeout != PrinceTimeout {
		t.Fatalf("expected default timeout, got %v", cfg.Prince.Timeout)
	}
}

func TestDBPath(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere.db")

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"relative file joins data dir", Config{DataDir: dir, DBFile: "sky.db"}, filepath.Join(dir, "sky.db")},
		{"absolute file wins", Config{DataDir: "/ignored", DBFile: abs}, abs},
		{"memory", Config{DataDir: dir, DBFile: ":memory:"}, ":memory:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DBPath(); got != tt.want {
				t.Fatalf("DBPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", ".littleprince.toml")
	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("written file is not TOML: %v", err)
	}
	if _, ok := raw["prince"].(map[string]any); !ok {
		t.Fatalf("expected [prince] table, got:\n%s", data)
	}
	if !strings.Contains(string(data), "timeout = '8s'") && !strings.Contains(string(data), `timeout = "8s"`) {
		t.Fatalf("expected readable timeout, got:\n%s", data)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("viper cannot read written config: %v", err)
	}
	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Server.Addr != DefaultServerAddr || cfg.Prince.Timeout != PrinceTimeout {
		t.Fatalf("unexpected config from file: %+v", cfg)
	}

	if err := WriteDefault(path, false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Fatalf("forced overwrite failed: %v", err)
	}
}
