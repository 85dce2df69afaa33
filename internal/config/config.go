package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/jadiha/little-prince/internal/util"
)

// PrinceConfig controls the flavor-text client.
type PrinceConfig struct {
	// Endpoint is a proxy URL such as http://localhost:3001/api/prince. When
	// empty the claude CLI is invoked directly.
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type ClaudeConfig struct {
	Path         string  `mapstructure:"path"`
	Model        string  `mapstructure:"model"`
	MaxBudgetUSD float64 `mapstructure:"max_budget_usd"`
	Disabled     bool    `mapstructure:"disabled"`
}

// Config holds all runtime configuration. Values are populated from
// .littleprince.toml, LITTLEPRINCE_* env vars and CLI flags.
type Config struct {
	DataDir string       `mapstructure:"data_dir"`
	DBFile  string       `mapstructure:"db_file"`
	Verbose bool         `mapstructure:"verbose"`
	Theme   string       `mapstructure:"theme"`
	Prince  PrinceConfig `mapstructure:"prince"`
	Server  ServerConfig `mapstructure:"server"`
	Claude  ClaudeConfig `mapstructure:"claude"`
}

// Defaults returns the built-in value of every config key, keyed by its
// dotted viper name.
func Defaults() map[string]any {
	return map[string]any{
		"data_dir":              util.DataDir(AppName),
		"db_file":               DBFileName,
		"verbose":               false,
		"theme":                 "night",
		"prince.endpoint":       "",
		"prince.timeout":        PrinceTimeout.String(),
		"server.addr":           DefaultServerAddr,
		"claude.path":           DefaultClaudePath,
		"claude.model":          "",
		"claude.max_budget_usd": DefaultClaudeBudget,
		"claude.disabled":       false,
	}
}

// BindEnv maps LITTLEPRINCE_* variables onto config keys, with nested keys
// joined by underscores (LITTLEPRINCE_PRINCE_TIMEOUT).
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from the global viper instance, applying built-in
// defaults for any values not set by config file, environment or flags.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (Config, error) {
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.DataDir = util.ExpandHome(cfg.DataDir)
	if cfg.Prince.Timeout <= 0 {
		cfg.Prince.Timeout = PrinceTimeout
	}
	return cfg, nil
}

// DBPath is the SQLite file location. An absolute db_file wins over data_dir.
func (c Config) DBPath() string {
	file := util.ExpandHome(c.DBFile)
	if file == ":memory:" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

// WriteDefault writes a TOML config file holding every default. It refuses to
// overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}
	data, err := toml.Marshal(nest(Defaults()))
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// nest turns dotted keys into the nested tables TOML expects.
func nest(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := map[string]any{}
	for _, k := range keys {
		parts := strings.Split(k, ".")
		table := out
		for _, p := range parts[:len(parts)-1] {
			sub, ok := table[p].(map[string]any)
			if !ok {
				sub = map[string]any{}
				table[p] = sub
			}
			table = sub
		}
		table[parts[len(parts)-1]] = flat[k]
	}
	return out
}
