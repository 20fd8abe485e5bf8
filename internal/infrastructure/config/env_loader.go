package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvLoader applies TABSEARCH_* environment variables over a Config
type EnvLoader struct {
	lookup func(string) (string, bool)
}

// NewEnvLoader creates an EnvLoader reading the process environment
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{lookup: os.LookupEnv}
}

// Apply overrides fields of cfg from the environment
func (l *EnvLoader) Apply(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := l.lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("TABSEARCH_INVENTORY", &cfg.Inventory.Path)
	str("TABSEARCH_MODE", &cfg.Context.Mode)
	str("TABSEARCH_OBJECT_TYPE", &cfg.Context.ObjectType)
	str("TABSEARCH_LOG_LEVEL", &cfg.Log.Level)
	str("TABSEARCH_LOG_FILE", &cfg.Log.File)

	if v, ok := l.lookup("TABSEARCH_ADDONS"); ok {
		cfg.Context.Addons = splitList(v)
	}

	if v, ok := l.lookup("TABSEARCH_WATCH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TABSEARCH_WATCH: %w", err)
		}
		cfg.Inventory.Watch = b
	}

	if v, ok := l.lookup("TABSEARCH_SIDEBAR_RETRIES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TABSEARCH_SIDEBAR_RETRIES: %w", err)
		}
		cfg.Sidebar.Retries = n
	}

	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
