package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLexiconPath, "")
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvCacheSize, "")

	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != DefaultAddr || cfg.CacheSize != DefaultCacheSize || cfg.Log.Level != DefaultLogLevel {
		t.Fatalf("unexpected defaults %+v", cfg)
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected missing lexicon path to be rejected")
	}
}

func TestLoadYAML(t *testing.T) {
	t.Setenv(EnvLexiconPath, "")
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvCacheSize, "")

	path := writeFile(t, "wsd.yaml", `
lexicon_path: /usr/share/wordnet/dict
cache_size: 100
overlap: true
server:
  addr: ":9000"
  read_timeout: 5s
log:
  development: true
`)

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LexiconPath != "/usr/share/wordnet/dict" || cfg.CacheSize != 100 || !cfg.Overlap {
		t.Errorf("unexpected top level %+v", cfg)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("unexpected server %+v", cfg.Server)
	}
	// not in the file
	if cfg.Server.Stylesheet != "bootstrap.min.css" || !cfg.Log.Development {
		t.Errorf("expected defaults kept, got %+v", cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "wsd.yaml", "lexicon_path: /from/file\ncache_size: 100\n")

	t.Setenv(EnvLexiconPath, "/from/env")
	t.Setenv(EnvCacheSize, "7")
	t.Setenv(EnvAddr, "")

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LexiconPath != "/from/env" || cfg.CacheSize != 7 {
		t.Fatalf("expected env to win, got %+v", cfg)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv(EnvLexiconPath, "")
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvCacheSize, "")
	os.Unsetenv(EnvAddr)

	env := writeFile(t, ".env", "WSD_ADDR=127.0.0.1:7000\n")

	cfg, err := Load("", env)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Fatalf("expected addr from .env, got %s", cfg.Server.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvCacheSize, "")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}

	bad := writeFile(t, "bad.yaml", "cache_size: [1, 2]\n")
	if _, err := Load(bad, filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for malformed config file")
	}

	t.Setenv(EnvCacheSize, "many")
	if _, err := Load("", filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for non numeric cache size")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LexiconPath = "/dict"
	cfg.CacheSize = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected non positive cache size to be rejected")
	}
}
