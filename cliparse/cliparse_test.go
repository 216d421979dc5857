// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3001 {
		t.Errorf("expected default port 3001, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite by default, got %q", cfg.DatabaseType)
	}
	if cfg.SpecialPrizeChance != 0.01 {
		t.Errorf("expected special chance 0.01, got %v", cfg.SpecialPrizeChance)
	}
	if cfg.NotifyTimeout != 30*time.Second {
		t.Errorf("expected notify timeout 30s, got %v", cfg.NotifyTimeout)
	}
	if cfg.EmailEnabled() {
		t.Error("email should be disabled without credentials")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_KEY", "admin")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("EMAIL_USER", "promo@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres || cfg.AdminKey != "admin" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.EmailEnabled() {
		t.Error("email should be enabled")
	}
	want := []string{"https://a.example", "https://b.example"}
	if got := cfg.Origins(); !reflect.DeepEqual(got, want) {
		t.Errorf("Origins() = %v, want %v", got, want)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-key", "k", "-special-chance", "0.5"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" || cfg.AdminKey != "k" || cfg.SpecialPrizeChance != 0.5 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port env", map[string]string{"PORT": "abc"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"unknown database", nil, []string{"-t", "mysql"}},
		{"empty database url", nil, []string{"-d", ""}},
		{"chance above one", nil, []string{"-special-chance", "1.5"}},
		{"negative timeout", map[string]string{"NOTIFY_TIMEOUT": "-1s"}, nil},
		{"unknown flag", nil, []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestOriginsAppendsFrontendURL(t *testing.T) {
	cfg := Config{
		AllowedOrigins: []string{"http://localhost:3000", " "},
		FrontendURL:    "https://promo.example",
	}
	want := []string{"http://localhost:3000", "https://promo.example"}
	if got := cfg.Origins(); !reflect.DeepEqual(got, want) {
		t.Errorf("Origins() = %v, want %v", got, want)
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FORTUNE_WHEEL_TEST_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FORTUNE_WHEEL_TEST_KEY", "")
	os.Unsetenv("FORTUNE_WHEEL_TEST_KEY")

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("FORTUNE_WHEEL_TEST_KEY"); got != "from-file" {
		t.Errorf("expected value from .env, got %q", got)
	}
}
