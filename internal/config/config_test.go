package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func TestReadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := ReadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := Configuration{
		Port:             8080,
		LogLevel:         "info",
		StorageDriver:    SQLite,
		DbUrl:            "dashboard.db",
		MigrationsFolder: "migrations",
		StorageDir:       "data",
		SessionKey:       "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4",
		StaticDir:        "static",
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("configuration mismatch (-want +got):\n%s", diff)
	}
}

func TestReadConfigEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DASHBOARD_STORAGE_DRIVER", "FILE")
	t.Setenv("DASHBOARD_STORAGE_DIR", "/var/lib/dashboard")
	t.Setenv("DASHBOARD_PORT", "9000")
	t.Setenv("DASHBOARD_DEBUG", "true")

	cfg, err := ReadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.StorageDriver != File {
		t.Errorf("expected driver %s, got %s", File, cfg.StorageDriver)
	}
	if cfg.StorageDir != "/var/lib/dashboard" {
		t.Errorf("expected storage dir /var/lib/dashboard, got %s", cfg.StorageDir)
	}
	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("expected debug to be enabled")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{"valid", "storage:\n  driver: memory\n", ""},
		{"unknown driver", "storage:\n  driver: redis\n", "unknown storage driver redis"},
		{"short session key", "session:\n  key: short\n", "session key must be 32 bytes long"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			v.SetConfigType("yaml")
			if err := v.ReadConfig(strings.NewReader(c.yaml)); err != nil {
				t.Fatal(err)
			}

			_, err := fromViper(v)
			switch {
			case c.errMsg == "" && err != nil:
				t.Errorf("unexpected error: %s", err)
			case c.errMsg != "" && (err == nil || !strings.Contains(err.Error(), c.errMsg)):
				t.Errorf("expected error containing %q, got %v", c.errMsg, err)
			}
		})
	}
}
