package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	SQLite = "sqlite"
	File   = "file"
	Memory = "memory"
)

const EnvPrefix = "DASHBOARD"

type Configuration struct {
	// Port is the port the HTTP server listens on.
	Port uint16
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug    bool
	LogLevel string
	// StorageDriver selects the durable storage backend: sqlite, file or memory.
	StorageDriver string
	// DbUrl is the path to the database file, used by the sqlite driver.
	DbUrl string
	// MigrationsFolder holds the SQL migrations applied to the sqlite database on startup.
	MigrationsFolder string
	// StorageDir is the directory holding one file per key, used by the file driver.
	StorageDir string
	// SessionKey authenticates and encrypts the session cookie. It must be 32 bytes long.
	SessionKey string
	// StaticDir is the directory on which the dashboard's stylesheet and other static files can be found.
	StaticDir string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("debug", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.driver", SQLite)
	v.SetDefault("storage.dsn", "dashboard.db")
	v.SetDefault("storage.migrations", "migrations")
	v.SetDefault("storage.dir", "data")
	v.SetDefault("session.key", "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")
	v.SetDefault("static_dir", "static")
}

// ReadConfig reads dashboard.yaml from the working directory or $HOME/.config/dashboard, if present, and
// overrides it with DASHBOARD_* environment variables, e.g. DASHBOARD_STORAGE_DRIVER.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("dashboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/dashboard")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Configuration, error) {
	cfg := Configuration{
		Port:             v.GetUint16("port"),
		Debug:            v.GetBool("debug"),
		LogLevel:         v.GetString("log.level"),
		StorageDriver:    strings.ToLower(v.GetString("storage.driver")),
		DbUrl:            v.GetString("storage.dsn"),
		MigrationsFolder: v.GetString("storage.migrations"),
		StorageDir:       v.GetString("storage.dir"),
		SessionKey:       v.GetString("session.key"),
		StaticDir:        v.GetString("static_dir"),
	}
	return cfg, cfg.Validate()
}

func (c Configuration) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case SQLite, File, Memory:
	default:
		errs = append(errs, errors.New("unknown storage driver "+c.StorageDriver))
	}
	if len(c.SessionKey) != 32 {
		errs = append(errs, errors.New("session key must be 32 bytes long"))
	}
	return errors.Join(errs...)
}
