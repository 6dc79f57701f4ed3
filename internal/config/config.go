package config

import (
	"log/slog"
	"time"

	"github.com/num30/config"
)

type Config struct {
	RunAddress     string   `default:":8080" envvar:"RUN_ADDR"`
	LogLevel       string   `default:"info" flag:"loglevel" envvar:"LOGLEVEL"`
	DB             Database `default:"{}"`
	RedisURL       string   `default:"localhost:6379" envvar:"REDIS_URL"`
	ActiveIDKey    string   `default:"event_banner:active_id" envvar:"ACTIVE_ID_KEY"`
	ActiveIDExpiry int      `default:"0" envvar:"ACTIVE_ID_EXPIRY"`
	AdminToken     string   `envvar:"ADMIN_TOKEN"`
	Timezone       string   `default:"UTC" envvar:"TIMEZONE"`
	Display        Display  `default:"{}"`
	Render         Render   `default:"{}"`
}

type Database struct {
	Host     string `default:"localhost" validate:"required" envvar:"DB_HOST"`
	Port     int    `default:"5434" envvar:"DB_PORT"`
	Password string `default:"banner_db" validate:"required" envvar:"DB_PASS"`
	DbName   string `default:"banner_db" envvar:"DB_NAME"`
	Username string `default:"banner_db" envvar:"DB_USERNAME"`
}

// Display selects where banners are embedded automatically.
type Display struct {
	AutoRender bool   `default:"true" envvar:"AUTO_RENDER"`
	Location   string `default:"top" envvar:"DISPLAY_LOCATION"`
}

type Render struct {
	InlineStyles bool `default:"true" envvar:"INLINE_STYLES"`
}

func MustBuild(cfgFile string) *Config {
	var conf Config
	err := config.NewConfReader(cfgFile).Read(&conf)
	if err != nil {
		panic(err)
	}

	return &conf
}

// Location returns the timezone schedules are interpreted in, UTC when the
// configured name is unknown.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, falling back to UTC", "timezone", c.Timezone, "error", err)
		return time.UTC
	}

	return loc
}
