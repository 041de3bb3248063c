package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Steam     Steam     `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	SalesSync SalesSync `mapstructure:",squash"`
	Cleanup   Cleanup   `mapstructure:",squash"`
	Keystore  Keystore  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Steam struct {
	BaseURL       string `mapstructure:"steam_base_url"`
	RateLimitRPS  int    `mapstructure:"steam_rate_limit_rps"`
	PageBatchSize int    `mapstructure:"steam_page_batch_size"`
}

type Auth struct {
	Secret       string `mapstructure:"auth_secret"`
	TokenTTLHour int    `mapstructure:"auth_token_ttl_hours"`
}

type SalesSync struct {
	CronSchedule        string `mapstructure:"sales_sync_cron"`
	MaxConcurrentDates  int    `mapstructure:"sales_sync_max_concurrent_dates"`
	RequestDelaySeconds int    `mapstructure:"sales_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"sales_sync_enabled"`
}

type Cleanup struct {
	CronSchedule  string `mapstructure:"cleanup_cron"`
	RetentionDays int    `mapstructure:"cleanup_retention_days"`
	Enabled       bool   `mapstructure:"cleanup_enabled"`
}

type Keystore struct {
	DataDir string `mapstructure:"keystore_data_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/steam_sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STEAM_BASE_URL", "https://partner.steamgames.com/webapi")
	viper.SetDefault("STEAM_RATE_LIMIT_RPS", 2)
	viper.SetDefault("STEAM_PAGE_BATCH_SIZE", 5000)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("SALES_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("SALES_SYNC_MAX_CONCURRENT_DATES", 3)
	viper.SetDefault("SALES_SYNC_REQUEST_DELAY_SECONDS", 1)
	viper.SetDefault("SALES_SYNC_ENABLED", false)

	viper.SetDefault("CLEANUP_CRON", "0 5 * * *")
	viper.SetDefault("CLEANUP_RETENTION_DAYS", 0)
	viper.SetDefault("CLEANUP_ENABLED", false)

	viper.SetDefault("KEYSTORE_DATA_DIR", "./data")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using environment variables only (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from:", location)
			return
		}
	}

	logrus.Warn("No .env file found in known locations")
}
