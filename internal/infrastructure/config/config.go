package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"centro/internal/domain/billing"
	sharedConfig "centro/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Billing      sharedConfig.BillingConfig      `mapstructure:"billing"`
	Subscription sharedConfig.SubscriptionConfig `mapstructure:"subscription"`
	Scheduler    sharedConfig.SchedulerConfig    `mapstructure:"scheduler"`
}

// DiscountTable converts the configured tiers into the domain step function.
func (c *Config) DiscountTable() billing.DiscountTable {
	table := make(billing.DiscountTable, 0, len(c.Billing.DiscountTiers))
	for _, tier := range c.Billing.DiscountTiers {
		table = append(table, billing.DiscountTier{
			MinActivities: tier.MinActivities,
			Percent:       tier.Percent,
		})
	}
	return table
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configuration from configs/config.yaml and CENTRO_* environment
// variables, environment taking precedence.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("CENTRO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.timezone", "Europe/Rome")

	// Database defaults
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "centro_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.password.bcrypt_cost", 12)
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 15)
	viper.SetDefault("auth.jwt.refresh_exp_days", 7)

	// Email defaults
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 587)
	viper.SetDefault("email.from_address", "noreply@centro.example")
	viper.SetDefault("email.from_name", "Centro")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	// Billing defaults: the standard agency discount ladder.
	viper.SetDefault("billing.currency", "EUR")
	viper.SetDefault("billing.expiring_soon_days", 7)
	viper.SetDefault("billing.discount_tiers", []map[string]interface{}{
		{"min_activities": 2, "percent": 10.0},
		{"min_activities": 5, "percent": 15.0},
		{"min_activities": 10, "percent": 20.0},
	})

	// Subscription defaults
	viper.SetDefault("subscription.default_trial_days", 14)
	viper.SetDefault("subscription.stats_cache_ttl_seconds", 300)

	// Scheduler defaults
	viper.SetDefault("scheduler.expire_interval_hours", 6)
	viper.SetDefault("scheduler.reminder_interval_hours", 24)
}
