package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cart         CartConfig
	Storefront   StorefrontConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BROGER_APP_ENV" required:"true"`
	Port         string `envconfig:"BROGER_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BROGER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BROGER_LOG_WARN_STACK" default:"false"`

	// ExtraCORSOrigins adds deploy-specific origins on top of the built-in
	// storefront and back-office hosts.
	ExtraCORSOrigins []string `envconfig:"BROGER_EXTRA_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BROGER_DB_DSN"`
	Driver string `envconfig:"BROGER_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BROGER_DB_HOST"`
	LegacyPort     int    `envconfig:"BROGER_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BROGER_DB_USER"`
	LegacyPassword string `envconfig:"BROGER_DB_PASSWORD"`
	LegacyName     string `envconfig:"BROGER_DB_NAME"`
	LegacySSLMode  string `envconfig:"BROGER_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BROGER_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BROGER_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BROGER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BROGER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BROGER_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BROGER_REDIS_ADDR"`
	Password     string        `envconfig:"BROGER_REDIS_PASSWORD"`
	DB           int           `envconfig:"BROGER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BROGER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BROGER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BROGER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BROGER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BROGER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartConfig controls the session cart store. Carts live in Redis only and
// expire with the session; they are never written to the database.
type CartConfig struct {
	TTL time.Duration `envconfig:"BROGER_CART_TTL" default:"24h"`
}

// StorefrontConfig carries the ordering knobs consumed by checkout.
type StorefrontConfig struct {
	DeliveryFee           string `envconfig:"BROGER_DELIVERY_FEE" default:"40"`
	FreeDeliveryThreshold string `envconfig:"BROGER_FREE_DELIVERY_THRESHOLD" default:"350"`
	MessengerPageID       string `envconfig:"BROGER_MESSENGER_PAGE_ID" required:"true"`
	StoreName             string `envconfig:"BROGER_STORE_NAME" default:"Bro-Ger"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"BROGER_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"BROGER_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
