package config

// Environment variable names shared between Load, ensureDSN and tests.
const (
	EnvPrefix = "BROGER"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "BROGER_APP_ENV"
	EnvPort   = "BROGER_APP_PORT"

	EnvDBDSN  = "BROGER_DB_DSN"
	EnvDBHost = "BROGER_DB_HOST"
	EnvDBUser = "BROGER_DB_USER"
	EnvDBName = "BROGER_DB_NAME"

	EnvRedisURL = "BROGER_REDIS_URL"

	EnvMessengerPageID = "BROGER_MESSENGER_PAGE_ID"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
