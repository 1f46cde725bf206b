package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyConsoleDBType      string = "CONSOLE_DB_TYPE"
	EnvKeyConsoleDbPath      string = "CONSOLE_DB_PATH"
	EnvKeyConsolePostgresDSN string = "CONSOLE_POSTGRES_DSN"

	EnvKeyConsoleHttpHostPort string = "CONSOLE_HTTP_HOST_PORT"

	EnvKeyConsoleJwtSecret string = "CONSOLE_JWT_SECRET"

	EnvKeyConsoleDefaultRate  string = "CONSOLE_DEFAULT_RATE"
	EnvKeyConsoleDefaultBurst string = "CONSOLE_DEFAULT_BURST"

	EnvKeyConsoleNotifyGatewayURL string = "CONSOLE_NOTIFY_GATEWAY_URL"
	EnvKeyConsoleNatsURL          string = "CONSOLE_NATS_URL"
	EnvKeyConsoleSweepInterval    string = "CONSOLE_SWEEP_INTERVAL"
	EnvKeyConsoleSeedDemo         string = "CONSOLE_SEED_DEMO"

	LoggerNameConsoleCore   string = "console_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"
	LoggerCategoryAlarm     string = "alarm"
	LoggerCategoryProfile   string = "profile"
	LoggerCategoryAuth      string = "auth"
	LoggerCategoryNotify    string = "notify"
	LoggerCategoryEvents    string = "events"
	LoggerCategorySweep     string = "sweep"
	LoggerCategorySeed      string = "seed"
)
