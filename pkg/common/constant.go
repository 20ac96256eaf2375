package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDBType        string = "COLD_DB_TYPE"
	EnvKeyDBPath        string = "COLD_DB_PATH"
	EnvKeyPostgresDSN   string = "COLD_POSTGRES_DSN"
	EnvKeyHTTPHostPort  string = "COLD_HTTP_HOST_PORT"
	EnvKeyFeedURL       string = "COLD_FEED_URL"
	EnvKeyPollSeconds   string = "COLD_POLL_SECONDS"
	EnvKeyFeedRate      string = "COLD_FEED_RATE"
	EnvKeyFeedBurst     string = "COLD_FEED_BURST"
	EnvKeyJWTSecret     string = "COLD_JWT_SECRET"
	EnvKeyTokenTTLHours string = "COLD_TOKEN_TTL_HOURS"

	LoggerNameCore          string = "coldstore_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameScheduler     string = "scheduler"
	LoggerNameFeed          string = "feed"
	LoggerNameAuth          string = "auth"
	LoggerFieldCategory     string = "category"
	LoggerCategoryIngest    string = "ingest"
	LoggerCategoryReading   string = "reading"
	LoggerCategoryAnalysis  string = "analysis"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryThreshold string = "threshold"
)
