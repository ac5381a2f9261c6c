package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyGHMDBType string = "GHM_DB_TYPE"
	EnvKeyGHMDbPath string = "GHM_DB_PATH"

	EnvKeyGHMHttpHostPort string = "GHM_HTTP_HOST_PORT"

	EnvKeyGHMDefaultRate  string = "GHM_DEFAULT_RATE"
	EnvKeyGHMDefaultBurst string = "GHM_DEFAULT_BURST"

	EnvKeyGHMAuthSecret   string = "GHM_AUTH_SECRET"
	EnvKeyGHMTokenTTLMin  string = "GHM_TOKEN_TTL_MIN"
	EnvKeyGHMMailEnabled  string = "GHM_MAIL_ENABLED"
	EnvKeyGHMMailServer   string = "GHM_MAIL_SERVER"
	EnvKeyGHMMailPort     string = "GHM_MAIL_PORT"
	EnvKeyGHMMailUsername string = "GHM_MAIL_USERNAME"
	EnvKeyGHMMailPassword string = "GHM_MAIL_PASSWORD"
	EnvKeyGHMMailSender   string = "GHM_MAIL_SENDER"

	LoggerNameGreenhouseCore string = "greenhouse_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNameMail           string = "mail"

	LoggerFieldCategory       string = "category"
	LoggerCategoryReading     string = "reading"
	LoggerCategoryIssue       string = "issue"
	LoggerCategoryDashboard   string = "dashboard"
	LoggerCategoryEmployee    string = "employee"
	LoggerCategoryNotify      string = "notify"
	LoggerCategoryGreenhouses string = "greenhouse"
)
