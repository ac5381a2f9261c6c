package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/db"
	"greentech.xyz/greenhouse-monitor-service/pkg/greenhouse"
	ghHttp "greentech.xyz/greenhouse-monitor-service/pkg/http"
	"greentech.xyz/greenhouse-monitor-service/pkg/mail"
)

func main() {
	var err error

	createAdmin := flag.Bool("create-admin", false, "create the initial admin account and exit")
	adminEmail := flag.String("admin-email", "admin@greentech.xyz", "email for -create-admin")
	adminPassword := flag.String("admin-password", "", "password for -create-admin")
	flag.Parse()

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	ghmDbType := os.Getenv(common.EnvKeyGHMDBType)
	switch ghmDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown GHM_DB_TYPE: " + ghmDbType)
	}

	cfg := greenhouse.LoadAppConfigFromEnv()
	if cfg.AuthSecret == "" {
		log.Fatal("GHM_AUTH_SECRET is not set")
	}

	logger := common.GetLogger()

	core := greenhouse.Core{
		Db:  *dbInstance,
		Cfg: cfg,
	}
	core.WithServices(greenhouse.ServiceOpts{
		Reading:    core.GetIReading(),
		Issue:      core.GetIIssue(),
		Dashboard:  core.GetIDashboard(),
		Employee:   core.GetIEmployee(),
		Greenhouse: core.GetIGreenhouse(),
		Notifier:   mail.NewSMTPNotifier(cfg),
	})

	if *createAdmin {
		if *adminPassword == "" {
			log.Fatal("-admin-password is required with -create-admin")
		}
		admin, err := core.BootstrapAdmin("Admin Officer", *adminEmail, *adminPassword)
		if err != nil {
			log.Fatal("Failed to create admin: ", err)
		}
		fmt.Printf("Admin %q created with company id %s. Change the password after first login.\n",
			admin.Email, admin.CompanyID)
		return
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyGHMHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyGHMDefaultRate), 64); err != nil {
		log.Fatal("Invalid GHM_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyGHMDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid GHM_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &ghHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		RateLimiterStore: greenhouse.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
