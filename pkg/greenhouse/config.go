package greenhouse

import (
	"os"
	"strconv"
	"time"

	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/models"
)

// AppConfig carries the process-wide settings the core needs: the fixed
// "normal" baseline values logged on issue resolution, mail settings for
// the notification dispatcher, and auth parameters for the HTTP layer.
// It is passed in explicitly, never read from ambient globals.
type AppConfig struct {
	BaselineTemperature    float64
	BaselineHumidity       float64
	BaselineCO2            float64
	BaselineLightIntensity float64
	BaselineSoilPH         float64
	BaselineSoilMoisture   float64

	MailEnabled  bool
	MailServer   string
	MailPort     int
	MailUsername string
	MailPassword string
	MailSender   string

	AuthSecret  string
	TokenTTLMin int
	BcryptCost  int
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		BaselineTemperature:    22.5,
		BaselineHumidity:       50.0,
		BaselineCO2:            700.0,
		BaselineLightIntensity: 5000.0,
		BaselineSoilPH:         6.5,
		BaselineSoilMoisture:   45.0,

		MailEnabled: false,
		MailServer:  "smtp.gmail.com",
		MailPort:    587,
		MailSender:  "GreenTech Systems",

		TokenTTLMin: 60,
		BcryptCost:  10,
	}
}

// LoadAppConfigFromEnv starts from the defaults and overrides whatever
// the environment provides. Unparseable numeric values keep the default.
func LoadAppConfigFromEnv() *AppConfig {
	cfg := DefaultAppConfig()

	if v, found := os.LookupEnv(common.EnvKeyGHMMailEnabled); found {
		cfg.MailEnabled = v == "true" || v == "1"
	}
	if v, found := os.LookupEnv(common.EnvKeyGHMMailServer); found {
		cfg.MailServer = v
	}
	if v, found := os.LookupEnv(common.EnvKeyGHMMailPort); found {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.MailPort = port
		}
	}
	if v, found := os.LookupEnv(common.EnvKeyGHMMailUsername); found {
		cfg.MailUsername = v
	}
	if v, found := os.LookupEnv(common.EnvKeyGHMMailPassword); found {
		cfg.MailPassword = v
	}
	if v, found := os.LookupEnv(common.EnvKeyGHMMailSender); found {
		cfg.MailSender = v
	}
	if v, found := os.LookupEnv(common.EnvKeyGHMAuthSecret); found {
		cfg.AuthSecret = v
	}
	if v, found := os.LookupEnv(common.EnvKeyGHMTokenTTLMin); found {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.TokenTTLMin = ttl
		}
	}

	return cfg
}

// ResolutionBaseline builds the synthetic "back to normal" reading that
// is appended when an issue is resolved. Values come from config only,
// never from the reading that triggered the issue.
func (c *AppConfig) ResolutionBaseline(greenhouseID uint, now time.Time) models.EnvironmentalData {
	return models.EnvironmentalData{
		GreenhouseID:   greenhouseID,
		Temperature:    c.BaselineTemperature,
		Humidity:       c.BaselineHumidity,
		CO2:            c.BaselineCO2,
		LightIntensity: c.BaselineLightIntensity,
		SoilPH:         c.BaselineSoilPH,
		SoilMoisture:   c.BaselineSoilMoisture,
		Timestamp:      now,
		Source:         models.DataSourceResolution,
	}
}
