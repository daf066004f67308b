// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	App struct {
		FreePlanMonthlyChallenges int `mapstructure:"free_plan_monthly_challenges"`
	} `mapstructure:"app"`
	Whop struct {
		APIKey         string `mapstructure:"api_key"`
		FallbackAPIKey string `mapstructure:"fallback_api_key"`
		APIBaseURL     string `mapstructure:"api_base_url"`
		AppID          string `mapstructure:"app_id"`
		Domain         string `mapstructure:"domain"`
	} `mapstructure:"whop"`
	Mailer struct {
		Type string `mapstructure:"type"` // "log", "smtp" or "ses"
		From string `mapstructure:"from"`
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("whop.api_key", "WHOP_API_KEY")
	viper.BindEnv("whop.fallback_api_key", "WHOP_FALLBACK_API_KEY")
	viper.BindEnv("whop.app_id", "WHOP_APP_ID")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.FreePlanMonthlyChallenges <= 0 {
		Cfg.App.FreePlanMonthlyChallenges = DefaultFreePlanMonthlyChallenges
	}
	if Cfg.Whop.APIBaseURL == "" {
		Cfg.Whop.APIBaseURL = DefaultWhopAPIBaseURL
	}
	if Cfg.Whop.Domain == "" {
		Cfg.Whop.Domain = DefaultWhopDomain
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Whop API Base URL: %s", Cfg.Whop.APIBaseURL)

	return nil
}
