package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	TransportLog      = "log"
	TransportPostgres = "postgres"
	TransportNATS     = "nats"

	VerifierFixed = "fixed"
	VerifierRedis = "redis"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	NATS         NATSConfig
	Registration RegistrationConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type NATSConfig struct {
	URL string
}

type RegistrationConfig struct {
	SubmissionTransport       string
	PhoneVerifier             string
	OTPFixedCode              string
	OTPTTL                    time.Duration
	RequireMobileVerification bool
	RequireClinicSelection    bool
	Currency                  string
	AllowedCurrencies         []string
	SessionTTL                time.Duration
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("NATS_URL", "nats://127.0.0.1:4222")
	viper.SetDefault("SUBMISSION_TRANSPORT", TransportLog)
	viper.SetDefault("PHONE_VERIFIER", VerifierFixed)
	viper.SetDefault("OTP_FIXED_CODE", "123456")
	viper.SetDefault("OTP_TTL", "5m")
	viper.SetDefault("REGISTRATION_CURRENCY", "INR")
	viper.SetDefault("SESSION_TTL", "2h")
}

func LoadConfig() (*Config, error) {
	setDefaults()
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The .env file is optional; the environment alone is enough.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	otpTTL, err := time.ParseDuration(viper.GetString("OTP_TTL"))
	if err != nil {
		otpTTL = 5 * time.Minute
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 2 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		NATS: NATSConfig{
			URL: viper.GetString("NATS_URL"),
		},
		Registration: RegistrationConfig{
			SubmissionTransport:       strings.ToLower(viper.GetString("SUBMISSION_TRANSPORT")),
			PhoneVerifier:             strings.ToLower(viper.GetString("PHONE_VERIFIER")),
			OTPFixedCode:              viper.GetString("OTP_FIXED_CODE"),
			OTPTTL:                    otpTTL,
			RequireMobileVerification: viper.GetBool("REGISTRATION_REQUIRE_MOBILE_VERIFICATION"),
			RequireClinicSelection:    viper.GetBool("REGISTRATION_REQUIRE_CLINIC_SELECTION"),
			Currency:                  strings.ToUpper(viper.GetString("REGISTRATION_CURRENCY")),
			AllowedCurrencies:         splitList(viper.GetString("REGISTRATION_ALLOWED_CURRENCIES")),
			SessionTTL:                sessionTTL,
		},
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
