package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string
	RefreshTokenSecret         string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendBaseURL    string
}

// LoadConfig loads configuration from environment variables, with an optional
// .env file for local development. Real environment variables take precedence
// over .env values, which take precedence over defaults.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "books-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "insecure-dev-jwt-secret-change-me"
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration)
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiryDuration
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "" {
		cfg.RefreshTokenSecret = "insecure-dev-refresh-secret-change-me"
		log.Println("Warning: REFRESH_TOKEN_SECRET not set. Using default insecure secret.")
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: Google OAuth environment variables not fully set. Google sign-in will not function.")
	}

	return cfg, nil
}
