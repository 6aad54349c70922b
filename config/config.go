package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings the process needs at startup.
// Values come from an env file (config/env/<GO_ENV>.env) overlaid by the
// process environment.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:"8080"`                // Port the HTTP server listens on
	JwtSecret             string `env:"JWT_SECRET,required"`                      // Secret used to sign access tokens
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`          // Document store connection string
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"gotask"`       // Database name
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`              // Allowed origins, comma separated
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`  // Max requests per window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"` // Window length in seconds
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	AuthEnabled           bool   `env:"AUTH_ENABLED" envDefault:"true"`       // Bearer-token check on protected routes
	ValidationEnabled     bool   `env:"VALIDATION_ENABLED" envDefault:"true"` // Schema validation on request bodies
	TokenTTLHours         int    `env:"TOKEN_TTL_HOURS" envDefault:"72"`      // Access token lifetime
	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// getEnvPath locates the env file for the current GO_ENV by walking up from
// the working directory until a config/env folder is found.
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("cannot determine working directory: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the env file for the current environment and parses it
// into a Configuration. Returns nil when the file is missing or a required
// variable is absent; callers are expected to fail fast on nil.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Logger is not initialized yet at this point.
			fmt.Printf("could not load env file at %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("error parsing config: %+v\n", err)
		return nil
	}

	return &cfg
}
