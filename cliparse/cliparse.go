package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	OracleProvider string
	OracleURL      string
	OracleAPIKey   string
	OracleModel    string

	S3Region         string
	SubmissionBucket string
	ResultBucket     string

	PollInitialDelay time.Duration
	PollInterval     time.Duration
	PollTimeout      time.Duration
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ai-medical-form", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Oracle config (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.OracleProvider, "oracle", "", "Oracle provider (groq or gemini)")
	fs.StringVar(&cfg.OracleURL, "oracle-url", "", "Oracle endpoint URL (groq only)")
	fs.StringVar(&cfg.OracleAPIKey, "oracle-key", "", "Oracle API key (prefer env)")
	fs.StringVar(&cfg.OracleModel, "oracle-model", "", "Oracle model name")

	// Submission config
	fs.StringVar(&cfg.S3Region, "region", "", "AWS region for submission buckets")
	fs.StringVar(&cfg.SubmissionBucket, "submission-bucket", "", "Bucket submissions upload to")
	fs.StringVar(&cfg.ResultBucket, "result-bucket", "", "Bucket results appear in")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.OracleProvider == "" {
		cfg.OracleProvider = os.Getenv("ORACLE_PROVIDER")
		if cfg.OracleProvider == "" {
			cfg.OracleProvider = "groq"
		}
	}
	if cfg.OracleProvider != "groq" && cfg.OracleProvider != "gemini" {
		return Config{}, fmt.Errorf("unknown oracle provider %q (use groq or gemini)", cfg.OracleProvider)
	}
	if cfg.OracleURL == "" {
		cfg.OracleURL = os.Getenv("ORACLE_URL")
	}
	if cfg.OracleModel == "" {
		cfg.OracleModel = os.Getenv("ORACLE_MODEL")
	}

	// API key - MUST come from env in production, CLI allowed for dev
	if cfg.OracleAPIKey == "" {
		switch cfg.OracleProvider {
		case "groq":
			cfg.OracleAPIKey = os.Getenv("GROQ_API_KEY")
		case "gemini":
			cfg.OracleAPIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if cfg.OracleAPIKey == "" {
		return Config{}, fmt.Errorf("oracle API key required (set %s_API_KEY)", envPrefix(cfg.OracleProvider))
	}

	if cfg.S3Region == "" {
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
	}
	if cfg.SubmissionBucket == "" {
		cfg.SubmissionBucket = os.Getenv("SUBMISSION_BUCKET")
	}
	if cfg.SubmissionBucket == "" {
		return Config{}, errors.New("SUBMISSION_BUCKET required")
	}
	if cfg.ResultBucket == "" {
		cfg.ResultBucket = os.Getenv("RESULT_BUCKET")
	}
	if cfg.ResultBucket == "" {
		return Config{}, errors.New("RESULT_BUCKET required")
	}

	var err error
	if cfg.PollInitialDelay, err = durationEnv("POLL_INITIAL_DELAY", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PollInterval, err = durationEnv("POLL_INTERVAL", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PollTimeout, err = durationEnv("POLL_TIMEOUT", 5*time.Minute); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envPrefix(provider string) string {
	if provider == "gemini" {
		return "GEMINI"
	}
	return "GROQ"
}

func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", name, err)
	}
	return d, nil
}
