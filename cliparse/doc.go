// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Draft database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - OracleProvider: groq or gemini (default: groq)
  - OracleAPIKey: API key for the chosen provider (required)
  - S3Region, SubmissionBucket, ResultBucket: submission storage
  - PollInitialDelay, PollInterval, PollTimeout: result polling cadence

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	ORACLE_PROVIDER   → --oracle
	ORACLE_URL        → --oracle-url
	ORACLE_MODEL      → --oracle-model
	GROQ_API_KEY / GEMINI_API_KEY → --oracle-key
	AWS_REGION        → --region
	SUBMISSION_BUCKET → --submission-bucket
	RESULT_BUCKET     → --result-bucket
	POLL_INITIAL_DELAY, POLL_INTERVAL, POLL_TIMEOUT (Go durations)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - the oracle API key must be provided
  - SUBMISSION_BUCKET and RESULT_BUCKET must be provided
*/
package cliparse
