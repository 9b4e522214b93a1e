package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/michallipa-df/ai-medical-form/cliparse"
	"github.com/michallipa-df/ai-medical-form/db"
	"github.com/michallipa-df/ai-medical-form/draft"
	"github.com/michallipa-df/ai-medical-form/oracle"
	"github.com/michallipa-df/ai-medical-form/oracle/gemini"
	"github.com/michallipa-df/ai-medical-form/oracle/groq"
	"github.com/michallipa-df/ai-medical-form/router"
	"github.com/michallipa-df/ai-medical-form/schema"
	"github.com/michallipa-df/ai-medical-form/submit"
)

func main() {
	var err error

	// Load .env if present (ignored in production deployments)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the draft database
	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Semantic oracle
	var engine oracle.Engine
	switch cfg.OracleProvider {
	case "gemini":
		engine = gemini.New(cfg.OracleAPIKey, cfg.OracleModel)
	default:
		engine = groq.New(cfg.OracleURL, cfg.OracleAPIKey, cfg.OracleModel)
	}
	client := oracle.NewClient(engine)
	slog.Info("Oracle ready", "provider", engine.Name())

	// Submission storage
	store, err := submit.NewS3Store(cfg.S3Region)
	if err != nil {
		slog.Error("s3 store creation failed", "error", err)
		os.Exit(1)
	}
	pipeline := submit.DefaultPipeline(store, cfg.SubmissionBucket, cfg.ResultBucket)
	pipeline.InitialDelay = cfg.PollInitialDelay
	pipeline.Interval = cfg.PollInterval
	pipeline.Timeout = cfg.PollTimeout

	// Create router
	mux := router.NewRouter(schema.Sinusitis(), client, draft.NewSQLStore(dbConn), pipeline)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
