package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/emerge/analysis"
	"github.com/danielhkuo/emerge/auth"
	"github.com/danielhkuo/emerge/cliparse"
	"github.com/danielhkuo/emerge/db"
	"github.com/danielhkuo/emerge/metrics"
	"github.com/danielhkuo/emerge/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Sentiment lexicon
	lexicon := analysis.DefaultLexicon()
	if cfg.LexiconPath != "" {
		lexicon, err = analysis.LoadLexicon(cfg.LexiconPath)
		if err != nil {
			slog.Error("lexicon load failed", "path", cfg.LexiconPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Loaded lexicon", "path", cfg.LexiconPath, "words", len(lexicon.Words))
	}

	cipher, err := auth.NewCipher(cfg.EncryptionKey)
	if err != nil {
		slog.Error("invalid encryption key", "error", err)
		os.Exit(1)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	scorer := analysis.NewSentimentScorer(analysis.NewLexiconEstimator(lexicon), m.SentimentFallback)

	// Create router
	handler := router.NewRouter(router.Deps{
		Store:    db.NewSQLStore(dbConn, cfg.DatabaseType),
		Config:   cfg,
		Analyzer: analysis.NewAnalyzer(scorer),
		Cipher:   cipher,
		Metrics:  m,
	})

	// Create server
	server := http.Server{
		Handler: handler,
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
