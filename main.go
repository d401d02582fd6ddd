package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ChrisTheAbysswalker/animals-web/config"
	h "github.com/ChrisTheAbysswalker/animals-web/handlers"
	m "github.com/ChrisTheAbysswalker/animals-web/models"
	s "github.com/ChrisTheAbysswalker/animals-web/services"
	"github.com/ChrisTheAbysswalker/animals-web/views"
)

var (
	envFile string
	logger  *zap.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "animals",
	Short: "Animal lookup web form backed by the API Ninjas animals endpoint",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger, err = newLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form (default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <animal name>",
	Short: "Query the animals API once and print the raw records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to read before the environment (empty to skip)")
	rootCmd.AddCommand(serveCmd, fetchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = atomicLevel
	return zapConfig.Build()
}

func newAnimalService(registry prometheus.Registerer) *s.AnimalService {
	return s.NewAnimalService(cfg.APIBaseURL, cfg.APIKey,
		s.WithHTTPClient(&http.Client{Timeout: cfg.FetchTimeout}),
		s.WithLogger(logger),
		s.WithMetrics(s.NewFetchMetrics(registry)),
	)
}

func runServe() error {
	gin.SetMode(cfg.GinMode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	animalService := newAnimalService(registry)
	if !animalService.HasAPIKey() {
		logger.Warn("API_KEY is not set; every search will come back empty")
	}

	templates, err := views.Load()
	if err != nil {
		return err
	}

	animalHandler := h.NewAnimalHandler(animalService, templates, logger)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	router := h.NewRouter(animalHandler, logger, cfg.AllowedOrigins, metricsHandler)

	baseURL := os.Getenv("RENDER_EXTERNAL_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}

	fmt.Printf("🚀 Animals web form running at %s\n", baseURL)
	fmt.Printf("📡 Endpoints:\n")
	fmt.Printf("   • GET  %s/            - Search form\n", baseURL)
	fmt.Printf("   • POST %s/            - Search by animal_name\n", baseURL)
	fmt.Printf("   • GET  %s/api/health  - Health check\n", baseURL)
	fmt.Printf("   • GET  %s/metrics     - Prometheus metrics\n", baseURL)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return err
	}
	return nil
}

func runFetch(ctx context.Context, animalName string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	animals := newAnimalService(nil).FetchAnimals(ctx, animalName)
	return printRecords(os.Stdout, animalName, animals)
}

// printRecords writes the records as the API sent them, unread fields included.
func printRecords(w io.Writer, animalName string, animals []m.AnimalRecord) error {
	if len(animals) == 0 {
		_, err := fmt.Fprintf(w, "Could not retrieve data for %s.\n", animalName)
		return err
	}

	raw := make([]json.RawMessage, 0, len(animals))
	for _, animal := range animals {
		element, err := json.Marshal(animal)
		if err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
		raw = append(raw, element)
	}

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	_, err = fmt.Fprintf(w, "Data for %s:\n%s\n", animalName, out)
	return err
}
