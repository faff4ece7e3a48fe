package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"clinicore.io/clinicore/internal/config"
	"clinicore.io/clinicore/internal/dal"
	"clinicore.io/clinicore/internal/metrics"
	"clinicore.io/clinicore/internal/notify"
	"clinicore.io/clinicore/internal/query"
	"clinicore.io/clinicore/internal/seed"
	"clinicore.io/clinicore/internal/storage"
	"clinicore.io/clinicore/pkg/zerolog_config"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(".env"); err != nil {
		log.Info().Msg("Not found .env file, assuming environment variables are set")
	}

	cfg := config.Load()

	zerolog_config.SetAppPrefix("clinicore")
	if err := zerolog_config.StartupWithEnv(cfg.ElasticsearchURL, "logs", cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	log.Info().Msg("Starting clinicore record-keeping service")

	// Start system metrics collection
	metrics.StartSystemMetrics(15 * time.Second)

	kv, err := storage.Open(cfg.DBPath, cfg.Namespace)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}

	// First-run seed, guarded by the persisted initialization flag
	if err := seed.Ensure(kv); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed store")
	}

	cs := dal.NewCollectionStore(kv, notify.LogAdvisor{}, dal.Options{
		MonotonicIDs: cfg.MonotonicIDs,
	})
	service := query.NewService(cs)

	stats := service.DashboardStats()
	log.Info().
		Int("patients", stats.TotalPatients).
		Int("doctors", stats.TotalDoctors).
		Int("appointments", stats.TotalAppointments).
		Int("upcoming", stats.UpcomingAppointments).
		Msg("Store ready")

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Received shutdown signal, shutting down gracefully...")

	// Close database connection
	if err := kv.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close store")
	}
	log.Info().Msg("Shutdown complete")
}
