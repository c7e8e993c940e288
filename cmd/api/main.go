package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"elderly-health-monitor/internal/config"
	"elderly-health-monitor/internal/domain/patient"
	"elderly-health-monitor/internal/domain/vitals"
	"elderly-health-monitor/internal/platform/logger"
	"elderly-health-monitor/internal/router"
)

// @title Elderly Health Monitor API
// @version 1.0
// @description API JSON del monitor remoto de pacientes mayores: vitales sintéticos de las últimas 24 horas y datos de referencia del paciente.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{
		Use:   "elderly-health-monitor",
		Short: "Remote elderly patient health monitor",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(snapshotCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the monitor HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	format := logger.FormatJSON
	if cfg.IsDev() {
		format = logger.FormatConsole
	}
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: format,
		App:    cfg.AppName,
	})

	rec := patient.DefaultRecord()
	if err := rec.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid patient record")
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.NewRouter(router.Options{
			Logger: log,
			Record: rec,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", srv.Addr).Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
	return nil
}

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Generate one vitals series and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := vitals.NewService()
			series := svc.Generate()
			if err := series.Validate(); err != nil {
				return err
			}

			fmt.Printf("Snapshot %s generated at %s\n", series.SnapshotID, series.GeneratedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("%-17s %-9s %-9s %-9s %-7s %-8s\n", "TIMESTAMP", "HR (BPM)", "SYS", "DIA", "SPO2", "TEMP (F)")
			fmt.Println("----------------- --------- --------- --------- ------- --------")
			for _, s := range series.Samples {
				fmt.Printf("%-17s %-9.1f %-9.1f %-9.1f %-7.1f %-8.1f\n",
					s.Timestamp.Format("2006-01-02 15:04"),
					s.HeartRate, s.Systolic, s.Diastolic, s.SpO2, s.TemperatureF)
			}
			return nil
		},
	}
}
