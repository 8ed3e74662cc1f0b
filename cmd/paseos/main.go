package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"paseos-lugo/internal/adapters/backend"
	"paseos-lugo/internal/config"
	"paseos-lugo/internal/platform/logger"
)

var (
	configFile string
	backendURL string
	token      string
	output     string
	verbose    bool

	log logger.Logger
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "paseos",
	Short: "Herramientas de operación de la web de paseos",
	Long: `paseos consulta la API de reservas desde la terminal con la misma
lógica que usa la web: catálogo de paseadores, confirmación de pagos y
seguimiento de paseos en vivo.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFile(configFile)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if backendURL != "" {
			cfg.BackendURL = backendURL
		}
		level := logger.ParseLevel(cfg.LogLevel)
		if verbose {
			level = logger.Debug
		}
		log = logger.New(logger.Options{Level: level, Format: logger.FormatText, App: "paseos-cli"})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "archivo de configuración (yaml/env/json)")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "URL base de la API (por defecto BACKEND_URL)")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("PASEOS_TOKEN"), "bearer del usuario")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "formato de salida: json|yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log en debug")

	rootCmd.AddCommand(walkersCmd, paymentCmd, trackCmd)
}

func newBackend() (*backend.Client, error) {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return backend.New(backend.Config{BaseURL: cfg.BackendURL, Timeout: timeout})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
