package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"paseos-lugo/internal/domain/payment"
	"paseos-lugo/internal/domain/tracking"
	"paseos-lugo/internal/domain/walkers"
)

var (
	searchFlag   string
	locationFlag string
)

var walkersCmd = &cobra.Command{
	Use:   "paseadores",
	Short: "Lista el catálogo de paseadores con los filtros de la web",
	Example: `  paseos paseadores --search lucia
  paseos paseadores --location "Lugo Centro" -o yaml`,
	Args: cobra.NoArgs,
	RunE: runWalkers,
}

var paymentCmd = &cobra.Command{
	Use:   "pago [session_id]",
	Short: "Sigue una sesión de checkout hasta confirmarse, fallar o agotar intentos",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayment,
}

var trackCmd = &cobra.Command{
	Use:   "seguimiento [booking_id]",
	Short: "Muestra el paseo en vivo hasta Ctrl+C",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrack,
}

func init() {
	walkersCmd.Flags().StringVar(&searchFlag, "search", "", "texto en nombre o especialidad")
	walkersCmd.Flags().StringVar(&locationFlag, "location", walkers.AllLocations, "zona exacta")
}

func runWalkers(cmd *cobra.Command, _ []string) error {
	api, err := newBackend()
	if err != nil {
		return err
	}
	cat, err := walkers.NewService(api).Browse(cmd.Context(), walkers.Criteria{
		Search:   searchFlag,
		Location: locationFlag,
	})
	if err != nil {
		return err
	}
	log.Debug("walkers listed", map[string]any{"shown": len(cat.Walkers), "total": cat.Total})
	return emit(cmd.OutOrStdout(), cat)
}

func runPayment(cmd *cobra.Command, args []string) error {
	api, err := newBackend()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	p := payment.NewPoller(api.CheckoutStatus, payment.Options{
		Interval:    cfg.PaymentPollInterval,
		MaxAttempts: cfg.PaymentMaxAttempts,
		Logger:      log,
	})

	run := p.Start(cmd.Context(), args[0], token, func(s payment.Snapshot) {
		fmt.Fprintf(out, "intento %d: %s\n", s.Attempts, s.State)
	})
	defer run.Stop()

	snap := run.Wait(cmd.Context())
	if err := emit(out, payment.BuildView(snap)); err != nil {
		return err
	}
	if snap.State == payment.StateFailed {
		return errors.New("payment failed")
	}
	return nil
}

func runTrack(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("--token required")
	}
	api, err := newBackend()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	tr := tracking.NewTracker(api, tracking.Options{Interval: cfg.WalkPollInterval, Logger: log})

	watch := tr.Start(cmd.Context(), "cli:"+args[0], token, args[0], tracking.Callbacks{
		OnView: func(v tracking.View) {
			_ = emit(out, v)
		},
		OnError: func(err error) {
			log.Warn("walk refresh failed", map[string]any{"booking_id": args[0], "err": err})
		},
	})
	<-watch.Done()
	return nil
}

func emit(w io.Writer, v any) error {
	switch strings.ToLower(output) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output %q", output)
	}
}
