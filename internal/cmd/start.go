package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/catalog"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/config"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/httpclient"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/logging"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/pricing"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the skip selector",
	Long: `Open the skip selector for a location.
This launches the TUI where you can filter the available skips, pick one
and continue to the next step.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	addLocationFlags(startCmd)
	addLocationFlags(rootCmd)
	startCmd.Flags().String("view", "", "initial layout: card or list (default from config)")
	rootCmd.Flags().String("view", "", "initial layout: card or list (default from config)")
	rootCmd.AddCommand(startCmd)
}

func addLocationFlags(c *cobra.Command) {
	c.Flags().String("postcode", "", "postcode to show offers for (default from config)")
	c.Flags().String("area", "", "area to show offers for (default from config)")
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	postcode, area := locationFromFlags(cmd, cfg)

	layout := cfg.TUI.ViewMode
	if v, _ := cmd.Flags().GetString("view"); v != "" {
		layout = v
	}
	if !slices.Contains(config.ValidViewModes(), layout) {
		return fmt.Errorf("invalid view %q: expected one of %v", layout, config.ValidViewModes())
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	logger.Info("starting selector", "postcode", postcode, "area", area, "base_url", cfg.Catalog.BaseURL)

	tuiCfg := tui.Config{
		Fetcher:  newFetcher(cfg, logger),
		Postcode: postcode,
		Area:     area,
		Layout:   view.ParseLayout(layout),
		Logger:   logger,
	}

	// Seed the layout with the terminal size so the first frame is laid out correctly
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		tuiCfg.Width = width
		tuiCfg.Height = height
	}

	app := tui.New(context.Background(), tuiCfg, cfg.TUI.AltScreen)
	req, continued, err := app.Run()
	if err != nil {
		return err
	}
	if !continued {
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Selected %s (offer %d) for %d days at %s inc. VAT\n",
		req.Offer.Label(), req.Offer.ID, req.Offer.HirePeriodDays, pricing.FormatCurrency(req.Total))
	return nil
}

// locationFromFlags returns the --postcode and --area flags, falling back to
// the configured location.
func locationFromFlags(cmd *cobra.Command, cfg *config.Config) (string, string) {
	postcode, area := cfg.Catalog.Postcode, cfg.Catalog.Area
	if v, _ := cmd.Flags().GetString("postcode"); v != "" {
		postcode = v
	}
	if v, _ := cmd.Flags().GetString("area"); v != "" {
		area = v
	}
	return postcode, area
}

// newLogger returns a rotating file logger, or a nop logger when logging is
// disabled. The TUI owns the terminal, so nothing is logged to stderr.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLoggerWithRotation(cfg.Logging.ResolveDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

// newFetcher builds the catalog client described by cfg, wrapped in a retry
// policy when more than one attempt is configured.
func newFetcher(cfg *config.Config, logger *logging.Logger) catalog.Fetcher {
	httpClient := httpclient.New(httpclient.Options{
		Timeout:   cfg.Catalog.Timeout(),
		UserAgent: cfg.Catalog.UserAgent,
	})

	client := catalog.NewClient(cfg.Catalog.BaseURL,
		catalog.WithHTTPClient(httpClient),
		catalog.WithLogger(logger.WithComponent("catalog")),
	)

	return catalog.WithRetry(client, catalog.RetryPolicy{
		MaxAttempts: cfg.Catalog.Retry.MaxAttempts,
		Backoff:     cfg.Catalog.Retry.Backoff(),
		Logger:      logger.WithComponent("catalog"),
	})
}
