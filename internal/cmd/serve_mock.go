package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/config"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/logging"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/mockapi"
	"github.com/spf13/cobra"
)

var serveMockCmd = &cobra.Command{
	Use:   "serve-mock",
	Short: "Serve the example skip catalog locally",
	Long: `Serve a local catalog service with the bundled example offers for
NR32, Lowestoft on GET /skips/by-location.

Point the selector at it with:
  SKIPSELECT_CATALOG_BASE_URL=http://127.0.0.1:8089 skipselect

Use --fail-status to make every offers request fail with the given HTTP
status, e.g. --fail-status 500 to try the retry screen.`,
	Args: cobra.NoArgs,
	RunE: runServeMock,
}

func init() {
	serveMockCmd.Flags().String("host", "", "address to listen on (default from config)")
	serveMockCmd.Flags().Int("port", 0, "port to listen on (default from config)")
	serveMockCmd.Flags().Int("fail-status", 0, "answer offers requests with this HTTP status (400-599)")
	rootCmd.AddCommand(serveMockCmd)
}

func runServeMock(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	host := cfg.Mock.Host
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		host = v
	}
	port := cfg.Mock.Port
	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		port = v
	}
	failStatus, _ := cmd.Flags().GetInt("fail-status")

	// The mock runs in the foreground, so it logs to stderr
	logger, err := logging.NewLogger("", cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	server, err := mockapi.New(mockapi.WithFailStatus(failStatus), mockapi.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %d example offers on http://%s%s\n", len(server.Offers()), addr, mockapi.OffersPath)
	if failStatus != 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Offers requests will fail with status %d\n", failStatus)
	}

	return server.Run(ctx, addr)
}
