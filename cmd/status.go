package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"skiff/internal/config"
	"skiff/internal/probe"
)

var statusURL string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the health of a deployed instance",
	Long: `Send a single health probe to a running instance and report the outcome.
Exits non-zero when the instance is unhealthy.`,
	Run: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVar(&statusURL, "url", "", "health URL to probe (default is the local instance)")
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	url := statusURL
	if url == "" {
		url = fmt.Sprintf("http://localhost:%d%s", cfg.Server.Port, cfg.HealthCheck.Path)
	}

	prober := probe.New(probe.WithTimeout(cfg.HealthCheck.Timeout))

	statusCode, elapsed, err := prober.Probe(cmd.Context(), url)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Instance unreachable")
		os.Exit(1)
	}

	if statusCode < 200 || statusCode >= 400 {
		log.Error().Int("status", statusCode).Str("url", url).Msg("Instance unhealthy")
		os.Exit(1)
	}

	log.Info().
		Int("status", statusCode).
		Int64("response_time_ms", elapsed).
		Str("url", url).
		Msg("Instance healthy")
}
