package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"

	"skiff/internal/config"
	"skiff/internal/pipeline"
	"skiff/internal/probe"
	"skiff/internal/runtime/docker"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build, push and redeploy the container image",
	Long: `Run the deployment pipeline: build the image, tag it for the registry,
push it, replace the running instance and wait until the new instance
answers its health check. The pipeline halts on the first failing step.

Registry credentials come from the config file or from SKIFF_REGISTRY_*
environment variables; a local .env file is loaded when present.`,
	Run: runDeploy,
}

func init() {
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	rt, err := docker.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create container runtime")
	}

	ctx := cmd.Context()

	if err := rt.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Container runtime not available")
	}

	if v, err := rt.Version(ctx); err != nil {
		log.Warn().Err(err).Msg("Could not get runtime version")
	} else {
		log.Info().Str("version", v).Msg("Container runtime connected")
	}

	prober := probe.New(
		probe.WithTimeout(cfg.HealthCheck.Timeout),
		probe.WithInterval(cfg.HealthCheck.Interval),
		probe.WithRetries(cfg.HealthCheck.Retries),
		probe.WithStartPeriod(cfg.HealthCheck.StartPeriod),
	)

	bus := pipeline.NewEventBus()
	bus.Subscribe(&pipeline.LogHandler{})

	p := pipeline.New(cfg, rt, prober, bus)
	if err := p.Run(ctx); err != nil {
		log.Fatal().Err(err).Str("image", cfg.ImageRef()).Msg("Deployment failed")
	}

	log.Info().Str("image", cfg.ImageRef()).Msg("Deployment completed")
}
