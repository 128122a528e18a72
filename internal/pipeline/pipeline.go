// Package pipeline implements the deployment driver: a linear, non-branching
// sequence of steps that builds the image, pushes it to the registry and
// replaces the running instance. Each step either succeeds or the pipeline
// halts with the step's error; there is no compensation and no retry.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"skiff/internal/config"
	"skiff/internal/probe"
	"skiff/internal/runtime"
)

// managedByLabel marks containers created by the driver so redeploys can
// find instances left over from previous runs.
const managedByLabel = "skiff.managed"

// Step is one unit of the deployment sequence.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pipeline drives a deployment against a container runtime.
type Pipeline struct {
	cfg     *config.Config
	runtime runtime.Runtime
	prober  *probe.Prober
	bus     *EventBus

	// probePort is the published host port of the instance started by the
	// redeploy step. The wait step probes it; zero means fall back to the
	// configured server port.
	probePort int
}

// New creates a deployment pipeline. The bus may be nil when no observer
// is interested.
func New(cfg *config.Config, rt runtime.Runtime, prober *probe.Prober, bus *EventBus) *Pipeline {
	if bus == nil {
		bus = NewEventBus()
	}
	return &Pipeline{
		cfg:     cfg,
		runtime: rt,
		prober:  prober,
		bus:     bus,
	}
}

// Steps returns the deployment sequence in execution order.
func (p *Pipeline) Steps() []Step {
	return []Step{
		{Name: "build", Run: p.buildStep},
		{Name: "tag", Run: p.tagStep},
		{Name: "push", Run: p.pushStep},
		{Name: "redeploy", Run: p.redeployStep},
		{Name: "wait-healthy", Run: p.waitHealthyStep},
	}
}

// Run executes the pipeline from start to finish, halting on the first
// failing step.
func (p *Pipeline) Run(ctx context.Context) error {
	imageRef := p.cfg.ImageRef()
	p.bus.Publish(Event{Type: PipelineStarted, Image: imageRef})

	for _, step := range p.Steps() {
		p.bus.Publish(Event{Type: StepStarted, Step: step.Name, Image: imageRef})

		if err := step.Run(ctx); err != nil {
			p.bus.Publish(Event{Type: StepFailed, Step: step.Name, Image: imageRef, Error: err.Error()})
			p.bus.Publish(Event{Type: PipelineFailed, Image: imageRef, Error: err.Error()})
			return fmt.Errorf("step %s failed: %w", step.Name, err)
		}

		p.bus.Publish(Event{Type: StepCompleted, Step: step.Name, Image: imageRef})
	}

	p.bus.Publish(Event{Type: PipelineCompleted, Image: imageRef})
	return nil
}

func (p *Pipeline) buildStep(ctx context.Context) error {
	return p.runtime.BuildImage(ctx, p.cfg.Deploy.ContextDir, p.cfg.LocalImageRef())
}

// tagStep qualifies the local image with the registry host. Without a
// configured registry the local tag is already the deployable reference.
func (p *Pipeline) tagStep(ctx context.Context) error {
	if p.cfg.Registry.Host == "" {
		log.Debug().Msg("No registry configured, skipping tag step")
		return nil
	}
	return p.runtime.TagImage(ctx, p.cfg.LocalImageRef(), p.cfg.ImageRef())
}

func (p *Pipeline) pushStep(ctx context.Context) error {
	if p.cfg.Registry.Host == "" {
		log.Debug().Msg("No registry configured, skipping push step")
		return nil
	}
	return p.runtime.PushImage(ctx, p.cfg.ImageRef(), p.cfg.Registry.Username, p.cfg.Registry.Password)
}

// ensureImageAvailable checks that the image is present locally and pulls
// it from the registry when it is not. Covers the split-host case where
// the build ran elsewhere and only the registry holds the image.
func (p *Pipeline) ensureImageAvailable(ctx context.Context, imageRef string) error {
	images, err := p.runtime.ListImages(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to list local images, attempting a pull")
	} else {
		for _, img := range images {
			if img == imageRef {
				return nil
			}
		}
	}

	if p.cfg.Registry.Host == "" {
		return fmt.Errorf("image %s not available locally and no registry configured", imageRef)
	}

	log.Info().Str("image", imageRef).Msg("Image not found locally, pulling from registry")
	if err := p.runtime.PullImage(ctx, imageRef, p.cfg.Registry.Username, p.cfg.Registry.Password); err != nil {
		return fmt.Errorf("image %s not available: %w", imageRef, err)
	}
	return nil
}

// redeployStep replaces the running instance: any container with the
// configured name is stopped and removed, then a fresh one is created,
// started from the new image reference and verified to be running. The
// image of the replaced instance is removed once it is superseded.
func (p *Pipeline) redeployStep(ctx context.Context) error {
	imageRef := p.cfg.ImageRef()
	name := p.cfg.Deploy.ContainerName

	if err := p.ensureImageAvailable(ctx, imageRef); err != nil {
		return err
	}

	containers, err := p.runtime.ListContainers(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to list containers: %w", err)
	}

	var previousImage string
	for _, c := range containers {
		if c.Name != name {
			continue
		}

		log.Info().
			Str("container", c.ID).
			Str("status", c.Status).
			Msg("Found existing instance, replacing")
		previousImage = c.Image

		if err := p.runtime.StopContainer(ctx, c.ID); err != nil {
			log.Warn().Err(err).Str("container", c.ID).Msg("Failed to stop existing container")
		}
		if err := p.runtime.RemoveContainer(ctx, c.ID, true); err != nil {
			return fmt.Errorf("failed to remove existing container %s: %w", c.ID, err)
		}
	}

	created, err := p.runtime.CreateContainer(ctx, &runtime.ContainerConfig{
		Image: imageRef,
		Name:  name,
		Ports: []int{p.cfg.Server.Port},
		Labels: map[string]string{
			managedByLabel: "true",
		},
		NetworkMode: p.cfg.Deploy.Network,
	})
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}

	if err := p.runtime.StartContainer(ctx, created.ID); err != nil {
		return fmt.Errorf("failed to start container %s: %w", created.ID, err)
	}

	running, err := p.runtime.IsContainerRunning(ctx, created.ID)
	if err != nil {
		return fmt.Errorf("failed to inspect new container %s: %w", created.ID, err)
	}
	if !running {
		return fmt.Errorf("container %s exited immediately after start", created.ID)
	}

	hostPort, err := p.runtime.GetContainerPort(ctx, created.ID, p.cfg.Server.Port)
	if err != nil {
		log.Warn().Err(err).Msg("Could not resolve published port, probing the configured port")
		hostPort = p.cfg.Server.Port
	}
	p.probePort = hostPort

	if previousImage != "" && previousImage != imageRef {
		if err := p.runtime.RemoveImage(ctx, previousImage, false); err != nil {
			log.Warn().Err(err).Str("image", previousImage).Msg("Failed to remove superseded image")
		}
	}

	log.Info().
		Str("container", created.ID).
		Str("image", imageRef).
		Int("port", hostPort).
		Msg("New instance started")

	return nil
}

// waitHealthyStep blocks until the new instance answers its health check,
// honoring the configured interval, retries and start period. The binary
// outcome here is what decides pipeline success.
func (p *Pipeline) waitHealthyStep(ctx context.Context) error {
	port := p.probePort
	if port == 0 {
		port = p.cfg.Server.Port
	}
	url := fmt.Sprintf("http://localhost:%d%s", port, p.cfg.HealthCheck.Path)
	return p.prober.WaitHealthy(ctx, url)
}
