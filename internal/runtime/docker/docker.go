package docker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/archive"
	"github.com/docker/go-connections/nat"
	"github.com/rs/zerolog/log"

	"skiff/internal/runtime"
)

// Runtime implements the runtime.Runtime interface using the Docker API
type Runtime struct {
	client *client.Client
}

// Ensure Runtime implements the interface
var _ runtime.Runtime = (*Runtime)(nil)

// New creates a new Docker runtime instance
func New() (*Runtime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Runtime{
		client: cli,
	}, nil
}

// BuildImage builds an image from the Dockerfile in contextDir and tags it
// with imageRef.
func (d *Runtime) BuildImage(ctx context.Context, contextDir, imageRef string) error {
	log.Info().Str("context", contextDir).Str("image", imageRef).Msg("Building image")

	buildCtx, err := archive.TarWithOptions(contextDir, &archive.TarOptions{})
	if err != nil {
		return fmt.Errorf("failed to create build context from %s: %w", contextDir, err)
	}
	defer buildCtx.Close()

	resp, err := d.client.ImageBuild(ctx, buildCtx, types.ImageBuildOptions{
		Tags:       []string{imageRef},
		Dockerfile: "Dockerfile",
		Remove:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to build image %s: %w", imageRef, err)
	}
	defer resp.Body.Close()

	// The build runs server-side; draining the response stream is what
	// actually waits for it to finish.
	if err := drainBuildResponse(resp.Body); err != nil {
		return fmt.Errorf("build of image %s failed: %w", imageRef, err)
	}

	log.Info().Str("image", imageRef).Msg("Image built successfully")
	return nil
}

// buildMessage is the subset of the Docker build stream we care about.
type buildMessage struct {
	Stream string `json:"stream"`
	Error  string `json:"error"`
}

func drainBuildResponse(body io.Reader) error {
	dec := json.NewDecoder(body)
	for {
		var msg buildMessage
		if err := dec.Decode(&msg); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read build response: %w", err)
		}
		if msg.Error != "" {
			return fmt.Errorf("%s", msg.Error)
		}
		if s := strings.TrimSpace(msg.Stream); s != "" {
			log.Debug().Str("output", s).Msg("build")
		}
	}
}

// TagImage tags sourceRef as targetRef
func (d *Runtime) TagImage(ctx context.Context, sourceRef, targetRef string) error {
	if err := d.client.ImageTag(ctx, sourceRef, targetRef); err != nil {
		return fmt.Errorf("failed to tag image %s as %s: %w", sourceRef, targetRef, err)
	}

	log.Info().Str("source", sourceRef).Str("target", targetRef).Msg("Image tagged")
	return nil
}

// PushImage pushes an image to its registry, authenticating when credentials
// are provided.
func (d *Runtime) PushImage(ctx context.Context, imageRef, username, password string) error {
	log.Info().Str("image", imageRef).Msg("Pushing image")

	authStr, err := encodeRegistryAuth(imageRef, username, password)
	if err != nil {
		return err
	}

	reader, err := d.client.ImagePush(ctx, imageRef, image.PushOptions{
		RegistryAuth: authStr,
	})
	if err != nil {
		return fmt.Errorf("failed to push image %s: %w", imageRef, err)
	}
	defer reader.Close()

	// Read the response to completion (this is required for the push to complete)
	if err := drainBuildResponse(reader); err != nil {
		return fmt.Errorf("push of image %s failed: %w", imageRef, err)
	}

	log.Info().Str("image", imageRef).Msg("Image pushed successfully")
	return nil
}

// encodeRegistryAuth builds the base64 JSON auth blob the Docker API expects.
// The server address is the registry part of the image reference.
func encodeRegistryAuth(imageRef, username, password string) (string, error) {
	if username == "" && password == "" {
		return "", nil
	}

	serverAddress := imageRef
	if idx := strings.Index(imageRef, "/"); idx > 0 {
		serverAddress = imageRef[:idx]
	}

	authConfig := registry.AuthConfig{
		Username:      username,
		Password:      password,
		ServerAddress: serverAddress,
	}

	// StdEncoding for maximum compatibility across runtimes.
	authConfigBytes, err := json.Marshal(authConfig)
	if err != nil {
		return "", fmt.Errorf("failed to marshal auth config: %w", err)
	}

	return base64.StdEncoding.EncodeToString(authConfigBytes), nil
}

// PullImage pulls an image, authenticating against the registry when
// credentials are given.
func (d *Runtime) PullImage(ctx context.Context, imageRef, username, password string) error {
	log.Info().Str("image", imageRef).Msg("Pulling image")

	auth, err := encodeRegistryAuth(imageRef, username, password)
	if err != nil {
		return fmt.Errorf("failed to encode registry auth: %w", err)
	}

	reader, err := d.client.ImagePull(ctx, imageRef, image.PullOptions{RegistryAuth: auth})
	if err != nil {
		return fmt.Errorf("failed to pull image %s: %w", imageRef, err)
	}
	defer reader.Close()

	// Read the response to completion (this is required for the pull to complete)
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return fmt.Errorf("failed to read pull response for image %s: %w", imageRef, err)
	}

	log.Info().Str("image", imageRef).Msg("Image pulled successfully")
	return nil
}

// RemoveImage removes an image
func (d *Runtime) RemoveImage(ctx context.Context, imageRef string, force bool) error {
	_, err := d.client.ImageRemove(ctx, imageRef, image.RemoveOptions{Force: force})
	if err != nil {
		return fmt.Errorf("failed to remove image %s: %w", imageRef, err)
	}

	log.Info().Str("image", imageRef).Bool("force", force).Msg("Image removed")
	return nil
}

// ListImages lists image tags known to the runtime
func (d *Runtime) ListImages(ctx context.Context) ([]string, error) {
	images, err := d.client.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	var result []string
	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag != "<none>:<none>" {
				result = append(result, tag)
			}
		}
	}

	return result, nil
}

// CreateContainer creates a new container
func (d *Runtime) CreateContainer(ctx context.Context, config *runtime.ContainerConfig) (*runtime.Container, error) {
	exposedPorts := make(nat.PortSet)
	portBindings := make(nat.PortMap)

	for _, port := range config.Ports {
		containerPort := nat.Port(fmt.Sprintf("%d/tcp", port))
		exposedPorts[containerPort] = struct{}{}

		// Publish on the same port on the host: the load balancer contract
		// is one fixed port.
		portBindings[containerPort] = []nat.PortBinding{
			{
				HostIP:   "0.0.0.0",
				HostPort: strconv.Itoa(port),
			},
		}
	}

	containerConfig := &container.Config{
		Image:        config.Image,
		Env:          config.Env,
		ExposedPorts: exposedPorts,
		Labels:       config.Labels,
	}

	hostConfig := &container.HostConfig{
		PortBindings: portBindings,
	}
	if config.NetworkMode != "" {
		hostConfig.NetworkMode = container.NetworkMode(config.NetworkMode)
	}

	resp, err := d.client.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, config.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	log.Info().Str("id", resp.ID).Str("name", config.Name).Str("image", config.Image).Msg("Container created")

	return d.InspectContainer(ctx, resp.ID)
}

// StartContainer starts a container
func (d *Runtime) StartContainer(ctx context.Context, containerID string) error {
	if err := d.client.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container %s: %w", containerID, err)
	}

	log.Info().Str("id", containerID).Msg("Container started")
	return nil
}

// StopContainer stops a container
func (d *Runtime) StopContainer(ctx context.Context, containerID string) error {
	timeout := 30 // seconds
	if err := d.client.ContainerStop(ctx, containerID, container.StopOptions{Timeout: &timeout}); err != nil {
		return fmt.Errorf("failed to stop container %s: %w", containerID, err)
	}

	log.Info().Str("id", containerID).Msg("Container stopped")
	return nil
}

// RemoveContainer removes a container
func (d *Runtime) RemoveContainer(ctx context.Context, containerID string, force bool) error {
	if err := d.client.ContainerRemove(ctx, containerID, container.RemoveOptions{Force: force}); err != nil {
		return fmt.Errorf("failed to remove container %s: %w", containerID, err)
	}

	log.Info().Str("id", containerID).Bool("force", force).Msg("Container removed")
	return nil
}

// ListContainers lists containers
func (d *Runtime) ListContainers(ctx context.Context, all bool) ([]*runtime.Container, error) {
	containers, err := d.client.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	var result []*runtime.Container
	for _, c := range containers {
		var ports []int
		for _, port := range c.Ports {
			if port.PublicPort > 0 {
				ports = append(ports, int(port.PublicPort))
			}
		}

		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		result = append(result, &runtime.Container{
			ID:     c.ID,
			Image:  c.Image,
			Name:   name,
			Status: c.Status,
			Ports:  ports,
			Labels: c.Labels,
		})
	}

	return result, nil
}

// InspectContainer inspects a container
func (d *Runtime) InspectContainer(ctx context.Context, containerID string) (*runtime.Container, error) {
	resp, err := d.client.ContainerInspect(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect container %s: %w", containerID, err)
	}

	var ports []int
	if resp.NetworkSettings != nil && resp.NetworkSettings.Ports != nil {
		for _, bindings := range resp.NetworkSettings.Ports {
			for _, binding := range bindings {
				if binding.HostPort != "" {
					if port, err := strconv.Atoi(binding.HostPort); err == nil {
						ports = append(ports, port)
					}
				}
			}
		}
	}

	name := strings.TrimPrefix(resp.Name, "/")

	return &runtime.Container{
		ID:     resp.ID,
		Image:  resp.Config.Image,
		Name:   name,
		Status: resp.State.Status,
		Ports:  ports,
		Labels: resp.Config.Labels,
	}, nil
}

// GetContainerPort gets the host port for a container's internal port
func (d *Runtime) GetContainerPort(ctx context.Context, containerID string, internalPort int) (int, error) {
	resp, err := d.client.ContainerInspect(ctx, containerID)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect container %s: %w", containerID, err)
	}

	if resp.NetworkSettings == nil || resp.NetworkSettings.Ports == nil {
		return 0, fmt.Errorf("no port mappings found for container %s", containerID)
	}

	containerPort := nat.Port(fmt.Sprintf("%d/tcp", internalPort))
	bindings, exists := resp.NetworkSettings.Ports[containerPort]
	if !exists || len(bindings) == 0 {
		return 0, fmt.Errorf("port %d not mapped for container %s", internalPort, containerID)
	}

	hostPort, err := strconv.Atoi(bindings[0].HostPort)
	if err != nil {
		return 0, fmt.Errorf("invalid host port for container %s: %w", containerID, err)
	}

	return hostPort, nil
}

// IsContainerRunning checks if a container is running
func (d *Runtime) IsContainerRunning(ctx context.Context, containerID string) (bool, error) {
	c, err := d.InspectContainer(ctx, containerID)
	if err != nil {
		return false, err
	}
	return c.Status == "running", nil
}

// Ping checks if Docker is responsive
func (d *Runtime) Ping(ctx context.Context) error {
	if _, err := d.client.Ping(ctx); err != nil {
		return fmt.Errorf("Docker ping failed: %w", err)
	}
	return nil
}

// Version returns the Docker server version
func (d *Runtime) Version(ctx context.Context) (string, error) {
	version, err := d.client.ServerVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get Docker version: %w", err)
	}
	return version.Version, nil
}
