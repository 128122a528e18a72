package runtime

import (
	"context"
)

// Container represents a running container
type Container struct {
	ID     string
	Image  string
	Name   string
	Status string
	Ports  []int
	Labels map[string]string
}

// ContainerConfig holds configuration for creating a container
type ContainerConfig struct {
	Image       string
	Name        string
	Env         []string
	Ports       []int
	Labels      map[string]string
	NetworkMode string
}

//go:generate mockgen -source=interface.go -destination=../testutils/mocks/runtime_mock.go -package=mocks

// Runtime defines the contract the deployment driver has with a container
// runtime. Docker is the only implementation; the interface exists so the
// pipeline can be tested against a mock.
type Runtime interface {
	// Image operations
	BuildImage(ctx context.Context, contextDir, imageRef string) error
	TagImage(ctx context.Context, sourceRef, targetRef string) error
	PushImage(ctx context.Context, imageRef, username, password string) error
	PullImage(ctx context.Context, imageRef, username, password string) error
	RemoveImage(ctx context.Context, imageRef string, force bool) error
	ListImages(ctx context.Context) ([]string, error)

	// Container lifecycle
	CreateContainer(ctx context.Context, config *ContainerConfig) (*Container, error)
	StartContainer(ctx context.Context, containerID string) error
	StopContainer(ctx context.Context, containerID string) error
	RemoveContainer(ctx context.Context, containerID string, force bool) error

	// Container inspection
	ListContainers(ctx context.Context, all bool) ([]*Container, error)
	InspectContainer(ctx context.Context, containerID string) (*Container, error)
	GetContainerPort(ctx context.Context, containerID string, internalPort int) (int, error)
	IsContainerRunning(ctx context.Context, containerID string) (bool, error)

	// Runtime information
	Ping(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}
