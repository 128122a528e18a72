package docker

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/docker/docker/api/types/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRegistryAuth(t *testing.T) {
	authStr, err := encodeRegistryAuth("registry.example.com/demo-app:1.0.0", "ci", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, authStr)

	decoded, err := base64.StdEncoding.DecodeString(authStr)
	require.NoError(t, err)

	var authConfig registry.AuthConfig
	err = json.Unmarshal(decoded, &authConfig)
	require.NoError(t, err)

	assert.Equal(t, "ci", authConfig.Username)
	assert.Equal(t, "secret", authConfig.Password)
	assert.Equal(t, "registry.example.com", authConfig.ServerAddress)
}

func TestEncodeRegistryAuth_NoCredentials(t *testing.T) {
	authStr, err := encodeRegistryAuth("demo-app:latest", "", "")
	require.NoError(t, err)
	assert.Empty(t, authStr)
}

func TestEncodeRegistryAuth_NoRegistryInRef(t *testing.T) {
	authStr, err := encodeRegistryAuth("demo-app:latest", "ci", "secret")
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(authStr)
	require.NoError(t, err)

	var authConfig registry.AuthConfig
	err = json.Unmarshal(decoded, &authConfig)
	require.NoError(t, err)

	// Without a slash there is no registry part to extract.
	assert.Equal(t, "demo-app:latest", authConfig.ServerAddress)
}

func TestDrainBuildResponse_Success(t *testing.T) {
	body := strings.NewReader(
		`{"stream":"Step 1/4 : FROM golang:1.24-alpine"}` + "\n" +
			`{"stream":"Successfully built abc123"}` + "\n",
	)

	err := drainBuildResponse(body)
	require.NoError(t, err)
}

func TestDrainBuildResponse_BuildError(t *testing.T) {
	body := strings.NewReader(
		`{"stream":"Step 2/4 : RUN false"}` + "\n" +
			`{"error":"The command '/bin/sh -c false' returned a non-zero code: 1"}` + "\n",
	)

	err := drainBuildResponse(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-zero code")
}

func TestDrainBuildResponse_Empty(t *testing.T) {
	err := drainBuildResponse(strings.NewReader(""))
	require.NoError(t, err)
}
