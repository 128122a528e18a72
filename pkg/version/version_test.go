package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	version = defaultVersion
	commit = "unknown"
	buildDate = "unknown"
}

func TestVersion_Defaults(t *testing.T) {
	reset()

	assert.Equal(t, "1.0.0", Version())
	assert.Equal(t, "unknown", Commit())
	assert.Equal(t, "unknown", BuildDate())
}

func TestVersion_Set(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Set("2.1.0", "abc1234", "2026-08-31")

	assert.Equal(t, "2.1.0", Version())
	assert.Equal(t, "abc1234", Commit())
	assert.Equal(t, "2026-08-31", BuildDate())
}

func TestVersion_Set_StripsVPrefix(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Set("v1.2.3", "", "")

	assert.Equal(t, "1.2.3", Version())
	assert.Equal(t, "unknown", Commit())
}

func TestVersion_Set_KeepsNonSemver(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Set("dev-snapshot", "", "")

	assert.Equal(t, "dev-snapshot", Version())
}

func TestVersion_Set_EmptyKeepsDefaults(t *testing.T) {
	reset()

	Set("", "", "")

	assert.Equal(t, "1.0.0", Version())
}
