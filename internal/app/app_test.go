package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/traitcast/internal/hcl"
	"github.com/vk/traitcast/internal/testutil"
)

// modulesDir points at the cast provider modules compiled into this binary
// via modules.go, each of which ships its parity manifest.
var modulesDir = filepath.Join("..", "..", "modules")

func TestRunAgainstModuleManifests(t *testing.T) {
	cfg, err := NewConfig(Config{ManifestPath: modulesDir, LogFormat: "text"})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, cfg, hcl.NewLoader())
	require.NoError(t, testApp.Run(context.Background(), cfg))

	out := logBuffer.String()
	assert.Contains(t, out, "Manifest validation passed.")
	assert.Contains(t, out, "shape.Circle")
	assert.Contains(t, out, "encoding.TextMarshaler")
	assert.Contains(t, out, "CONCRETE")
}

func TestRunReportOnly(t *testing.T) {
	cfg, err := NewConfig(Config{LogFormat: "text"})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, cfg, hcl.NewLoader())
	require.NoError(t, testApp.Run(context.Background(), cfg))

	out := logBuffer.String()
	assert.NotContains(t, out, "Manifest validation passed.")
	assert.Contains(t, out, "Cast table built.")
	assert.Contains(t, out, "shape.Square")
}

func TestRunFailsOnManifestMismatch(t *testing.T) {
	manifest := testutil.WriteManifest(t, "mismatch.hcl", `
cast "shape.Circle" {
  to = ["shape.Missing"]
}
`)
	cfg, err := NewConfig(Config{ManifestPath: manifest, LogFormat: "text"})
	require.NoError(t, err)

	testApp, _ := SetupAppTest(t, cfg, hcl.NewLoader())
	runErr := testApp.Run(context.Background(), cfg)
	require.ErrorContains(t, runErr, "manifest validation failed")
	assert.Contains(t, runErr.Error(), "shape.Missing")
}

func TestNewAppPanicsOnMalformedManifest(t *testing.T) {
	manifest := testutil.WriteManifest(t, "broken.hcl", `cast "a.A" { to = [`)
	cfg, err := NewConfig(Config{ManifestPath: manifest})
	require.NoError(t, err)

	require.Panics(t, func() {
		NewApp(&SafeBuffer{}, cfg, hcl.NewLoader())
	})
}
