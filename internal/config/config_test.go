package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MODEL_PATH", "")
	t.Setenv("MODEL_METADATA_PATH", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "models/catdog.onnx", cfg.ModelPath)
	require.Equal(t, "models/catdog_metadata.json", cfg.MetadataPath)
	require.Equal(t, "8080", cfg.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MODEL_PATH", "/opt/ml/net.onnx")
	t.Setenv("MODEL_METADATA_PATH", "")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/opt/ml/net.onnx", cfg.ModelPath)
	require.Equal(t, "/opt/ml/net_metadata.json", cfg.MetadataPath)
	require.Equal(t, "9000", cfg.Port)
}
