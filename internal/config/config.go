package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ModelPath    string
	MetadataPath string
	Port         string
}

// Load reads the .env file if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ModelPath:    os.Getenv("MODEL_PATH"),
		MetadataPath: os.Getenv("MODEL_METADATA_PATH"),
		Port:         os.Getenv("PORT"),
	}

	if cfg.ModelPath == "" {
		cfg.ModelPath = "models/catdog.onnx"
	}
	if cfg.MetadataPath == "" {
		cfg.MetadataPath = metadataPathFor(cfg.ModelPath)
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

// metadataPathFor derives the metadata sidecar path from the model path,
// e.g. models/catdog.onnx -> models/catdog_metadata.json.
func metadataPathFor(modelPath string) string {
	base := strings.TrimSuffix(modelPath, ".onnx")
	return base + "_metadata.json"
}
