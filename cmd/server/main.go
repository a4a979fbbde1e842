package main

import (
	"log"
	"net/http"

	"catdog-api/internal/config"
	"catdog-api/internal/handlers"
	"catdog-api/internal/model"
	"catdog-api/internal/pipeline"
)

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Loading model from: %s", cfg.ModelPath)

	classifier, err := model.NewClassifier(cfg.ModelPath, cfg.MetadataPath)
	if err != nil {
		log.Fatalf("Failed to initialize classifier: %v", err)
	}
	defer classifier.Close()

	if classifier.Metadata.ImageSize != pipeline.TargetSize {
		log.Fatalf("Model expects %dx%d input, pipeline produces %dx%d",
			classifier.Metadata.ImageSize, classifier.Metadata.ImageSize,
			pipeline.TargetSize, pipeline.TargetSize)
	}

	handler := handlers.NewHandler(pipeline.New(classifier))

	http.HandleFunc("/health", enableCORS(handler.Health))
	http.HandleFunc("/predict", enableCORS(handler.Predict))

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Model loaded: %s", cfg.ModelPath)
	log.Printf("Classes: %v", classifier.Metadata.Classes)
	log.Println("Endpoints:")
	log.Println("  GET  /health  - Health check")
	log.Println("  POST /predict - Predict from base64 image")

	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
