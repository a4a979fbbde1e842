package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"catdog-api/internal/pipeline"
)

type Handler struct {
	pipeline *pipeline.Pipeline
}

func NewHandler(p *pipeline.Pipeline) *Handler {
	return &Handler{pipeline: p}
}

type predictRequest struct {
	Image string `json:"image"`
}

type predictResponse struct {
	Success    bool    `json:"success"`
	Prediction string  `json:"prediction,omitempty"`
	Confidence float32 `json:"confidence,omitempty"`
	Error      string  `json:"error,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// Predict accepts {"image": "data:image/...;base64,<payload>"} and returns
// the Cat/Dog label. A missing image field is the caller's fault (400);
// everything the pipeline rejects comes back as 500.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Image == "" {
		writeJSON(w, http.StatusBadRequest, predictResponse{
			Success: false,
			Error:   "No image data received",
		})
		return
	}

	raw, err := pipeline.DecodeBase64(req.Image)
	if err != nil {
		log.Printf("Base64 decode error: %v", err)
		writeJSON(w, http.StatusInternalServerError, predictResponse{Success: false, Error: err.Error()})
		return
	}

	img, err := pipeline.Decode(raw)
	if err != nil {
		log.Printf("Image decode error: %v", err)
		writeJSON(w, http.StatusInternalServerError, predictResponse{Success: false, Error: err.Error()})
		return
	}

	result, err := h.pipeline.Infer(img)
	if err != nil {
		log.Printf("Inference error: %v", err)
		writeJSON(w, http.StatusInternalServerError, predictResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, predictResponse{
		Success:    true,
		Prediction: result.Label,
		Confidence: result.Confidence,
	})
}

func writeJSON(w http.ResponseWriter, status int, body predictResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
