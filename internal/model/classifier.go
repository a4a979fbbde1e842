package model

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Classifier wraps an ONNX binary classifier. It is loaded once at process
// startup and never mutated afterwards. The session's input and output
// tensors are preallocated and shared across calls, and AdvancedSession.Run
// is not reentrant, so Predict serializes callers with a mutex.
type Classifier struct {
	session      *ort.AdvancedSession
	Metadata     Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	mu           sync.Mutex
}

// NewClassifier loads the network and its metadata sidecar. Any failure is a
// *LoadError; callers are expected to treat it as fatal.
func NewClassifier(modelPath, metadataPath string) (*Classifier, error) {
	metaFile, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, &LoadError{Path: metadataPath, Err: err}
	}

	var metadata Metadata
	if err := json.Unmarshal(metaFile, &metadata); err != nil {
		return nil, &LoadError{Path: metadataPath, Err: err}
	}
	if err := validateMetadata(metadata); err != nil {
		return nil, &LoadError{Path: metadataPath, Err: err}
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, &LoadError{Path: modelPath, Err: fmt.Errorf("initialize ONNX environment: %w", err)}
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(metadata.InputShape...))
	if err != nil {
		return nil, &LoadError{Path: modelPath, Err: fmt.Errorf("create input tensor: %w", err)}
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(metadata.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, &LoadError{Path: modelPath, Err: fmt.Errorf("create output tensor: %w", err)}
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, &LoadError{Path: modelPath, Err: err}
	}

	return &Classifier{
		session:      session,
		Metadata:     metadata,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// validateMetadata rejects sidecars that do not describe a single-image NHWC
// input feeding a binary head.
func validateMetadata(m Metadata) error {
	if len(m.InputShape) != 4 {
		return fmt.Errorf("input_shape must have 4 dims, got %v", m.InputShape)
	}
	if m.InputShape[0] != 1 {
		return fmt.Errorf("batch dim must be 1, got %d", m.InputShape[0])
	}
	if m.InputShape[3] != 3 {
		return fmt.Errorf("input must be channel-last RGB, got shape %v", m.InputShape)
	}
	size := int64(m.ImageSize)
	if size <= 0 || m.InputShape[1] != size || m.InputShape[2] != size {
		return fmt.Errorf("image_size %d does not match input_shape %v", m.ImageSize, m.InputShape)
	}
	if len(m.OutputShape) == 0 {
		return fmt.Errorf("output_shape is empty")
	}
	return nil
}

// Predict runs one inference and returns element 0 of the output vector,
// the raw probability of the positive class.
func (c *Classifier) Predict(input []float32) (float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := c.inputTensor.GetData()
	if len(input) != len(data) {
		return 0, &InferenceError{Err: fmt.Errorf("expected %d input values, got %d", len(data), len(input))}
	}
	copy(data, input)

	if err := c.session.Run(); err != nil {
		return 0, &InferenceError{Err: err}
	}

	output := c.outputTensor.GetData()
	if len(output) == 0 {
		return 0, &InferenceError{Err: fmt.Errorf("model produced empty output")}
	}
	return output[0], nil
}

func (c *Classifier) Close() {
	if c.inputTensor != nil {
		c.inputTensor.Destroy()
	}
	if c.outputTensor != nil {
		c.outputTensor.Destroy()
	}
	if c.session != nil {
		c.session.Destroy()
	}
	ort.DestroyEnvironment()
}
