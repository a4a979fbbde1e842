package model

// Metadata is the JSON sidecar shipped next to the .onnx file. It pins the
// tensor shapes the network was exported with and the square image size the
// preprocessing must target.
type Metadata struct {
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
}

// LoadError reports a failure to bring the classifier up at startup. It is
// fatal: the process must not serve traffic without a loaded model.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "loading model " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// InferenceError reports a failed model call on an otherwise loaded
// classifier. It is per-request and never fatal.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string { return "inference: " + e.Err.Error() }

func (e *InferenceError) Unwrap() error { return e.Err }
