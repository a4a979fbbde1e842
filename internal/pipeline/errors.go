package pipeline

// DecodeError reports input bytes that could not be turned into an image,
// either malformed base64 or an unsupported/corrupt raster format.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decoding image: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }
