package pipeline

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/nfnt/resize"
)

const (
	// TargetSize is the square edge length the model was trained on.
	TargetSize = 256
	channels   = 3

	LabelCat = "Cat"
	LabelDog = "Dog"
)

// Predictor runs a preprocessed tensor through a binary classifier and
// returns the raw probability of the "Dog" class. Implementations must be
// safe for concurrent callers.
type Predictor interface {
	Predict(input []float32) (float32, error)
}

// Prediction is the final classification result. Confidence is the
// probability mass on the predicted label, so it is always >= 0.5.
type Prediction struct {
	Label      string
	Confidence float32
}

// Pipeline turns a decoded image into a Cat/Dog prediction. It holds no
// per-request state; one instance serves all requests.
type Pipeline struct {
	predictor Predictor
}

func New(p Predictor) *Pipeline {
	return &Pipeline{predictor: p}
}

// Infer preprocesses img and classifies it.
func (p *Pipeline) Infer(img image.Image) (Prediction, error) {
	input := Preprocess(img)
	prob, err := p.predictor.Predict(input)
	if err != nil {
		return Prediction{}, err
	}
	return Classify(prob), nil
}

// Preprocess resizes img to TargetSize x TargetSize with bilinear resampling
// and flattens it into a channel-last float32 tensor scaled into [0,1]. The
// leading batch dimension of 1 is implicit in the flat layout; the returned
// slice has 1*TargetSize*TargetSize*3 elements.
func Preprocess(img image.Image) []float32 {
	resized := resize.Resize(TargetSize, TargetSize, img, resize.Bilinear)

	out := make([]float32, TargetSize*TargetSize*channels)
	bounds := resized.Bounds()

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			// RGBA returns 16-bit channels; take the high byte to get
			// back to the 8-bit range the /255 normalization assumes.
			out[i] = float32(r>>8) / 255.0
			out[i+1] = float32(g>>8) / 255.0
			out[i+2] = float32(b>>8) / 255.0
			i += channels
		}
	}
	return out
}

// Classify applies the decision rule to the raw probability. The threshold
// is strict: exactly 0.5 is a Cat.
func Classify(prob float32) Prediction {
	if prob > 0.5 {
		return Prediction{Label: LabelDog, Confidence: prob}
	}
	return Prediction{Label: LabelCat, Confidence: 1 - prob}
}

// Decode parses raw image bytes (JPEG or PNG).
func Decode(b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// DecodeBase64 strips a data URL prefix ("data:image/...;base64,") when
// present and decodes the remaining payload.
func DecodeBase64(s string) ([]byte, error) {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[i+1:]
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return b, nil
}
