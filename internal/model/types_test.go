package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validTestMetadata() Metadata {
	return Metadata{
		InputShape:  []int64{1, 256, 256, 3},
		OutputShape: []int64{1, 1},
		Classes:     []string{"Cat", "Dog"},
		ImageSize:   256,
	}
}

func TestValidateMetadata(t *testing.T) {
	require.NoError(t, validateMetadata(validTestMetadata()))
}

func TestValidateMetadataRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Metadata)
	}{
		{"wrong rank", func(m *Metadata) { m.InputShape = []int64{256, 256, 3} }},
		{"batch not one", func(m *Metadata) { m.InputShape[0] = 8 }},
		{"channel-first layout", func(m *Metadata) { m.InputShape = []int64{1, 3, 256, 256} }},
		{"size mismatch", func(m *Metadata) { m.ImageSize = 224 }},
		{"empty output", func(m *Metadata) { m.OutputShape = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validTestMetadata()
			tc.mutate(&m)
			require.Error(t, validateMetadata(m))
		})
	}
}

func TestLoadErrorWrapping(t *testing.T) {
	cause := errors.New("no such file")
	err := &LoadError{Path: "models/catdog.onnx", Err: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "models/catdog.onnx")
	require.Contains(t, err.Error(), "no such file")
}

func TestInferenceErrorWrapping(t *testing.T) {
	cause := errors.New("shape mismatch")
	err := &InferenceError{Err: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "shape mismatch")
}
