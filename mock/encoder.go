package mock

import "github.com/figyaml/figyaml"

var _ figyaml.Encoder = (*Encoder)(nil)

// Encoder is a mock implementation of figyaml.Encoder.
type Encoder struct {
	EncodeScreenFn func(screen *figyaml.Screen) ([]byte, error)
}

func (e *Encoder) EncodeScreen(screen *figyaml.Screen) ([]byte, error) {
	return e.EncodeScreenFn(screen)
}
