package figyaml

import "context"

// Encoder serializes a converted screen to bytes.
type Encoder interface {
	EncodeScreen(screen *Screen) ([]byte, error)
}

// ScreenStore persists converted screens with atomic semantics.
// Save writes to a temporary location; Commit makes all saved screens
// visible at once; Abort discards pending writes. A failed conversion
// must never leave partial output behind.
type ScreenStore interface {
	Save(ctx context.Context, screen *Screen) error
	Commit() error
	Abort() error
}
