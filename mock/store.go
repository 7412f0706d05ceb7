package mock

import (
	"context"

	"github.com/figyaml/figyaml"
)

var _ figyaml.ScreenStore = (*ScreenStore)(nil)

// ScreenStore is a mock implementation of figyaml.ScreenStore.
type ScreenStore struct {
	SaveFn   func(ctx context.Context, screen *figyaml.Screen) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ScreenStore) Save(ctx context.Context, screen *figyaml.Screen) error {
	return s.SaveFn(ctx, screen)
}

func (s *ScreenStore) Commit() error {
	return s.CommitFn()
}

func (s *ScreenStore) Abort() error {
	return s.AbortFn()
}
