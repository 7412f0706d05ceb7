package classify

import (
	"context"

	"github.com/figyaml/figyaml"
	"golang.org/x/sync/errgroup"
)

// Converter turns a design file into a set of converted screens. Screens
// share no state, so they are classified concurrently; output order still
// matches document order.
type Converter struct {
	Classifier  figyaml.Classifier
	Concurrency int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
)

// ProgressEvent reports progress during a conversion.
type ProgressEvent struct {
	Type   ProgressType
	Screen string
	Total  int
	Error  error
}

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// Convert classifies every screen in the file. Conversion is
// all-or-nothing: the first classification error cancels remaining work
// and no screens are returned.
func (c *Converter) Convert(ctx context.Context, file *figyaml.File, progress ProgressFunc) ([]*figyaml.Screen, error) {
	roots := ScreenRoots(file)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(roots)})
	}
	if len(roots) == 0 {
		return nil, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	screens := make([]*figyaml.Screen, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			el, err := c.Classifier.Classify(root)
			if err != nil {
				if progress != nil {
					progress(ProgressEvent{Type: ProgressFailed, Screen: root.Name, Error: err})
				}
				return err
			}
			screens[i] = &figyaml.Screen{Name: root.Name, Root: el}
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, Screen: root.Name})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return screens, nil
}
