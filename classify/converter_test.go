package classify_test

import (
	"context"
	"testing"

	"github.com/figyaml/figyaml"
	"github.com/figyaml/figyaml/classify"
	"github.com/figyaml/figyaml/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile(screenNames ...string) *figyaml.File {
	canvas := &figyaml.Node{ID: "0:1", Name: "Page 1", Type: figyaml.NodeTypeCanvas}
	for i, name := range screenNames {
		canvas.Children = append(canvas.Children, &figyaml.Node{
			ID:   string(rune('a' + i)),
			Name: name,
			Type: figyaml.NodeTypeFrame,
		})
	}
	return &figyaml.File{
		Name:     "App",
		Document: &figyaml.Node{ID: "0:0", Type: figyaml.NodeTypeDocument, Children: []*figyaml.Node{canvas}},
	}
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts all screens in document order", func(t *testing.T) {
		t.Parallel()

		conv := &classify.Converter{Classifier: classify.NewClassifier(), Concurrency: 2}

		screens, err := conv.Convert(context.Background(), testFile("Home", "Settings", "Login"), nil)
		require.NoError(t, err)
		require.Len(t, screens, 3)
		assert.Equal(t, "Home", screens[0].Name)
		assert.Equal(t, "Settings", screens[1].Name)
		assert.Equal(t, "Login", screens[2].Name)
		for _, s := range screens {
			assert.IsType(t, &figyaml.Container{}, s.Root)
		}
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		conv := &classify.Converter{Classifier: classify.NewClassifier()}

		var started, completed int
		progress := func(event classify.ProgressEvent) {
			switch event.Type {
			case classify.ProgressStarted:
				started = event.Total
			case classify.ProgressCompleted:
				completed++
			}
		}

		_, err := conv.Convert(context.Background(), testFile("Home", "Login"), progress)
		require.NoError(t, err)
		assert.Equal(t, 2, started)
		assert.Equal(t, 2, completed)
	})

	t.Run("classification error aborts the conversion", func(t *testing.T) {
		t.Parallel()

		classifier := &mock.Classifier{
			ClassifyFn: func(node *figyaml.Node) (figyaml.Element, error) {
				if node.Name == "Settings" {
					return nil, figyaml.Errorf(figyaml.EINVALID, "node missing id at Settings")
				}
				return &figyaml.Container{Kind: figyaml.KindFrame, Children: []figyaml.Element{}}, nil
			},
		}
		conv := &classify.Converter{Classifier: classifier, Concurrency: 1}

		screens, err := conv.Convert(context.Background(), testFile("Home", "Settings", "Login"), nil)
		require.Error(t, err)
		assert.Equal(t, figyaml.EINVALID, figyaml.ErrorCode(err))
		assert.Nil(t, screens)
	})

	t.Run("empty document yields no screens", func(t *testing.T) {
		t.Parallel()

		conv := &classify.Converter{Classifier: classify.NewClassifier()}

		screens, err := conv.Convert(context.Background(), &figyaml.File{}, nil)
		require.NoError(t, err)
		assert.Empty(t, screens)
	})
}
