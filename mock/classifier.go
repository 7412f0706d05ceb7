package mock

import "github.com/figyaml/figyaml"

var _ figyaml.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of figyaml.Classifier.
type Classifier struct {
	ClassifyFn func(node *figyaml.Node) (figyaml.Element, error)
}

func (c *Classifier) Classify(node *figyaml.Node) (figyaml.Element, error) {
	return c.ClassifyFn(node)
}
