package figyaml

// Classifier converts a design node into a layout element, recursively
// classifying its children. Classification is a pure function of node
// attributes: the same node always yields the same element.
type Classifier interface {
	Classify(node *Node) (Element, error)
}

// ClassifierConfig exposes the classification heuristics as data so the
// behavior stays auditable and adjustable without code changes. The icon
// and image rules are approximate by design; designers' naming conventions
// are unreliable signal and false positives are an accepted tradeoff.
type ClassifierConfig struct {
	// IconNameTokens are matched case-insensitively as substrings of the
	// node name. A match on a vector-type node classifies it as an icon.
	IconNameTokens []string

	// IconMaxSize classifies a vector-type node as an icon when both
	// bounding box dimensions are at or below this value, regardless of
	// its name.
	IconMaxSize float64

	// VectorTypes are the node type tags eligible for icon detection.
	VectorTypes []string
}

// DefaultClassifierConfig returns the stock heuristics. The token set
// mirrors common designer naming conventions for icon layers.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		IconNameTokens: []string{
			"icon", "logo", "arrow", "check", "close", "menu", "search",
			"heart", "star", "home", "profile", "settings", "notification",
			"back", "forward", "play", "pause", "stop", "edit", "delete",
			"add", "plus", "minus", "refresh", "share", "download", "upload",
			"li:", "ic_", "ico_", "btn_", "img_icon", "icon_",
		},
		IconMaxSize: 32,
		VectorTypes: []string{
			NodeTypeVector,
			NodeTypeEllipse,
			NodeTypeLine,
			NodeTypePolygon,
			NodeTypeStar,
			NodeTypeBooleanOperation,
		},
	}
}
