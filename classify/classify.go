// Package classify implements the node classification core. It walks a
// design node tree and produces an isomorphic layout element tree,
// classifying every node as text, icon, image or container.
package classify

import (
	"strings"

	"github.com/figyaml/figyaml"
)

// Ensure Classifier implements figyaml.Classifier at compile time.
var _ figyaml.Classifier = (*Classifier)(nil)

// Classifier classifies design nodes using a fixed rule order:
// text, icon, image, container. The first matching rule wins, so a node
// satisfying both the icon-name pattern and the image-fill condition is
// always an icon. The image rule applies to leaf nodes only; image-filled
// nodes with children recurse as containers so no descendant is lost.
type Classifier struct {
	config figyaml.ClassifierConfig
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithConfig replaces the entire heuristic configuration.
func WithConfig(config figyaml.ClassifierConfig) Option {
	return func(c *Classifier) {
		c.config = config
	}
}

// WithIconMaxSize overrides the small-vector icon size threshold.
func WithIconMaxSize(size float64) Option {
	return func(c *Classifier) {
		c.config.IconMaxSize = size
	}
}

// WithIconTokens appends extra icon name tokens to the configured set.
func WithIconTokens(tokens ...string) Option {
	return func(c *Classifier) {
		c.config.IconNameTokens = append(c.config.IconNameTokens, tokens...)
	}
}

// NewClassifier creates a Classifier with the default heuristics.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{config: figyaml.DefaultClassifierConfig()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify converts a node tree into a layout element tree. The walk is
// all-or-nothing: the first malformed node aborts with an error naming the
// node's path from the root, and no partial result is returned.
func (c *Classifier) Classify(node *figyaml.Node) (figyaml.Element, error) {
	w := &walker{config: c.config, seen: make(map[string]bool)}
	return w.classify(node, nil)
}

// walker carries per-run traversal state. The seen set enforces the
// document invariant that node IDs are unique, which also breaks any
// accidental cycle before it can recurse forever.
type walker struct {
	config figyaml.ClassifierConfig
	seen   map[string]bool
}

func (w *walker) classify(node *figyaml.Node, path []string) (figyaml.Element, error) {
	if node == nil {
		return nil, figyaml.Errorf(figyaml.EINVALID, "nil node at %s", pathString(path))
	}
	if node.ID == "" {
		return nil, figyaml.Errorf(figyaml.EINVALID, "node missing id at %s", pathString(path))
	}
	if w.seen[node.ID] {
		return nil, figyaml.Errorf(figyaml.EINVALID, "duplicate node id %q at %s (document is not a tree)", node.ID, pathString(path))
	}
	w.seen[node.ID] = true

	path = append(path, nodeLabel(node))

	if err := node.Validate(); err != nil {
		return nil, figyaml.Errorf(figyaml.EINVALID, "%s at %s", figyaml.ErrorMessage(err), pathString(path))
	}

	switch {
	case node.Type == figyaml.NodeTypeText:
		return w.text(node), nil
	case w.isIcon(node):
		return w.icon(node), nil
	case hasImageFill(node) && len(node.Children) == 0:
		// The image rule only claims leaves. An image-filled node with
		// children is a container with a background image, and collapsing
		// it to an Image would drop its subtree.
		return w.image(node), nil
	default:
		return w.container(node, path)
	}
}

// text builds a Text leaf. Children of TEXT nodes are style runs and are
// ignored by contract; all present style attributes are copied as-is.
func (w *walker) text(node *figyaml.Node) *figyaml.Text {
	t := &figyaml.Text{Value: node.Characters}
	if s := node.Style; s != nil {
		t.FontSize = s.FontSize
		t.FontWeight = s.FontWeight
		t.FontFamily = s.FontFamily
		t.Align = strings.ToLower(s.TextAlignHorizontal)
		t.LineHeight = s.LineHeightPx
		t.LetterSpacing = s.LetterSpacing
	}
	if c := solidFillColor(node.Fills); c != nil {
		t.Color = c.Hex()
	}
	return t
}

func (w *walker) isIcon(node *figyaml.Node) bool {
	vector := false
	for _, vt := range w.config.VectorTypes {
		if node.Type == vt {
			vector = true
			break
		}
	}
	if !vector {
		return false
	}
	if w.nameMatchesIcon(node.Name) {
		return true
	}
	// Small vectors are likely icons even without a telling name.
	bb := node.BoundingBox
	return bb != nil && bb.Width <= w.config.IconMaxSize && bb.Height <= w.config.IconMaxSize
}

func (w *walker) nameMatchesIcon(name string) bool {
	lower := strings.ToLower(name)
	for _, token := range w.config.IconNameTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func (w *walker) icon(node *figyaml.Node) *figyaml.Icon {
	return &figyaml.Icon{
		Name:   node.Name,
		Width:  node.Width(),
		Height: node.Height(),
		ID:     node.ID,
		Path:   figyaml.IconAssetPath(node.ID, node.Name),
	}
}

// image builds an Image leaf. Asset extraction happens out of band, so the
// path is the local asset location the node is expected to resolve to; the
// node name seeds it, falling back to the fill's image reference when the
// name is empty.
func (w *walker) image(node *figyaml.Node) *figyaml.Image {
	seed := node.Name
	if seed == "" {
		for _, fill := range node.Fills {
			if fill.Type == figyaml.FillTypeImage && fill.ImageRef != "" {
				seed = fill.ImageRef
				break
			}
		}
	}
	return &figyaml.Image{
		Path:   figyaml.ImageAssetPath(node.ID, seed),
		Width:  node.Width(),
		Height: node.Height(),
		ID:     node.ID,
	}
}

func (w *walker) container(node *figyaml.Node, path []string) (figyaml.Element, error) {
	c := &figyaml.Container{
		Kind:     containerKind(node.LayoutMode),
		Name:     node.Name,
		Padding:  meanPadding(node),
		Spacing:  node.ItemSpacing,
		Radius:   node.CornerRadius,
		Width:    node.Width(),
		Height:   node.Height(),
		Children: []figyaml.Element{},
	}
	switch node.PrimaryAxisAlignItems {
	case "CENTER":
		c.Alignment = "center"
	case "MIN":
		c.Alignment = "start"
	case "MAX":
		c.Alignment = "end"
	}
	if node.BackgroundColor != nil {
		c.Background = node.BackgroundColor.Hex()
	} else if col := solidFillColor(node.Fills); col != nil {
		c.Background = col.Hex()
	}

	for _, child := range node.Children {
		el, err := w.classify(child, path)
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, el)
	}
	return c, nil
}

func containerKind(layoutMode string) figyaml.ContainerKind {
	switch layoutMode {
	case figyaml.LayoutHorizontal:
		return figyaml.KindRow
	case figyaml.LayoutVertical:
		return figyaml.KindColumn
	default:
		return figyaml.KindFrame
	}
}

func meanPadding(node *figyaml.Node) float64 {
	var sum float64
	var count int
	for _, p := range []*float64{node.PaddingLeft, node.PaddingRight, node.PaddingTop, node.PaddingBottom} {
		if p != nil {
			sum += *p
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func hasImageFill(node *figyaml.Node) bool {
	for _, fill := range node.Fills {
		if fill.Type == figyaml.FillTypeImage {
			return true
		}
	}
	return false
}

func solidFillColor(fills []figyaml.Fill) *figyaml.Color {
	if len(fills) == 0 {
		return nil
	}
	if fills[0].Type == figyaml.FillTypeSolid {
		return fills[0].Color
	}
	return nil
}

func nodeLabel(node *figyaml.Node) string {
	if node.Name != "" {
		return node.Name
	}
	return node.ID
}

func pathString(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, " > ")
}
