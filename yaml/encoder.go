// Package yaml serializes converted screens using gopkg.in/yaml.v3.
// Mappings are built as explicit yaml.Node trees so key order is stable:
// type first, variant attributes next, children last.
package yaml

import (
	"bytes"
	"math"
	"strconv"

	"github.com/figyaml/figyaml"
	"gopkg.in/yaml.v3"
)

// Ensure Encoder implements figyaml.Encoder at compile time.
var _ figyaml.Encoder = (*Encoder)(nil)

// Encoder serializes screens to YAML.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeScreen serializes the screen's root element. The root element is
// the top of the document; the screen name travels in the file name.
func (e *Encoder) EncodeScreen(screen *figyaml.Screen) ([]byte, error) {
	if screen == nil || screen.Root == nil {
		return nil, figyaml.Errorf(figyaml.EINVALID, "screen has no root element")
	}

	root, err := elementNode(screen.Root)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func elementNode(el figyaml.Element) (*yaml.Node, error) {
	switch el := el.(type) {
	case *figyaml.Text:
		m := newMapping()
		m.str("type", "text")
		m.str("value", el.Value)
		m.numIf("fontSize", el.FontSize)
		m.numIf("fontWeight", el.FontWeight)
		m.strIf("fontFamily", el.FontFamily)
		m.strIf("color", el.Color)
		m.strIf("align", el.Align)
		m.numIf("lineHeight", el.LineHeight)
		m.numIf("letterSpacing", el.LetterSpacing)
		return m.node, nil

	case *figyaml.Icon:
		m := newMapping()
		m.str("type", "icon")
		m.str("name", el.Name)
		m.num("width", el.Width)
		m.num("height", el.Height)
		m.str("id", el.ID)
		m.strIf("path", el.Path)
		return m.node, nil

	case *figyaml.Image:
		m := newMapping()
		m.str("type", "image")
		m.str("path", el.Path)
		m.num("width", el.Width)
		m.num("height", el.Height)
		m.str("id", el.ID)
		return m.node, nil

	case *figyaml.Container:
		m := newMapping()
		m.str("type", string(el.Kind))
		m.strIf("name", el.Name)
		m.numIf("padding", el.Padding)
		m.numIf("spacing", el.Spacing)
		m.strIf("alignment", el.Alignment)
		m.strIf("background", el.Background)
		m.numIf("radius", el.Radius)
		m.numIf("width", el.Width)
		m.numIf("height", el.Height)

		children := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, child := range el.Children {
			n, err := elementNode(child)
			if err != nil {
				return nil, err
			}
			children.Content = append(children.Content, n)
		}
		m.raw("children", children)
		return m.node, nil

	default:
		// Element is a closed union; this is unreachable unless a new
		// variant is added without updating the encoder.
		return nil, figyaml.Errorf(figyaml.EINTERNAL, "unknown element type %T", el)
	}
}

// mapping accumulates ordered key/value pairs for a yaml mapping node.
type mapping struct {
	node *yaml.Node
}

func newMapping() *mapping {
	return &mapping{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

func (m *mapping) raw(key string, value *yaml.Node) {
	m.node.Content = append(m.node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}

func (m *mapping) str(key, value string) {
	m.raw(key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value})
}

// strIf emits the key only when the value is non-empty.
func (m *mapping) strIf(key, value string) {
	if value == "" {
		return
	}
	m.str(key, value)
}

func (m *mapping) num(key string, value float64) {
	m.raw(key, numberNode(value))
}

// numIf emits the key only when the value is non-zero. Optional numeric
// attributes use zero as the absent marker.
func (m *mapping) numIf(key string, value float64) {
	if value == 0 {
		return
	}
	m.num(key, value)
}

// numberNode renders integral values as YAML integers so dimensions read
// as "24" rather than "24.0".
func numberNode(value float64) *yaml.Node {
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatInt(int64(value), 10),
		}
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!float",
		Value: strconv.FormatFloat(value, 'g', -1, 64),
	}
}
