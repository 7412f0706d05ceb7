package figyaml

import "fmt"

// Figma node type tags the converter recognizes. Unrecognized tags are
// handled permissively by classification (they become frame containers).
const (
	NodeTypeDocument         = "DOCUMENT"
	NodeTypeCanvas           = "CANVAS"
	NodeTypeFrame            = "FRAME"
	NodeTypeComponent        = "COMPONENT"
	NodeTypeInstance         = "INSTANCE"
	NodeTypeGroup            = "GROUP"
	NodeTypeText             = "TEXT"
	NodeTypeRectangle        = "RECTANGLE"
	NodeTypeVector           = "VECTOR"
	NodeTypeEllipse          = "ELLIPSE"
	NodeTypeLine             = "LINE"
	NodeTypePolygon          = "POLYGON"
	NodeTypeStar             = "STAR"
	NodeTypeBooleanOperation = "BOOLEAN_OPERATION"
)

// Auto-layout direction hints reported by Figma.
const (
	LayoutHorizontal = "HORIZONTAL"
	LayoutVertical   = "VERTICAL"
)

// Fill paint types.
const (
	FillTypeSolid = "SOLID"
	FillTypeImage = "IMAGE"
)

// Rect is an axis-aligned bounding box in absolute canvas coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Color is an RGBA color with channels in the 0-1 range, as Figma
// serializes it.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Hex returns the color as an uppercase #RRGGBB string. Alpha is dropped.
func (c *Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", int(c.R*255), int(c.G*255), int(c.B*255))
}

// Fill describes a single paint applied to a node.
type Fill struct {
	Type     string `json:"type"`
	ImageRef string `json:"imageRef,omitempty"`
	Color    *Color `json:"color,omitempty"`
}

// TextStyle carries the typography attributes Figma reports on TEXT nodes.
type TextStyle struct {
	FontSize            float64 `json:"fontSize,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontFamily          string  `json:"fontFamily,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
}

// Node is a single node in an exported design document tree. The JSON tags
// match the Figma REST API shape, so the same type decodes both live API
// responses and on-disk exports.
type Node struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Visible     *bool   `json:"visible,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
	BoundingBox *Rect   `json:"absoluteBoundingBox,omitempty"`

	Fills      []Fill     `json:"fills,omitempty"`
	Characters string     `json:"characters,omitempty"`
	Style      *TextStyle `json:"style,omitempty"`

	LayoutMode            string   `json:"layoutMode,omitempty"`
	PaddingLeft           *float64 `json:"paddingLeft,omitempty"`
	PaddingRight          *float64 `json:"paddingRight,omitempty"`
	PaddingTop            *float64 `json:"paddingTop,omitempty"`
	PaddingBottom         *float64 `json:"paddingBottom,omitempty"`
	ItemSpacing           float64  `json:"itemSpacing,omitempty"`
	PrimaryAxisAlignItems string   `json:"primaryAxisAlignItems,omitempty"`
	BackgroundColor       *Color   `json:"backgroundColor,omitempty"`
	CornerRadius          float64  `json:"cornerRadius,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Validate returns an error if the node is missing required fields or
// carries an impossible bounding box.
func (n *Node) Validate() error {
	if n.ID == "" {
		return Errorf(EINVALID, "node id required")
	}
	if bb := n.BoundingBox; bb != nil && (bb.Width < 0 || bb.Height < 0) {
		return Errorf(EINVALID, "node %q has negative bounding box %gx%g", n.ID, bb.Width, bb.Height)
	}
	return nil
}

// Width returns the bounding box width, or zero when no box is present.
func (n *Node) Width() float64 {
	if n.BoundingBox == nil {
		return 0
	}
	return n.BoundingBox.Width
}

// Height returns the bounding box height, or zero when no box is present.
func (n *Node) Height() float64 {
	if n.BoundingBox == nil {
		return 0
	}
	return n.BoundingBox.Height
}

// File is a design file as returned by the Figma files endpoint. Full
// documents carry Document; node-scoped responses carry Nodes instead.
type File struct {
	Name     string                `json:"name"`
	Document *Node                 `json:"document,omitempty"`
	Nodes    map[string]*NodeEntry `json:"nodes,omitempty"`
}

// NodeEntry wraps a document subtree in a node-scoped API response.
type NodeEntry struct {
	Document *Node `json:"document"`
}
