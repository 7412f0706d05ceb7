package figyaml

// ContainerKind describes the layout role of a container element.
type ContainerKind string

// Container kinds. Row and column come from auto-layout hints; frame is
// the permissive fallback for everything else.
const (
	KindRow    ContainerKind = "row"
	KindColumn ContainerKind = "column"
	KindFrame  ContainerKind = "frame"
)

// Element is a node in the converted layout tree. The union is closed:
// Text, Icon, Image and Container are the only implementations, so type
// switches over Element can treat any other type as an internal error.
type Element interface {
	element()
}

// Text is a leaf element holding rendered copy and its typography.
// Style attributes are copied from the source node as-is; zero values
// mean the attribute was absent.
type Text struct {
	Value         string
	FontSize      float64
	FontWeight    float64
	FontFamily    string
	Color         string
	Align         string
	LineHeight    float64
	LetterSpacing float64
}

// Icon is a leaf element referencing a vector asset.
type Icon struct {
	Name   string
	Width  float64
	Height float64
	ID     string
	Path   string
}

// Image is a leaf element referencing a bitmap asset.
type Image struct {
	Path   string
	Width  float64
	Height float64
	ID     string
}

// Container groups child elements under a layout kind. Children preserve
// the source document order; an empty container stays empty rather than
// being pruned.
type Container struct {
	Kind       ContainerKind
	Name       string
	Padding    float64
	Spacing    float64
	Alignment  string
	Background string
	Radius     float64
	Width      float64
	Height     float64
	Children   []Element
}

func (*Text) element()      {}
func (*Icon) element()      {}
func (*Image) element()     {}
func (*Container) element() {}

// Screen is one top-level page of a converted design document. Each screen
// is written to its own output file, named after the screen.
type Screen struct {
	Name string
	Root Element
}
