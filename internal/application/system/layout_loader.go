package system

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/younwookim/mgui/internal/domain/ui"
	"github.com/younwookim/mgui/internal/infrastructure/config"
	"go.uber.org/zap"
)

var (
	ErrUnknownKind        = errors.New("unknown element kind")
	ErrInvalidAlignment   = errors.New("invalid alignment")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidColor       = errors.New("invalid color")
	ErrNotContainer       = errors.New("element cannot have children")
)

// LayoutBuilder converts layout documents into element trees
type LayoutBuilder struct {
	// Palette supplies fills and tints for nodes that do not set their own.
	// Nil keeps the element defaults.
	Palette *config.Palette
	Logger  *zap.Logger
}

// BuildLayout converts a LayoutDoc into a Root with element defaults
func BuildLayout(doc *config.LayoutDoc) (*ui.Root, error) {
	return (&LayoutBuilder{}).Build(doc)
}

// Build converts a LayoutDoc into a Root. The document root must be a container.
func (b *LayoutBuilder) Build(doc *config.LayoutDoc) (*ui.Root, error) {
	node := &doc.Root
	path := nodePath("", node, 0)

	var content ui.Container
	switch kind := strings.ToLower(strings.TrimSpace(node.Kind)); kind {
	case "panel":
		content = ui.NewPanel()
	case "canvas":
		content = ui.NewCanvas()
	case "stackpanel":
		content = ui.NewStackPanel()
	case "image":
		return nil, fmt.Errorf("%s: layout root: %w", path, ErrNotContainer)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownKind, node.Kind)
	}

	if err := b.apply(content, node, path); err != nil {
		return nil, err
	}
	if err := b.addChildren(content, node.Children, path); err != nil {
		return nil, err
	}
	return ui.NewRoot(content), nil
}

func (b *LayoutBuilder) addChildren(parent ui.Container, nodes []config.NodeConfig, parentPath string) error {
	for i := range nodes {
		node := &nodes[i]
		path := nodePath(parentPath, node, i)

		var el ui.Element
		switch strings.ToLower(strings.TrimSpace(node.Kind)) {
		case "panel":
			el = ui.AddChild[ui.Panel](parent)
		case "canvas":
			el = ui.AddChild[ui.Canvas](parent)
		case "stackpanel":
			el = ui.AddChild[ui.StackPanel](parent)
		case "image":
			if len(node.Children) > 0 {
				return fmt.Errorf("%s: %w", path, ErrNotContainer)
			}
			el = ui.AddChild[ui.Image](parent)
		default:
			return fmt.Errorf("%s: %w %q", path, ErrUnknownKind, node.Kind)
		}

		if err := b.apply(el, node, path); err != nil {
			return err
		}
		b.anchor(parent, el, node, path)

		if c, ok := ui.AsContainer(el); ok {
			if err := b.addChildren(c, node.Children, path); err != nil {
				return err
			}
		}
	}
	return nil
}

// apply copies the node's properties onto el
func (b *LayoutBuilder) apply(el ui.Element, node *config.NodeConfig, path string) error {
	fe := el.Base()
	fe.Name = node.Name
	fe.Hidden = node.Hidden
	if node.Width.Set {
		fe.Width = ui.Px(node.Width.Value)
	}
	if node.Height.Set {
		fe.Height = ui.Px(node.Height.Value)
	}
	left, top, right, bottom := node.Margin.Sides()
	fe.Margin = ui.Thickness{Left: left, Top: top, Right: right, Bottom: bottom}

	h, err := ui.ParseHorizontalAlignment(node.HorizontalAlignment)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrInvalidAlignment, err)
	}
	fe.HorizontalAlignment = h

	v, err := ui.ParseVerticalAlignment(node.VerticalAlignment)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrInvalidAlignment, err)
	}
	fe.VerticalAlignment = v

	switch e := el.(type) {
	case *ui.Panel:
		return b.fill(&e.Fill, node.Fill, b.palette(func(p *config.Palette) color.NRGBA { return p.Panel }), path)
	case *ui.Canvas:
		return b.fill(&e.Fill, node.Fill, b.palette(func(p *config.Palette) color.NRGBA { return p.Canvas }), path)
	case *ui.StackPanel:
		e.Spacing = node.Spacing
		e.TrailingSpacing = node.TrailingSpacing
		o, err := ui.ParseOrientation(node.Orientation)
		if err != nil {
			return fmt.Errorf("%s: %w: %v", path, ErrInvalidOrientation, err)
		}
		e.Orientation = o
		return b.fill(&e.Fill, node.Fill, b.palette(func(p *config.Palette) color.NRGBA { return p.StackPanel }), path)
	case *ui.Image:
		e.Source = node.Source
		if node.SourceSize != nil {
			e.SourceSize = ui.Size{Width: node.SourceSize.Width, Height: node.SourceSize.Height}
		}
		return b.fill(&e.Tint, node.Tint, b.palette(func(p *config.Palette) color.NRGBA { return p.Image }), path)
	}
	return nil
}

// anchor writes canvas anchors when the parent is a canvas
func (b *LayoutBuilder) anchor(parent ui.Container, el ui.Element, node *config.NodeConfig, path string) {
	if node.Canvas == nil {
		return
	}
	canvas, ok := ui.AsCanvas(parent)
	if !ok {
		b.logger().Warn("canvas anchors ignored outside a canvas", zap.String("path", path))
		return
	}

	var slot ui.CanvasSlot
	if a := node.Canvas.Left; a != nil {
		slot.Left = ui.Px(*a)
	}
	if a := node.Canvas.Top; a != nil {
		slot.Top = ui.Px(*a)
	}
	if a := node.Canvas.Right; a != nil {
		slot.Right = ui.Px(*a)
	}
	if a := node.Canvas.Bottom; a != nil {
		slot.Bottom = ui.Px(*a)
	}
	canvas.SetSlot(el, slot)
}

// fill resolves a color: the node's hex string, else the palette, else the
// element default already in dst.
func (b *LayoutBuilder) fill(dst *color.NRGBA, hex string, palette *color.NRGBA, path string) error {
	if hex != "" {
		c, ok := config.ParseHexColor(hex)
		if !ok {
			return fmt.Errorf("%s: %w %q", path, ErrInvalidColor, hex)
		}
		*dst = c
		return nil
	}
	if palette != nil {
		*dst = *palette
	}
	return nil
}

func (b *LayoutBuilder) palette(pick func(*config.Palette) color.NRGBA) *color.NRGBA {
	if b.Palette == nil {
		return nil
	}
	c := pick(b.Palette)
	return &c
}

func (b *LayoutBuilder) logger() *zap.Logger {
	if b.Logger == nil {
		return ui.Logger()
	}
	return b.Logger
}

func nodePath(parent string, node *config.NodeConfig, index int) string {
	name := node.Name
	if name == "" {
		name = fmt.Sprintf("%s[%d]", strings.ToLower(node.Kind), index)
	}
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// DefaultLayoutDoc describes the built-in showcase: a full-size panel holding
// a vertical stack of four centered 100x100 images.
func DefaultLayoutDoc() *config.LayoutDoc {
	images := make([]config.NodeConfig, 4)
	for i := range images {
		images[i] = config.NodeConfig{
			Kind:                "image",
			Name:                fmt.Sprintf("image%d", i),
			SourceSize:          &config.SizeConfig{Width: 100, Height: 100},
			HorizontalAlignment: "center",
			VerticalAlignment:   "center",
		}
	}
	return &config.LayoutDoc{
		Name: "default",
		Root: config.NodeConfig{
			Kind: "panel",
			Name: "root",
			Children: []config.NodeConfig{
				{Kind: "stackpanel", Name: "stack", Children: images},
			},
		},
	}
}

// Default builds the built-in showcase with the builder's palette
func (b *LayoutBuilder) Default() *ui.Root {
	root, err := b.Build(DefaultLayoutDoc())
	if err != nil {
		panic(fmt.Sprintf("built-in layout: %v", err))
	}
	return root
}

// DefaultLayout builds the built-in showcase with element defaults
func DefaultLayout() *ui.Root {
	return (&LayoutBuilder{}).Default()
}
