package inspector

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/mgui/internal/domain/ui"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type fixture struct {
	root   *ui.Root
	canvas *ui.Canvas
	badge  *ui.Image
	stack  *ui.StackPanel
	rows   []*ui.Image
}

func newFixture() fixture {
	content := ui.NewPanel()
	content.Name = "root"
	canvas := ui.AddChild[ui.Canvas](content)
	badge := ui.AddChild[ui.Image](canvas)
	badge.Name = "badge"
	badge.SourceSize = ui.Size{Width: 20, Height: 20}
	canvas.SetRight(badge, 10)
	stack := ui.AddChild[ui.StackPanel](content)
	stack.Spacing = 4
	rows := []*ui.Image{ui.AddChild[ui.Image](stack), ui.AddChild[ui.Image](stack)}
	for _, r := range rows {
		r.SourceSize = ui.Size{Width: 50, Height: 30}
	}

	root := ui.NewRoot(content)
	root.Layout(ui.Rect{Width: 400, Height: 300})
	return fixture{root: root, canvas: canvas, badge: badge, stack: stack, rows: rows}
}

func TestCollect(t *testing.T) {
	f := newFixture()

	entries := Collect(f.root)

	require.Len(t, entries, 6)
	assert.Equal(t, 0, entries[0].Depth)
	assert.Same(t, f.badge, entries[2].Element)
	assert.Equal(t, 2, entries[2].Depth)
	assert.Same(t, f.rows[1], entries[5].Element)
}

func TestDescribe(t *testing.T) {
	f := newFixture()

	t.Run("canvas child", func(t *testing.T) {
		p := Describe(f.root, f.badge)

		assert.Equal(t, ui.KindImage, p.Kind)
		assert.Equal(t, "badge", p.Name)
		assert.Equal(t, ui.Rect{X: 370, Y: 0, Width: 20, Height: 20}, p.LayoutRect)
		assert.Equal(t, ui.Size{Width: 20, Height: 20}, p.ActualSize)
		require.NotNil(t, p.Canvas)
		assert.Equal(t, ui.Px(10), p.Canvas.Right)
		assert.Nil(t, p.Spacing)
	})

	t.Run("stack panel", func(t *testing.T) {
		p := Describe(f.root, f.stack)

		assert.Nil(t, p.Canvas)
		require.NotNil(t, p.Spacing)
		assert.Equal(t, 4.0, *p.Spacing)
		assert.Equal(t, ui.Vertical, *p.Orientation)
		assert.Equal(t, ui.Size{Width: 50, Height: 64}, p.DesiredSize)
	})

	t.Run("lines", func(t *testing.T) {
		lines := Describe(f.root, f.badge).Lines()

		assert.Equal(t, "Image badge #3", lines[0])
		assert.Contains(t, lines, "size     auto x auto")
		assert.Contains(t, lines, "anchors  l=auto t=auto r=10 b=auto")
	})
}

func TestInspector_Navigation(t *testing.T) {
	f := newFixture()
	in := New(f.root)

	assert.Same(t, f.root.Content(), in.Selected())

	assert.Same(t, f.canvas, in.Next())
	assert.Same(t, f.badge, in.Next())
	assert.Same(t, f.canvas, in.Prev())

	assert.Same(t, f.rows[1], in.Move(-2), "wraps backwards past the root")
	assert.Same(t, f.root.Content(), in.Next(), "wraps forwards")
}

func TestInspector_Select(t *testing.T) {
	f := newFixture()
	in := New(f.root)

	require.True(t, in.Select(f.stack.ID()))
	assert.Equal(t, f.stack.ID(), in.SelectedID())

	assert.False(t, in.Select(999))
	assert.Equal(t, f.stack.ID(), in.SelectedID(), "unknown id keeps the selection")
}

func TestInspector_SelectionLeavesTree(t *testing.T) {
	f := newFixture()
	in := New(f.root)
	require.True(t, in.Select(f.rows[0].ID()))

	f.stack.RemoveChild(f.rows[0])

	assert.Same(t, f.root.Content(), in.Selected())
}

func TestDump(t *testing.T) {
	f := newFixture()
	f.rows[1].Hidden = true

	out := Dump(f.root, f.badge.ID())

	assert.Contains(t, out, "  Panel root [0,0 400x300]\n")
	assert.Contains(t, out, "    > Image badge [370,0 20x20]\n")
	assert.Contains(t, out, "anchors  l=auto t=auto r=10 b=auto")
	assert.Contains(t, out, "StackPanel [0,0 400x300]")
	assert.Equal(t, 6+6, countLines(out), "six elements plus the selected element's properties")
}

func countLines(s string) int {
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n
}
