package inspector

import "github.com/younwookim/mgui/internal/domain/ui"

// HitTest returns the deepest visible element whose layout rect contains the
// point. Later siblings are drawn on top, so they win over earlier ones.
// Hidden elements and their subtrees are skipped.
func HitTest(root *ui.Root, x, y float64) (ui.Element, bool) {
	var hit ui.Element
	ui.Walk(root.Content(), func(el ui.Element, _ int) bool {
		fe := el.Base()
		if fe.Hidden {
			return false
		}
		if fe.LayoutRect().Contains(x, y) {
			hit = el
		}
		return true
	})
	return hit, hit != nil
}
