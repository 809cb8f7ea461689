package lower

import (
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

// resolvePosition translates a stack child's placement hints into absolute
// coordinates plus one-sided constraint tags. When both opposing edges are
// given the left/top edge wins. A child anchored only to a right or bottom
// offset with an explicit size gets its origin back-computed so the host can
// re-anchor it: x = -right-width, y = -bottom-height.
func resolvePosition(p *widget.PositionInfo) *nodespec.AbsolutePosition {
	pos := &nodespec.AbsolutePosition{
		Horizontal: nodespec.ConstraintLeft,
		Vertical:   nodespec.ConstraintTop,
	}
	if p == nil {
		return pos
	}

	if p.Width != nil {
		pos.Width = *p.Width
	}
	if p.Height != nil {
		pos.Height = *p.Height
	}

	switch {
	case p.Left != nil:
		pos.X = *p.Left
	case p.Right != nil:
		pos.Horizontal = nodespec.ConstraintRight
		pos.X = -*p.Right - pos.Width
	}

	switch {
	case p.Top != nil:
		pos.Y = *p.Top
	case p.Bottom != nil:
		pos.Vertical = nodespec.ConstraintBottom
		pos.Y = -*p.Bottom - pos.Height
	}

	return pos
}
