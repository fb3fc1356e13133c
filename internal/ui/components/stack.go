package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction is the main axis of a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack lays children out along one axis. Nil children and empty views
// take no space.
type Stack struct {
	BaseComponent
	children   []Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// VStack stacks children top to bottom.
func VStack(children ...Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children}
}

// HStack places children left to right.
func HStack(children ...Renderable) *Stack {
	s := VStack(children...)
	s.direction = DirectionHorizontal
	return s
}

// WithGap sets the space between children, in rows or columns.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign aligns children across the main axis.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children. A horizontal stack splits the
// width budget evenly between them.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.Constraints.MaxWidth > 0 && len(s.children) > 0 {
		if available := ctx.Constraints.MaxWidth - s.gap*(len(s.children)-1); available > 0 {
			childCtx.Constraints.MaxWidth = available / len(s.children)
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(childCtx)
		} else {
			view = child.View()
		}
		if view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	if s.direction == DirectionHorizontal {
		return style.Render(s.join(views, " ", lipgloss.JoinHorizontal))
	}
	return style.Render(s.join(views, "\n", lipgloss.JoinVertical))
}

func (s *Stack) join(views []string, unit string, join func(lipgloss.Position, ...string) string) string {
	if len(views) == 0 {
		return ""
	}
	pos := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return join(pos, views...)
	}

	spacer := strings.Repeat(unit, s.gap)
	if unit == "\n" {
		// JoinVertical adds one newline per part already.
		spacer = strings.Repeat(unit, s.gap-1)
	}
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return join(pos, parts...)
}
