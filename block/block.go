// Package block defines the visual block tree the assembler produces and the
// rendering backend consumes: styled text runs, vertical stacks, bulleted
// lines, spacers and the reusable table grid model.
//
// Blocks are plain values. Building them performs no I/O and, apart from the
// table row arity contract, cannot fail.
package block

import "github.com/lvillar/invoicepdf/style"

// Align is a horizontal cell or text alignment.
type Align string

// Supported alignments.
const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Padding defines spacing around a block's content, in layout units.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// TRBL builds a Padding from top/right/bottom/left values.
func TRBL(top, right, bottom, left float64) Padding {
	return Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Block is one node in the assembled visual tree.
type Block interface {
	block()
}

// Text is a single styled text run.
type Text struct {
	Content string
	Style   style.Style
	Align   Align
	Padding Padding
}

func (Text) block() {}

// NewText returns a left-aligned text run with no padding.
func NewText(content string, s style.Style) Text {
	return Text{Content: content, Style: s, Align: AlignLeft}
}

// Aligned returns a copy of the text with the given alignment.
func (t Text) Aligned(a Align) Text {
	t.Align = a
	return t
}

// Padded returns a copy of the text with the given padding.
func (t Text) Padded(p Padding) Text {
	t.Padding = p
	return t
}

// Stack lays its children out vertically, in order.
type Stack struct {
	Children []Block
}

func (Stack) block() {}

// NewStack builds a vertical stack of the given blocks.
func NewStack(children ...Block) Stack {
	return Stack{Children: children}
}

// Bullet is a single bulleted line: a marker followed by a text run.
type Bullet struct {
	Marker  string
	Content Text
}

func (Bullet) block() {}

// Spacer is a vertical gap measured in body line heights.
type Spacer struct {
	Lines float64
}

func (Spacer) block() {}
