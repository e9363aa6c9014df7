package pegdrop

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TextBlock holds label content, formatting, and cached measurements.
type TextBlock struct {
	Content string
	Face    *text.GoTextFace
	Align   TextAlign
	Color   Color

	measuredW, measuredH float64
	measured             bool
}

// Size returns the measured width and height of the content in its face.
func (tb *TextBlock) Size() (w, h float64) {
	if !tb.measured {
		tb.measured = true
		if tb.Face == nil || tb.Content == "" {
			tb.measuredW, tb.measuredH = 0, 0
		} else {
			tb.measuredW, tb.measuredH = text.Measure(tb.Content, tb.Face, tb.Face.Size)
		}
	}
	return tb.measuredW, tb.measuredH
}

// NewLabel creates a single-line text node. X/Y name the anchor point given by
// align; the label is vertically centered on Y.
func NewLabel(name, content string, face *text.GoTextFace, align TextAlign) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		Label: &TextBlock{
			Content: content,
			Face:    face,
			Align:   align,
			Color:   ColorWhite,
		},
	}
	nodeDefaults(n)
	n.Interactable = true
	n.relayoutLabel()
	return n
}

// SetText replaces a label's content. Labels are re-measured immediately so
// hit testing on the same frame sees the new footprint.
func (n *Node) SetText(content string) {
	if n.Label == nil || n.Label.Content == content {
		return
	}
	n.Label.Content = content
	n.Label.measured = false
	n.relayoutLabel()
}

// Text returns the label content, or "" for non-label nodes.
func (n *Node) Text() string {
	if n.Label == nil {
		return ""
	}
	return n.Label.Content
}

func (n *Node) relayoutLabel() {
	w, h := n.Label.Size()
	n.Width, n.Height = w, h
	switch n.Label.Align {
	case TextAlignLeft:
		n.PivotX = 0
	case TextAlignRight:
		n.PivotX = w
	default:
		n.PivotX = w / 2
	}
	n.PivotY = h / 2
	n.transformDirty = true
}

var defaultFaceSource *text.GoTextFaceSource

// DefaultFace returns a Go Regular face of the given size. Used whenever the
// requested font asset is missing.
func DefaultFace(size float64) (*text.GoTextFace, error) {
	if defaultFaceSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("load default face: %w", err)
		}
		defaultFaceSource = src
	}
	return &text.GoTextFace{Source: defaultFaceSource, Size: size}, nil
}

// drawLabel renders a text node with the given world-to-screen transform.
func drawLabel(target *ebiten.Image, n *Node, transform [6]float64) {
	tb := n.Label
	if tb == nil || tb.Face == nil || tb.Content == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoM(transform)
	c := tb.Color
	c.A *= n.worldAlpha
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(target, tb.Content, tb.Face, op)
}
