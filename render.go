package pegdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the scene through the camera into screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	view := s.camera.computeViewMatrix()
	cull := s.camera.VisibleBounds()
	s.drawNode(screen, s.root, view, cull)
	s.flushScreenshots(screen)
}

// drawNode draws n and its subtree in ZIndex order. Nodes entirely outside
// the camera's visible bounds are skipped, their children are not.
func (s *Scene) drawNode(target *ebiten.Image, n *Node, view [6]float64, cull Rect) {
	if !n.Visible {
		return
	}
	switch n.Type {
	case NodeTypeSprite:
		if !shouldCull(n, cull) {
			drawSprite(target, n, multiplyAffine(view, n.worldTransform))
		}
	case NodeTypeText:
		if !shouldCull(n, cull) {
			drawLabel(target, n, multiplyAffine(view, n.worldTransform))
		}
	case NodeTypeParticleEmitter:
		if n.Emitter != nil {
			n.Emitter.draw(target, n, view)
		}
	}
	for _, child := range sortedChildrenOf(n) {
		s.drawNode(target, child, view, cull)
	}
}

// geoM converts an affine matrix into an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// drawSprite stretches the sprite's image (or a white pixel for solid
// sprites) over its footprint.
func drawSprite(target *ebiten.Image, n *Node, transform [6]float64) {
	img := n.Image
	if img == nil {
		img = WhitePixel
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width/float64(b.Dx()), n.Height/float64(b.Dy()))
	op.GeoM.Concat(geoM(transform))
	c := n.Color
	c.A *= n.worldAlpha
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.Blend = n.BlendMode.EbitenBlend()
	target.DrawImage(img, op)
}
