package pegdrop

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HandleTouch routes a touch at a world position. Touching the edit label
// flips edit mode and spawns nothing; any other touch spawns an obstacle in
// edit mode or a ball otherwise. Returns the spawned object, or nil when the
// touch toggled edit mode.
func (s *Scene) HandleTouch(pos Vec2) *WorldObject {
	var spawned *WorldObject
	if slices.Contains(s.EntitiesAt(pos), s.editLabel) {
		s.SetEditingMode(!s.state.EditingMode)
		s.editLabel.SetAlpha(0.4)
		s.addTween(TweenAlpha(s.editLabel, 1, 0.25, ease.OutQuad))
	} else {
		spawned = s.SpawnAt(pos, s.state.EditingMode)
	}

	if s.store != nil {
		s.store.EmitTouch(TouchEvent{X: pos.X, Y: pos.Y, EditingMode: s.state.EditingMode, Object: spawned})
	}
	return spawned
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's footprint. Containers with no
// HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || (n.Type != NodeTypeContainer && n.Type != NodeTypeParticleEmitter) {
		buf = append(buf, n)
	}
	for _, child := range sortedChildrenOf(n) {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// EntitiesAt returns every interactable node whose hit region contains the
// world point, topmost first. The returned slice is reused by the next call.
func (s *Scene) EntitiesAt(pos Vec2) []*Node {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	hits := s.hitOut[:0]
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(pos.X, pos.Y)
		if nodeContainsLocal(n, lx, ly) {
			hits = append(hits, n)
		}
	}
	s.hitOut = hits
	return hits
}

// --- Input processing ---

// processInput routes at most one touch per tick: an injected touch if one
// is queued, else the first touch that began this tick, else a left click.
// Additional simultaneous touches are ignored.
func (s *Scene) processInput() {
	sx, sy, ok := s.nextTouch()
	if !ok {
		return
	}
	wx, wy := s.camera.ScreenToWorld(sx, sy)
	s.HandleTouch(Vec2{X: wx, Y: wy})
}

func (s *Scene) nextTouch() (float64, float64, bool) {
	if len(s.injectQueue) > 0 {
		p := s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
		return p.X, p.Y, true
	}
	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	if len(s.touchBuf) > 0 {
		x, y := ebiten.TouchPosition(s.touchBuf[0])
		return float64(x), float64(y), true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return float64(x), float64(y), true
	}
	return 0, 0, false
}

// InjectTouch queues a touch at the given screen coordinates. It is
// consumed on the next Update, in place of real input, and converted to
// world coordinates through the camera exactly like a real touch.
func (s *Scene) InjectTouch(x, y float64) {
	s.injectQueue = append(s.injectQueue, Vec2{X: x, Y: y})
}
