package pegdrop

import (
	"slices"
	"testing"
)

type recordingStore struct {
	touches  []TouchEvent
	contacts []ContactEvent
}

func (r *recordingStore) EmitTouch(e TouchEvent)     { r.touches = append(r.touches, e) }
func (r *recordingStore) EmitContact(e ContactEvent) { r.contacts = append(r.contacts, e) }

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: -5, Y: -5, Width: 10, Height: 10}
	if !r.Contains(0, 0) {
		t.Error("center should be inside")
	}
	if r.Contains(6, 0) {
		t.Error("(6, 0) should be outside")
	}
}

func TestTouchEditLabelToggles(t *testing.T) {
	s := newTestScene(t)
	before := len(s.Objects())

	if got := s.HandleTouch(s.EditLabel().Position()); got != nil {
		t.Errorf("HandleTouch returned %v, want nil", got)
	}
	if !s.State().EditingMode || s.EditLabel().Text() != "Done" {
		t.Errorf("editing = %t label = %q, want true and Done", s.State().EditingMode, s.EditLabel().Text())
	}

	s.HandleTouch(s.EditLabel().Position())
	if s.State().EditingMode || s.EditLabel().Text() != "Edit" {
		t.Errorf("editing = %t label = %q, want false and Edit", s.State().EditingMode, s.EditLabel().Text())
	}
	if len(s.Objects()) != before {
		t.Errorf("objects = %d, want %d (toggle must not spawn)", len(s.Objects()), before)
	}
}

func TestTouchEditLabelPulses(t *testing.T) {
	s := newTestScene(t)
	s.HandleTouch(s.EditLabel().Position())
	if s.EditLabel().Alpha >= 1 {
		t.Errorf("alpha = %v, want dimmed at pulse start", s.EditLabel().Alpha)
	}
	tick(s, 30)
	assertNear(t, "alpha", s.EditLabel().Alpha, 1)
}

func TestTouchEditLabelAfterScroll(t *testing.T) {
	s := newTestScene(t)
	tick(s, 40)
	s.HandleTouch(s.EditLabel().Position())
	if !s.State().EditingMode {
		t.Error("touching the scrolled label should toggle edit mode")
	}
}

func TestTouchEditLabelWithOverlap(t *testing.T) {
	s := newTestScene(t)
	pos := s.EditLabel().Position()
	s.SpawnAt(pos, true)
	before := len(s.Objects())

	hits := s.EntitiesAt(pos)
	if len(hits) < 3 {
		t.Fatalf("hits = %d, want label, obstacle and background", len(hits))
	}
	if hits[0] != s.EditLabel() {
		t.Errorf("topmost hit = %q, want editLabel", hits[0].Name)
	}
	if hits[len(hits)-1] != s.Background() {
		t.Errorf("bottom hit = %q, want background", hits[len(hits)-1].Name)
	}

	s.HandleTouch(pos)
	if !s.State().EditingMode || len(s.Objects()) != before {
		t.Error("label under an obstacle should still toggle without spawning")
	}
}

func TestTouchSpawnsByMode(t *testing.T) {
	s := newTestScene(t)
	ball := s.HandleTouch(Vec2{X: 512, Y: 400})
	if ball == nil || ball.Kind != KindBall {
		t.Fatalf("got %v, want ball", ball)
	}
	s.SetEditingMode(true)
	obst := s.HandleTouch(Vec2{X: 512, Y: 600})
	if obst == nil || obst.Kind != KindObstacle {
		t.Fatalf("got %v, want obstacle", obst)
	}
}

func TestEntitiesAtSkipsHidden(t *testing.T) {
	s := newTestScene(t)
	s.EditLabel().Visible = false
	if slices.Contains(s.EntitiesAt(s.EditLabel().Position()), s.EditLabel()) {
		t.Error("invisible label should not be hit")
	}
	s.HandleTouch(s.EditLabel().Position())
	if s.State().EditingMode {
		t.Error("touching a hidden label should spawn, not toggle")
	}
}

func TestEntitiesAtRotatedObstacle(t *testing.T) {
	s := newTestScene(t)
	s.SetEditingMode(true)
	o := s.HandleTouch(Vec2{X: 600, Y: 500})
	hits := s.EntitiesAt(Vec2{X: 600, Y: 500})
	if !slices.Contains(hits, o.Node) {
		t.Error("obstacle center should be hit")
	}
	hits = s.EntitiesAt(Vec2{X: 600, Y: 500 + o.Size.X})
	if slices.Contains(hits, o.Node) {
		t.Error("point beyond the obstacle's half length should miss")
	}
}

func TestInjectTouchThroughCamera(t *testing.T) {
	s := newTestScene(t)
	tick(s, 5)
	// The label stays at its screen position while the camera scrolls.
	s.InjectTouch(80, 68)
	tick(s, 1)
	if !s.State().EditingMode {
		t.Error("injected touch on the label should toggle edit mode")
	}
}

func TestInjectTouchOnePerTick(t *testing.T) {
	s := newTestScene(t)
	before := len(s.Objects())
	s.InjectTouch(300, 300)
	s.InjectTouch(700, 300)
	tick(s, 1)
	if len(s.Objects()) != before+1 {
		t.Fatalf("objects = %d, want %d after one tick", len(s.Objects()), before+1)
	}
	tick(s, 1)
	if len(s.Objects()) != before+2 {
		t.Fatalf("objects = %d, want %d after two ticks", len(s.Objects()), before+2)
	}
}

func TestTouchEmitsEvent(t *testing.T) {
	s := newTestScene(t)
	store := &recordingStore{}
	s.SetEntityStore(store)

	ball := s.HandleTouch(Vec2{X: 400, Y: 300})
	s.HandleTouch(s.EditLabel().Position())

	if len(store.touches) != 2 {
		t.Fatalf("touches = %d, want 2", len(store.touches))
	}
	if store.touches[0].Object != ball || store.touches[0].X != 400 {
		t.Errorf("touch 0 = %+v", store.touches[0])
	}
	if store.touches[1].Object != nil || !store.touches[1].EditingMode {
		t.Errorf("touch 1 = %+v", store.touches[1])
	}
}

// labelCorners returns the world positions of the four corners of the
// label's text footprint.
func labelCorners(s *Scene) []Vec2 {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	l := s.EditLabel()
	var out []Vec2
	for _, c := range [][2]float64{{0, 0}, {l.Width, 0}, {0, l.Height}, {l.Width, l.Height}} {
		x, y := l.LocalToWorld(c[0], c[1])
		out = append(out, Vec2{X: x, Y: y})
	}
	return out
}

func TestTouchEditLabelCorners(t *testing.T) {
	s := newTestScene(t)
	tick(s, 7)
	before := len(s.Objects())
	names := []string{"top-left", "top-right", "bottom-left", "bottom-right"}

	want := false
	for round := 0; round < 2; round++ {
		for i := range names {
			// "Edit" and "Done" differ in width, so re-measure each time.
			corner := labelCorners(s)[i]
			t.Run(names[i], func(t *testing.T) {
				want = !want
				if got := s.HandleTouch(corner); got != nil {
					t.Fatalf("spawned %v at %v, want toggle", got.Kind, corner)
				}
				if s.State().EditingMode != want {
					t.Errorf("editing = %t at %v, want %t", s.State().EditingMode, corner, want)
				}
			})
		}
	}
	if len(s.Objects()) != before {
		t.Errorf("objects = %d, want %d", len(s.Objects()), before)
	}
}

func TestEditLabelTouchPadding(t *testing.T) {
	s := newTestScene(t)
	corner := labelCorners(s)[3]
	s.HandleTouch(Vec2{X: corner.X + editTouchPadding/2, Y: corner.Y + editTouchPadding/2})
	if !s.State().EditingMode {
		t.Error("touch within the padding should toggle")
	}
	far := Vec2{X: corner.X + 3*editTouchPadding, Y: corner.Y + 3*editTouchPadding}
	if o := s.HandleTouch(far); o == nil {
		t.Error("touch outside the padded target should spawn")
	}
	if !s.State().EditingMode {
		t.Error("touch outside the padded target should not toggle")
	}
}

func TestEditTouchTargetFollowsText(t *testing.T) {
	s := newTestScene(t)
	hr, ok := s.EditLabel().HitShape.(HitRect)
	if !ok {
		t.Fatalf("HitShape = %T, want HitRect", s.EditLabel().HitShape)
	}
	assertNear(t, "width", hr.Width, s.EditLabel().Width+2*editTouchPadding)
	s.SetEditingMode(true)
	hr = s.EditLabel().HitShape.(HitRect)
	assertNear(t, "width after toggle", hr.Width, s.EditLabel().Width+2*editTouchPadding)
}
