package pegdrop

import (
	"strings"
	"testing"
)

// newTestScene builds a deterministic scene with no assets.
func newTestScene(t *testing.T) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	s, err := NewScene(cfg, nil)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

// tick runs n Updates.
func tick(s *Scene, n int) {
	for i := 0; i < n; i++ {
		s.Update()
	}
}

func TestNewSceneBackground(t *testing.T) {
	s := newTestScene(t)
	bg := s.Background()
	if bg.X != 512 || bg.Y != 256 {
		t.Errorf("background = (%v, %v), want (512, 256)", bg.X, bg.Y)
	}
	if bg.ZIndex != -1 {
		t.Errorf("background ZIndex = %d, want -1", bg.ZIndex)
	}
	if bg.BlendMode != BlendReplace {
		t.Errorf("background BlendMode = %d, want BlendReplace", bg.BlendMode)
	}
	if bg.Parent != s.Root() {
		t.Error("background should be a child of root")
	}
}

func TestNewSceneLabels(t *testing.T) {
	s := newTestScene(t)
	if s.ScoreLabel().Text() != "Score: 0" {
		t.Errorf("score label = %q, want %q", s.ScoreLabel().Text(), "Score: 0")
	}
	if s.EditLabel().Text() != "Edit" {
		t.Errorf("edit label = %q, want %q", s.EditLabel().Text(), "Edit")
	}
	if s.ScoreLabel().X != 980 || s.ScoreLabel().Y != 68 {
		t.Errorf("score label at (%v, %v), want (980, 68)", s.ScoreLabel().X, s.ScoreLabel().Y)
	}
	if s.EditLabel().X != 80 || s.EditLabel().Y != 68 {
		t.Errorf("edit label at (%v, %v), want (80, 68)", s.EditLabel().X, s.EditLabel().Y)
	}
}

func TestNewSceneDropsBox(t *testing.T) {
	s := newTestScene(t)
	objs := s.Objects()
	if len(objs) != 1 {
		t.Fatalf("objects = %d, want 1", len(objs))
	}
	box := objs[0]
	if box.Kind != KindDroppedBox {
		t.Errorf("Kind = %v, want box", box.Kind)
	}
	if !box.IsDynamic() || !box.Body.AffectedByGravity() {
		t.Error("dropped box should be dynamic and affected by gravity")
	}
	if box.Size != (Vec2{X: 50, Y: 50}) || box.Color != ColorRed {
		t.Errorf("box = %v %v, want 50x50 red", box.Size, box.Color)
	}
	if box.Node.X != 512 {
		t.Errorf("box X = %v, want centered 512", box.Node.X)
	}
	if top := box.Node.Y - 25; top < 0 || top > 5 {
		t.Errorf("box top = %v, want just inside the top edge", top)
	}
}

func TestNewSceneState(t *testing.T) {
	s := newTestScene(t)
	if got := s.State(); got != (SceneState{}) {
		t.Errorf("State() = %+v, want zero", got)
	}
	if s.Size() != (Vec2{X: 1024, Y: 768}) || s.OriginalHeight() != 768 {
		t.Errorf("Size() = %v, OriginalHeight() = %v", s.Size(), s.OriginalHeight())
	}
	if s.Physics().Bounds() != (Rect{Width: 1024, Height: 768}) {
		t.Errorf("physics bounds = %v", s.Physics().Bounds())
	}
	if s.Camera().Y != 384 {
		t.Errorf("camera Y = %v, want 384", s.Camera().Y)
	}
}

func TestNewSceneInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := NewScene(cfg, nil); err == nil {
		t.Error("expected error for zero width")
	}
	cfg = DefaultConfig()
	cfg.TPS = 0
	if _, err := NewScene(cfg, nil); err == nil {
		t.Error("expected error for zero TPS")
	}
}

func TestSceneUpdateCountsFrames(t *testing.T) {
	s := newTestScene(t)
	tick(s, 3)
	if s.Frame() != 3 {
		t.Errorf("Frame() = %d, want 3", s.Frame())
	}
	if !strings.Contains(s.String(), "frame=3") {
		t.Errorf("String() = %q", s.String())
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := newTestScene(t)
	t.Cleanup(func() { s.SetDebugMode(false) })
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := newTestScene(t)
	s.SetEntityStore(nil) // should not panic
	if s.store != nil {
		t.Error("store should be nil")
	}
}

func TestGameLayoutUsesSceneSize(t *testing.T) {
	g := &game{scene: newTestScene(t)}
	w, h := g.Layout(10, 10)
	if w != 1024 || h != 768 {
		t.Errorf("Layout = %dx%d, want 1024x768", w, h)
	}
}
