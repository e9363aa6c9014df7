package pegdrop

import "testing"

func TestDebugCheckDisposedPanics(t *testing.T) {
	n := NewContainer("gone")
	n.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for disposed node")
		}
	}()
	debugCheckDisposed(n, "AddChild")
}

func TestDebugCheckLiveNode(t *testing.T) {
	debugCheckDisposed(NewContainer("live"), "AddChild") // must not panic
}

func TestAddChildDisposedPanicsInDebug(t *testing.T) {
	s := newTestScene(t)
	s.SetDebugMode(true)
	t.Cleanup(func() { s.SetDebugMode(false) })

	child := NewContainer("child")
	child.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic in debug mode")
		}
	}()
	s.Root().AddChild(child)
}

func TestDebugLogDoesNotMutate(t *testing.T) {
	s := newTestScene(t)
	s.SetDebugMode(true)
	t.Cleanup(func() { s.SetDebugMode(false) })
	before := s.State()
	tick(s, s.cfg.TPS)
	if s.State() != before {
		t.Error("debug logging should not change scene state")
	}
}
