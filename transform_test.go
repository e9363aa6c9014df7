package pegdrop

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	assertMatrix(t, "identity", computeLocalTransform(n), identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.SetPosition(10, 20)
	assertMatrix(t, "translation", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("test")
	n.SetScale(2, 3)
	assertMatrix(t, "scale", computeLocalTransform(n), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("test")
	n.SetRotation(math.Pi / 2)
	x, y := transformPoint(computeLocalTransform(n), 1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewRect("r", 20, 10, ColorWhite)
	n.SetPosition(100, 50)
	// The pivot (center) lands on the node position.
	x, y := transformPoint(computeLocalTransform(n), 10, 5)
	assertNear(t, "x", x, 100)
	assertNear(t, "y", y, 50)
}

// --- matrix helpers ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0.5, -0.3, 1.5, 10, -4}
	assertMatrix(t, "m*inv", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 5, 5}), identityTransform)
}

// --- world transforms ---

func TestWorldTransformChain(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)
	root.SetPosition(100, 0)
	root.SetScale(2, 2)
	child.SetPosition(5, 5)

	updateWorldTransform(root, identityTransform, 1, false)
	x, y := child.LocalToWorld(0, 0)
	assertNear(t, "x", x, 110)
	assertNear(t, "y", y, 10)
}

func TestWorldAlphaInherited(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)
	root.SetAlpha(0.5)
	child.SetAlpha(0.5)
	updateWorldTransform(root, identityTransform, 1, false)
	assertNear(t, "worldAlpha", child.worldAlpha, 0.25)
}

func TestWorldToLocalRoundTrip(t *testing.T) {
	n := NewRect("r", 30, 12, ColorWhite)
	n.SetPosition(40, 60)
	n.SetRotation(1.2)
	updateWorldTransform(n, identityTransform, 1, false)

	wx, wy := n.LocalToWorld(7, 3)
	lx, ly := n.WorldToLocal(wx, wy)
	assertNear(t, "lx", lx, 7)
	assertNear(t, "ly", ly, 3)
}

func TestDirtyFlagCleared(t *testing.T) {
	n := NewContainer("n")
	updateWorldTransform(n, identityTransform, 1, false)
	if n.transformDirty {
		t.Error("transformDirty should be cleared after update")
	}
	n.MarkDirty()
	if !n.transformDirty {
		t.Error("MarkDirty should set transformDirty")
	}
}
