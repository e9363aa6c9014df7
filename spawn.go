package pegdrop

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// ErrNotImplemented is returned by extension points the scene does not
// provide yet.
var ErrNotImplemented = errors.New("pegdrop: not implemented")

const (
	ballName        = "ball"
	ballShrink      = 1.15
	ballRestitution = 0.1
	ballFallbackSz  = 44

	obstacleHeight      = 16
	obstacleMinWidth    = 16
	obstacleMaxWidth    = 128
	obstacleMaxRotation = 3.0

	droppedBoxSize = 50

	fireParticles = "FireParticles"
)

// ballImages are the ball sprites a touch may drop, with the tint used when
// the image is missing.
var ballImages = []struct {
	name string
	tint Color
}{
	{"ballBlue", Color{0.2, 0.4, 1, 1}},
	{"ballCyan", Color{0.2, 0.9, 0.9, 1}},
	{"ballGreen", Color{0.2, 0.8, 0.3, 1}},
	{"ballGrey", Color{0.6, 0.6, 0.6, 1}},
	{"ballPurple", Color{0.6, 0.3, 0.9, 1}},
	{"ballRed", Color{0.9, 0.2, 0.2, 1}},
	{"ballYellow", Color{1, 0.9, 0.2, 1}},
}

// SpawnAt places a new object at pos: a static obstacle when editing, a
// ball otherwise. Every call draws fresh random visuals.
func (s *Scene) SpawnAt(pos Vec2, editing bool) *WorldObject {
	if editing {
		return s.spawnObstacle(pos)
	}
	return s.spawnBall(pos)
}

func (s *Scene) spawnObstacle(pos Vec2) *WorldObject {
	w := float64(obstacleMinWidth + s.rng.IntN(obstacleMaxWidth-obstacleMinWidth+1))
	c := Color{R: s.rng.Float64(), G: s.rng.Float64(), B: s.rng.Float64(), A: 1}
	rot := s.rng.Float64() * obstacleMaxRotation

	node := NewRect("box", w, obstacleHeight, c)
	node.SetPosition(pos.X, pos.Y)
	node.SetRotation(rot)

	body := s.physics.AddBody(BodyDef{
		Width:         w,
		Height:        obstacleHeight,
		Category:      CategoryAll,
		CollisionMask: CategoryAll,
	}, pos, rot)

	o := &WorldObject{
		Kind:     KindObstacle,
		Node:     node,
		Body:     body,
		Size:     Vec2{X: w, Y: obstacleHeight},
		Color:    c,
		Rotation: rot,
	}
	s.addObject(o)
	s.addTween(TweenScale(node, 0.2, 1, 0.15, ease.OutBack))
	return o
}

func (s *Scene) spawnBall(pos Vec2) *WorldObject {
	pick := ballImages[s.rng.IntN(len(ballImages))]

	var node *Node
	if img, err := s.assets.Image(pick.name); err == nil {
		node = NewSprite(ballName, img)
	} else {
		node = NewRect(ballName, ballFallbackSz, ballFallbackSz, pick.tint)
	}
	node.SetPosition(pos.X, pos.Y)

	body := s.physics.AddBody(BodyDef{
		Width:             node.Width / ballShrink,
		Height:            node.Height / ballShrink,
		Dynamic:           true,
		AffectedByGravity: true,
		Restitution:       ballRestitution,
		Friction:          0.2,
		Category:          CategoryAll,
		CollisionMask:     CategoryAll,
	}, pos, 0)
	// Report every contact the ball takes part in.
	body.SetContactMask(body.CollisionMask())

	o := &WorldObject{
		Kind:  KindBall,
		Node:  node,
		Body:  body,
		Size:  Vec2{X: node.Width, Y: node.Height},
		Color: node.Color,
	}
	s.addObject(o)
	return o
}

// DropObjects drops a red box from the top of the scene, horizontally
// centered.
func (s *Scene) DropObjects() *WorldObject {
	pos := Vec2{X: s.size.X / 2, Y: droppedBoxSize/2 + 1}
	node := NewRect("box", droppedBoxSize, droppedBoxSize, ColorRed)
	node.SetPosition(pos.X, pos.Y)

	body := s.physics.AddBody(BodyDef{
		Width:             droppedBoxSize,
		Height:            droppedBoxSize,
		Dynamic:           true,
		AffectedByGravity: true,
		Friction:          0.2,
		Category:          CategoryAll,
		CollisionMask:     CategoryAll,
	}, pos, 0)

	o := &WorldObject{
		Kind:  KindDroppedBox,
		Node:  node,
		Body:  body,
		Size:  Vec2{X: droppedBoxSize, Y: droppedBoxSize},
		Color: ColorRed,
	}
	s.addObject(o)
	return o
}

// MakeBouncer is the extension point for round bouncers along the floor.
func (s *Scene) MakeBouncer(pos Vec2) error {
	return fmt.Errorf("bouncer at (%g, %g): %w", pos.X, pos.Y, ErrNotImplemented)
}

// MakeSlot is the extension point for good and bad scoring slots.
func (s *Scene) MakeSlot(pos Vec2, good bool) error {
	return fmt.Errorf("slot at (%g, %g) good=%t: %w", pos.X, pos.Y, good, ErrNotImplemented)
}
