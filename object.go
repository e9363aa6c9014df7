package pegdrop

// ObjectKind identifies what a WorldObject is.
type ObjectKind uint8

const (
	KindBall       ObjectKind = iota // dynamic ball dropped by a touch
	KindObstacle                     // static box placed in edit mode
	KindDroppedBox                   // dynamic box dropped at scene start
)

// String returns the lowercase kind name.
func (k ObjectKind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindObstacle:
		return "obstacle"
	case KindDroppedBox:
		return "box"
	default:
		return "unknown"
	}
}

// WorldObject is a placed entity: a node in the scene graph paired with a
// rigid body in the physics world.
type WorldObject struct {
	Kind ObjectKind
	Node *Node
	Body *Body
	// Size is the visual footprint; the physics shape may be smaller.
	Size     Vec2
	Color    Color
	Rotation float64

	destroyed bool
}

// IsDynamic reports whether the object moves under physics.
func (o *WorldObject) IsDynamic() bool {
	return o.Body != nil && o.Body.IsDynamic()
}

// Position returns the object's last known world position.
func (o *WorldObject) Position() Vec2 {
	return o.Node.Position()
}

// Destroyed reports whether Destroy was called on the object.
func (o *WorldObject) Destroyed() bool {
	return o.destroyed
}

// attach links node and body back to o so contacts and hit tests can
// resolve to it.
func (o *WorldObject) attach() {
	o.Node.UserData = o
	if o.Body != nil {
		o.Body.owner = o
	}
}

// syncFromBody copies the simulated pose onto the node.
func (o *WorldObject) syncFromBody() {
	if o.Body == nil || !o.Body.IsDynamic() {
		return
	}
	p := o.Body.Position()
	o.Node.SetPosition(p.X, p.Y)
	o.Node.SetRotation(o.Body.Angle())
}

// Objects returns the live world objects in creation order. The returned
// slice MUST NOT be mutated.
func (s *Scene) Objects() []*WorldObject {
	return s.objects
}

func (s *Scene) addObject(o *WorldObject) {
	o.attach()
	o.Node.Interactable = true
	s.world.AddChild(o.Node)
	s.objects = append(s.objects, o)
}

// Destroy removes o from the scene and the physics world. When the
// FireParticles effect can be loaded it is played at o's last position;
// otherwise the object is removed without an effect. Destroying twice is a
// no-op.
func (s *Scene) Destroy(o *WorldObject) {
	if o == nil || o.destroyed {
		return
	}
	o.destroyed = true
	pos := o.Position()

	if cfg, err := s.assets.Emitter(fireParticles); err == nil {
		fx := NewParticleEmitter(fireParticles, cfg, s.rng)
		fx.SetPosition(pos.X, pos.Y)
		fx.SetZIndex(1)
		s.world.AddChild(fx)
	} else {
		s.debugf("destroy %s: effect skipped: %v", o.Kind, err)
	}

	s.physics.RemoveBody(o.Body)
	o.Node.Dispose()
	for i, other := range s.objects {
		if other == o {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			break
		}
	}
}
