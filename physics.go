package pegdrop

import (
	"github.com/jakecoffman/cp"
)

// CategoryAll matches every collision category.
const CategoryAll = ^uint(0)

// bodyCollisionType tags every shape the World creates so a single handler
// sees all pairs.
const bodyCollisionType cp.CollisionType = 1

// BodyDef describes a rectangular rigid body.
type BodyDef struct {
	Width, Height float64
	// Dynamic bodies move under forces; static ones never move on impact.
	Dynamic           bool
	AffectedByGravity bool
	Restitution       float64
	Friction          float64
	// Mass of a dynamic body; zero means 1.
	Mass float64
	// Category is the set of categories the body belongs to.
	Category uint
	// CollisionMask is the set of categories the body physically collides with.
	CollisionMask uint
	// ContactMask is the set of categories the body wants contact
	// notifications for. It does not affect collision response.
	ContactMask uint
}

// Body is a rigid body owned by a World.
type Body struct {
	world             *World
	body              *cp.Body
	shape             *cp.Shape
	size              Vec2
	contactMask       uint
	affectedByGravity bool
	owner             *WorldObject
}

// IsDynamic reports whether the body moves under forces.
func (b *Body) IsDynamic() bool { return b.body.GetType() == cp.BODY_DYNAMIC }

// Restitution returns the bounciness of the body's shape.
func (b *Body) Restitution() float64 { return b.shape.Elasticity() }

// Size returns the width and height of the body's rectangle.
func (b *Body) Size() Vec2 { return b.size }

// Category returns the categories the body belongs to.
func (b *Body) Category() uint { return b.shape.Filter.Categories }

// CollisionMask returns the categories the body physically collides with.
func (b *Body) CollisionMask() uint { return b.shape.Filter.Mask }

// ContactMask returns the categories the body reports contacts with.
func (b *Body) ContactMask() uint { return b.contactMask }

// SetContactMask replaces the contact notification mask.
func (b *Body) SetContactMask(mask uint) { b.contactMask = mask }

// AffectedByGravity reports whether world gravity accelerates the body.
func (b *Body) AffectedByGravity() bool { return b.affectedByGravity }

// Position returns the body's center in world space.
func (b *Body) Position() Vec2 {
	p := b.body.Position()
	return Vec2{X: p.X, Y: p.Y}
}

// Angle returns the body's rotation in radians.
func (b *Body) Angle() float64 { return b.body.Angle() }

// Owner returns the world object the body is attached to, or nil when the
// body was removed or never attached.
func (b *Body) Owner() *WorldObject {
	if b == nil {
		return nil
	}
	return b.owner
}

type contactPair struct {
	a, b *Body
}

// World wraps a Chipmunk space. Contacts are queued while the space steps and
// delivered once Step returns, so handlers may add or remove bodies.
type World struct {
	space     *cp.Space
	edges     []*cp.Shape
	bounds    Rect
	pending   []contactPair
	delivered []contactPair
	onContact func(a, b *Body)
	bodies    int
}

// NewWorld creates an empty physics world with the given gravity.
func NewWorld(gravity Vec2) *World {
	w := &World{space: cp.NewSpace()}
	w.space.SetGravity(cp.Vector{X: gravity.X, Y: gravity.Y})
	h := w.space.NewCollisionHandler(bodyCollisionType, bodyCollisionType)
	h.BeginFunc = w.begin
	return w
}

// OnContact sets the function receiving contact notifications. Either body
// may be nil when the contact involves the world's edge loop.
func (w *World) OnContact(fn func(a, b *Body)) {
	w.onContact = fn
}

// BodyCount returns the number of bodies added and not yet removed.
func (w *World) BodyCount() int {
	return w.bodies
}

// AddBody creates a rectangular body centered at pos.
func (w *World) AddBody(def BodyDef, pos Vec2, angle float64) *Body {
	var body *cp.Body
	if def.Dynamic {
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		body = cp.NewBody(mass, cp.MomentForBox(mass, def.Width, def.Height))
		if !def.AffectedByGravity {
			body.SetVelocityUpdateFunc(func(body *cp.Body, _ cp.Vector, damping, dt float64) {
				cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
			})
		}
	} else {
		body = cp.NewStaticBody()
	}
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	body.SetAngle(angle)
	w.space.AddBody(body)

	shape := cp.NewBox(body, def.Width, def.Height, 0)
	shape.SetElasticity(def.Restitution)
	shape.SetFriction(def.Friction)
	shape.SetCollisionType(bodyCollisionType)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: def.Category, Mask: def.CollisionMask})
	w.space.AddShape(shape)

	b := &Body{
		world:             w,
		body:              body,
		shape:             shape,
		size:              Vec2{X: def.Width, Y: def.Height},
		contactMask:       def.ContactMask,
		affectedByGravity: def.Dynamic && def.AffectedByGravity,
	}
	body.UserData = b
	w.bodies++
	return b
}

// RemoveBody removes b from the space. Removing twice is a no-op.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.world != w {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	b.body.UserData = nil
	b.world = nil
	b.owner = nil
	w.bodies--
}

// SetBounds replaces the static edge loop enclosing the world.
func (w *World) SetBounds(r Rect) {
	if r == w.bounds && w.edges != nil {
		return
	}
	for _, e := range w.edges {
		w.space.RemoveShape(e)
	}
	w.edges = w.edges[:0]
	w.bounds = r

	tl := cp.Vector{X: r.X, Y: r.Y}
	tr := cp.Vector{X: r.X + r.Width, Y: r.Y}
	br := cp.Vector{X: r.X + r.Width, Y: r.Y + r.Height}
	bl := cp.Vector{X: r.X, Y: r.Y + r.Height}
	for _, seg := range [][2]cp.Vector{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}} {
		shape := cp.NewSegment(w.space.StaticBody, seg[0], seg[1], 0)
		shape.SetFriction(1)
		shape.SetCollisionType(bodyCollisionType)
		w.space.AddShape(shape)
		w.edges = append(w.edges, shape)
	}
}

// Bounds returns the rectangle enclosed by the edge loop.
func (w *World) Bounds() Rect {
	return w.bounds
}

// Step advances the simulation by dt seconds, then delivers queued contacts.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
	if len(w.pending) == 0 {
		return
	}
	w.delivered, w.pending = w.pending, w.delivered[:0]
	if w.onContact != nil {
		for _, c := range w.delivered {
			w.onContact(c.a, c.b)
		}
	}
	clear(w.delivered)
}

// begin is the Chipmunk begin callback for every shape pair.
func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	ba, bb := arb.Bodies()
	a, _ := ba.UserData.(*Body)
	b, _ := bb.UserData.(*Body)
	if wantsContact(a, b) {
		w.pending = append(w.pending, contactPair{a: a, b: b})
	}
	return true
}

// wantsContact reports whether either body asked to hear about the other.
// A nil body (the edge loop) belongs to every category and asks for nothing.
func wantsContact(a, b *Body) bool {
	catA, catB := CategoryAll, CategoryAll
	if a != nil {
		catA = a.Category()
	}
	if b != nil {
		catB = b.Category()
	}
	return (a != nil && a.contactMask&catB != 0) || (b != nil && b.contactMask&catA != 0)
}
