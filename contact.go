package pegdrop

import "slices"

// ContactContext carries a resolved contact. Ball and Other are set when one
// side is a ball; both are nil otherwise.
type ContactContext struct {
	A, B  *WorldObject
	Ball  *WorldObject
	Other *WorldObject
}

type contactHandler struct {
	id      uint32
	fn      func(ContactContext)
	removed bool
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	scene *Scene
}

// Remove unregisters this callback so it no longer fires. It is safe to call
// from inside a contact handler, including the handler being removed.
func (h CallbackHandle) Remove() {
	if h.scene == nil {
		return
	}
	hs := h.scene.contactHandlers
	for i, ch := range hs {
		if ch.id == h.id {
			ch.removed = true
			h.scene.contactHandlers = slices.Delete(slices.Clone(hs), i, i+1)
			return
		}
	}
}

// OnContact registers a callback for contacts between two live objects.
// The scene itself takes no action on contacts; scoring rules hook in here.
func (s *Scene) OnContact(fn func(ContactContext)) CallbackHandle {
	s.nextHandlerID++
	id := s.nextHandlerID
	s.contactHandlers = append(s.contactHandlers, &contactHandler{id: id, fn: fn})
	return CallbackHandle{id: id, scene: s}
}

// onContact receives contacts from the physics world after each step. A
// contact where either body has no live owner is a ghost contact and is
// ignored.
func (s *Scene) onContact(a, b *Body) {
	oa, ob := a.Owner(), b.Owner()
	if oa == nil || ob == nil {
		return
	}

	ctx := ContactContext{A: oa, B: ob}
	switch {
	case oa.Kind == KindBall:
		ctx.Ball, ctx.Other = oa, ob
	case ob.Kind == KindBall:
		ctx.Ball, ctx.Other = ob, oa
	}
	// Handlers may register or remove handlers; Remove never mutates the
	// slice being ranged here.
	for _, h := range s.contactHandlers {
		if !h.removed {
			h.fn(ctx)
		}
	}
	if s.store != nil {
		s.store.EmitContact(ContactEvent{A: oa, B: ob})
	}
}
