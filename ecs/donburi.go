package ecs

import (
	"github.com/phanxgames/pegdrop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TouchEventType is the Donburi event type for routed touches.
var TouchEventType = events.NewEventType[pegdrop.TouchEvent]()

// ContactEventType is the Donburi event type for contacts between two live
// world objects.
var ContactEventType = events.NewEventType[pegdrop.ContactEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued and delivered by ProcessEvents on the matching type.
func NewDonburiStore(world donburi.World) pegdrop.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitTouch(event pegdrop.TouchEvent) {
	TouchEventType.Publish(s.world, event)
}

func (s *donburiStore) EmitContact(event pegdrop.ContactEvent) {
	ContactEventType.Publish(s.world, event)
}
