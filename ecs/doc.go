// Package ecs provides ECS adapters for pegdrop's scene events.
//
// The primary adapter is [NewDonburiStore], which bridges routed touches and
// resolved contacts into a [Donburi] world as typed events. Subscribe to
// [TouchEventType] and [ContactEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
