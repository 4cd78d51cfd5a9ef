// Package ecs provides ECS adapters for sprig's interaction dispatcher.
//
// The primary adapter is [NewDonburiStore], which bridges semantic events
// fired on scene items with a non-zero EntityID into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	d := sprig.NewDispatcher(sprig.WithEntityStore(store))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
