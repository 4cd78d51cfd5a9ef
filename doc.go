// Package sprig dispatches pointer and touch input to the items of a retained
// 2D scene graph.
//
// A [Dispatcher] sits between a [Surface], which delivers raw input events,
// and a tree of [Node] values. For each raw event it picks the items under
// the pointer, diffs them against the items that were active before and
// fires semantic events to registered handlers in a fixed order.
//
// # Quick start
//
//	root := sprig.NewGroup("root")
//	box := sprig.NewRect("box", 80, 40)
//	box.X, box.Y = 100, 50
//	root.AddChild(box)
//
//	surface := sprig.NewEbitenSurface(sprig.Rect{Width: 640, Height: 480})
//	d := sprig.NewDispatcher().Initialize(surface, 0, 0).SetScene(root)
//	d.On(sprig.EventMouseOver, func(evt *sprig.Event, item *sprig.Node) {
//		fmt.Println("over", item.Name)
//	})
//
//	// in ebiten.Game.Update:
//	surface.Update()
//
// # Event ordering
//
// On every mousemove the dispatcher fires mousemove for items that stay
// active, mouseout for items that are no longer picked (unless they are
// flagged [Node.Exit]), then mouseover followed by mousemove for each newly
// picked item. dragover uses the same algorithm with dragenter and
// dragleave. Leaving the surface (mouseout, dragleave) deactivates every
// item. A click fires for items active both at the last mousedown and now.
//
// Touch input keeps its own set, picked on touchstart at the first changed
// touch and reused for touchmove and touchend. The first touchstart a
// dispatcher sees also seeds the pointer active set, so hover-driven
// behavior works on touch-only devices.
//
// # Listeners
//
// The dispatcher attaches surface listeners lazily: a small bootstrap set on
// [Dispatcher.Initialize], then one listener per type as handlers are
// registered. The touch types are attached together. Listeners are never
// removed; to rebind, create a new Dispatcher.
//
// # Side channels
//
// Clicks on items with [Node.Href] call the [HrefFunc] set with
// [WithHrefHandler]. Items with a [Node.Tooltip] payload call the
// [TooltipFunc] set with [WithTooltipHandler] on mousemove (show) and
// mouseout (hide). Both run before the generic handlers.
//
// # Scripted input
//
// [InjectSurface] queues synthetic input and delivers one frame per Step.
// [TestRunner] drives it from JSON or YAML scripts, which is how the tests
// and the sprig replay command exercise a dispatcher without a window.
//
// # Hover effects
//
// [Highlight] eases a per-item level toward 1 while the pointer is over an
// item and back to 0 after it leaves, for renderers that fade hover states.
package sprig
