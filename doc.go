// Package pegdrop is a peg-drop physics toy for [Ebitengine].
//
// Balls fall through the scene when the player touches it; an Edit toggle
// switches touches to placing static obstacles instead. A camera scrolls
// down one unit per tick while the background and the physics bounds follow
// an externally supplied vertical offset. Rigid-body simulation is handled
// by Chipmunk ([cp]).
//
// # Quick start
//
//	cfg, err := pegdrop.LoadConfig(".env")
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene, err := pegdrop.NewScene(cfg, pegdrop.NewAssets(os.DirFS(cfg.AssetDir)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := pegdrop.Run(scene, pegdrop.RunConfig{Title: "Peg Drop"}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Frame order
//
// Each [Scene.Update] runs, in order: the attached [TestRunner], touch
// routing ([Scene.HandleTouch]), the physics step with its queued contacts,
// body-to-node sync, the post-physics scroll pass, tweens and particles.
//
// # State
//
// [SceneState] holds the score, edit mode and camera offset. Label text is
// re-derived from it after every change, so "Score: N" and "Edit"/"Done"
// never go stale.
//
// # Contacts
//
// The scene takes no action on contacts by itself. Register a handler with
// [Scene.OnContact] to score or destroy objects:
//
//	scene.OnContact(func(c pegdrop.ContactContext) {
//		if c.Ball != nil && c.Other.Kind == pegdrop.KindDroppedBox {
//			scene.AddScore(1)
//			scene.Destroy(c.Ball)
//		}
//	})
//
// Contacts involving the world's edge loop or an already removed body are
// dropped silently.
//
// # ECS integration
//
// Set an [EntityStore] with [Scene.SetEntityStore] to receive touch and
// contact events. The pegdrop/ecs submodule provides a Donburi adapter.
//
// [Ebitengine]: https://ebitengine.org
// [cp]: https://github.com/jakecoffman/cp
package pegdrop
