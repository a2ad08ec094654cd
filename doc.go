/*
Package crank is the entity/component storage-and-dispatch core of a small
game-engine toolkit. It stores heterogeneous per-entity data column-wise in
per-archetype tables, lets callers query arbitrary component subsets
without copying, and drives a deterministic per-frame update loop over
registered systems and a singleton resource registry.

Core concepts:

  - Archetype: a struct type whose fields are the components of one entity
    shape; each archetype owns exactly one table.
  - Component: one typed field of per-entity data, stored in its own
    column.
  - Resource: a singleton value keyed by type, independent of any entity.
  - System: a per-frame (ticker) or per-event (handler) behavior,
    dispatched strictly in registration order.
  - Query: a borrow-checked view spanning every table whose schema
    includes the requested type.

Basic usage:

	type Monster struct {
		Pos    Position
		Health Health
	}

	world := crank.NewWorld[Event]().
		WithResource(crank.NewTime()).
		WithTicker(crank.UpdateTime).
		WithTicker(regenerate)

	crank.Spawn(world, Monster{Pos: Position{X: 4}, Health: Health{Current: 10}})

	for running(world) {
		world.Tick()
	}

Access to columns and resources is guarded by dynamic shared/exclusive
borrow checking: any number of shared views may coexist, an exclusive view
requires that no other view of the same column or resource is live.
Conflicts indicate a defect in a system and panic immediately. The package
is single-threaded by design and makes no cross-goroutine guarantees.
*/
package crank
