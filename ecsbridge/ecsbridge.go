// Package ecsbridge adapts mlange-42/ark ECS entities to serve as the
// engine's opaque item handles, so a caller can drive a world.World[ecs.Entity]
// directly off of an ark.World's entities instead of inventing a parallel
// key type. The engine never inspects items; ecs.Entity's built-in value
// equality is all it needs.
package ecsbridge

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/duskfall/swept2d/config"
	"github.com/duskfall/swept2d/world"
	"github.com/duskfall/swept2d/worlderr"
)

// Position and Collider are the minimal components the bridge needs in
// order to keep a collision world in sync with an ark ECS world. Games
// with richer component sets can embed these or keep their own components
// additionally tagged into the same entities.
type Position struct {
	X, Y float64
}

// Collider describes an entity's AABB footprint.
type Collider struct {
	Width, Height float64
}

// Bridge owns a world.World[ecs.Entity] kept in sync with an ark.World's
// Position/Collider components.
type Bridge struct {
	ecsWorld     *ecs.World
	collision    *world.World[ecs.Entity]
	positions    *ecs.Map1[Position]
	colliders    *ecs.Map1[Collider]
	filterEither *ecs.Filter2[Position, Collider]
}

// New builds a Bridge over an existing ark ECS world, using cfg to size
// the collision grid.
func New(ecsWorld *ecs.World, cfg config.WorldConfig) (*Bridge, error) {
	w, err := config.NewWorld[ecs.Entity](cfg)
	if err != nil {
		return nil, err
	}
	return &Bridge{
		ecsWorld:     ecsWorld,
		collision:    w,
		positions:    ecs.NewMap1[Position](ecsWorld),
		colliders:    ecs.NewMap1[Collider](ecsWorld),
		filterEither: ecs.NewFilter2[Position, Collider](ecsWorld),
	}, nil
}

// World exposes the underlying collision world for direct query use.
func (br *Bridge) World() *world.World[ecs.Entity] { return br.collision }

// Track registers entity with the collision world, reading its current
// Position/Collider components.
func (br *Bridge) Track(entity ecs.Entity) error {
	if !br.positions.Has(entity) || !br.colliders.Has(entity) {
		return fmt.Errorf("ecsbridge: track %v: %w", entity, worlderr.ErrUnknownItem)
	}
	pos := br.positions.Get(entity)
	col := br.colliders.Get(entity)
	return br.collision.Add(entity, pos.X, pos.Y, col.Width, col.Height)
}

// Untrack removes entity from the collision world. It does not touch the
// ark ECS world's components.
func (br *Bridge) Untrack(entity ecs.Entity) error {
	return br.collision.Remove(entity)
}

// MoveEntity attempts to move entity to (x, y), running the swept-AABB
// resolver against every other tracked entity, and writes the resulting
// position back onto the entity's Position component.
func (br *Bridge) MoveEntity(entity ecs.Entity, x, y float64) ([]*world.Collision[ecs.Entity], error) {
	cols, err := br.collision.Move(entity, x, y, nil, nil)
	if err != nil {
		return nil, err
	}
	b, err := br.collision.GetBox(entity)
	if err != nil {
		return nil, err
	}
	br.positions.Get(entity).X = b.Left
	br.positions.Get(entity).Y = b.Top
	return cols, nil
}

// SyncAll tracks every entity currently carrying both Position and
// Collider components that is not tracked yet. Already-tracked entities
// keep their current boxes, and nothing is untracked. Useful after bulk ECS
// mutation (spawning a wave, loading a level) where per-entity Track calls
// would be noisy.
func (br *Bridge) SyncAll() error {
	query := br.filterEither.Query()
	for query.Next() {
		entity := query.Entity()
		if err := br.Track(entity); err != nil && !errors.Is(err, worlderr.ErrDuplicateItem) {
			return err
		}
	}
	return nil
}
