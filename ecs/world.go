package ecs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// MaxEntities is the fixed capacity of a World
const MaxEntities = 100

// General purpose object that identifies a set of components.
// Ids are slot indices and are reused after the entity is destroyed.
type Entity uint

func (e Entity) Uint() uint {
	return uint(e)
}

// World stores every component kind in its own array indexed by Entity.
// A mask bit is set exactly when the matching slot holds valid data.
type World struct {
	count int
	slots *bitset.BitSet // reserved entities, including those without components
	masks [MaxEntities]Component

	renderable   [MaxEntities]Renderable
	gc           [MaxEntities]GC
	textured     [MaxEntities]Textured
	colored      [MaxEntities]Colored
	displacement [MaxEntities]Displacement
	rotation     [MaxEntities]Rotation
	velocity     [MaxEntities]Velocity
	illuminated  [MaxEntities]Illuminated

	State WorldState
}

func NewWorld() *World {
	return &World{
		slots: bitset.New(MaxEntities),
		State: defaultState(),
	}
}

// CreateEntity reserves the lowest free slot. The new entity has no components.
func (w *World) CreateEntity() (Entity, error) {
	i, ok := w.slots.NextClear(0)
	if !ok || i >= MaxEntities {
		return 0, ErrNoEntitiesLeft
	}

	e := Entity(i)
	w.slots.Set(i)
	w.reset(e)
	w.count++

	return e, nil
}

// DestroyEntity frees the slot of e. Entities that still own gpu resources
// have to be released first.
func (w *World) DestroyEntity(e Entity) error {
	if !w.Alive(e) {
		return fmt.Errorf("destroy entity %d: %w", e, ErrNotAlive)
	}
	if w.masks[e]&(ComponentRenderable|ComponentGC) != 0 {
		return fmt.Errorf("destroy entity %d (%v): %w", e, w.masks[e], ErrResourcesHeld)
	}

	w.reset(e)
	w.slots.Clear(e.Uint())
	w.count--

	return nil
}

func (w *World) reset(e Entity) {
	w.masks[e] = ComponentNone
	w.renderable[e] = Renderable{}
	w.gc[e] = GC{}
	w.textured[e] = Textured{}
	w.colored[e] = Colored{}
	w.displacement[e] = Displacement{}
	w.rotation[e] = Rotation{}
	w.velocity[e] = Velocity{}
	w.illuminated[e] = Illuminated{}
}

func (w *World) Alive(e Entity) bool {
	return e < MaxEntities && w.slots.Test(e.Uint())
}

// Count returns the number of live entities
func (w *World) Count() int {
	return w.count
}

// Mask returns the component mask of e, ComponentNone for free slots
func (w *World) Mask(e Entity) Component {
	if !w.Alive(e) {
		return ComponentNone
	}
	return w.masks[e]
}

// Each calls f for every live entity in index order
func (w *World) Each(f func(Entity)) {
	for i, ok := w.slots.NextSet(0); ok && i < MaxEntities; i, ok = w.slots.NextSet(i + 1) {
		f(Entity(i))
	}
}

// Entities returns the live entities in index order
func (w *World) Entities() []Entity {
	list := make([]Entity, 0, w.count)
	w.Each(func(e Entity) {
		list = append(list, e)
	})
	return list
}

func (w *World) attach(e Entity, c Component) error {
	if !w.Alive(e) {
		return fmt.Errorf("attach %v to entity %d: %w", c, e, ErrNotAlive)
	}
	w.masks[e] |= c
	return nil
}

// Detach clears the bits of c and zeroes the matching slots.
// Gpu handles referenced by detached slots are not released.
func (w *World) Detach(e Entity, c Component) error {
	if !w.Alive(e) {
		return fmt.Errorf("detach %v from entity %d: %w", c, e, ErrNotAlive)
	}

	if c&ComponentRenderable != 0 {
		w.renderable[e] = Renderable{}
	}
	if c&ComponentGC != 0 {
		w.gc[e] = GC{}
	}
	if c&ComponentTextured != 0 {
		w.textured[e] = Textured{}
	}
	if c&ComponentColored != 0 {
		w.colored[e] = Colored{}
	}
	if c&ComponentDisplacement != 0 {
		w.displacement[e] = Displacement{}
	}
	if c&ComponentRotation != 0 {
		w.rotation[e] = Rotation{}
	}
	if c&ComponentVelocity != 0 {
		w.velocity[e] = Velocity{}
	}
	if c&ComponentIlluminated != 0 {
		w.illuminated[e] = Illuminated{}
	}

	w.masks[e] &^= c
	return nil
}

func (w *World) SetRenderable(e Entity, r Renderable) error {
	if err := w.attach(e, ComponentRenderable); err != nil {
		return err
	}
	w.renderable[e] = r
	return nil
}

func (w *World) SetGC(e Entity, gc GC) error {
	if err := w.attach(e, ComponentGC); err != nil {
		return err
	}
	w.gc[e] = gc
	return nil
}

func (w *World) SetTextured(e Entity, t Textured) error {
	if err := w.attach(e, ComponentTextured); err != nil {
		return err
	}
	w.textured[e] = t
	return nil
}

func (w *World) SetColored(e Entity, c Colored) error {
	if err := w.attach(e, ComponentColored); err != nil {
		return err
	}
	w.colored[e] = c
	return nil
}

func (w *World) SetDisplacement(e Entity, d Displacement) error {
	if err := w.attach(e, ComponentDisplacement); err != nil {
		return err
	}
	w.displacement[e] = d
	return nil
}

func (w *World) SetRotation(e Entity, r Rotation) error {
	if err := w.attach(e, ComponentRotation); err != nil {
		return err
	}
	w.rotation[e] = r
	return nil
}

func (w *World) SetVelocity(e Entity, v Velocity) error {
	if err := w.attach(e, ComponentVelocity); err != nil {
		return err
	}
	w.velocity[e] = v
	return nil
}

func (w *World) SetIlluminated(e Entity, i Illuminated) error {
	if err := w.attach(e, ComponentIlluminated); err != nil {
		return err
	}
	w.illuminated[e] = i
	return nil
}

// has reports whether e is alive and carries all components of c
func (w *World) has(e Entity, c Component) bool {
	return w.Alive(e) && w.masks[e].Has(c)
}

// Pointer getters return nil if e does not carry the component.
// The pointers stay valid until e is destroyed.

func (w *World) Renderable(e Entity) *Renderable {
	if !w.has(e, ComponentRenderable) {
		return nil
	}
	return &w.renderable[e]
}

func (w *World) GC(e Entity) *GC {
	if !w.has(e, ComponentGC) {
		return nil
	}
	return &w.gc[e]
}

func (w *World) Textured(e Entity) *Textured {
	if !w.has(e, ComponentTextured) {
		return nil
	}
	return &w.textured[e]
}

func (w *World) Colored(e Entity) *Colored {
	if !w.has(e, ComponentColored) {
		return nil
	}
	return &w.colored[e]
}

func (w *World) Displacement(e Entity) *Displacement {
	if !w.has(e, ComponentDisplacement) {
		return nil
	}
	return &w.displacement[e]
}

func (w *World) Rotation(e Entity) *Rotation {
	if !w.has(e, ComponentRotation) {
		return nil
	}
	return &w.rotation[e]
}

func (w *World) Velocity(e Entity) *Velocity {
	if !w.has(e, ComponentVelocity) {
		return nil
	}
	return &w.velocity[e]
}

func (w *World) Illuminated(e Entity) *Illuminated {
	if !w.has(e, ComponentIlluminated) {
		return nil
	}
	return &w.illuminated[e]
}
