package ecs

// View is read-only access to a World. Getters return copies.
type View struct {
	w *World
}

func (w *World) View() View {
	return View{w: w}
}

func (v View) Alive(e Entity) bool { return v.w.Alive(e) }
func (v View) Count() int { return v.w.Count() }
func (v View) Mask(e Entity) Component { return v.w.Mask(e) }
func (v View) Each(f func(Entity)) { v.w.Each(f) }
func (v View) State() WorldState { return v.w.State }
func (v View) Has(e Entity, c Component) bool { return v.w.has(e, c) }

func (v View) Renderable(e Entity) (Renderable, bool) {
	if p := v.w.Renderable(e); p != nil {
		return *p, true
	}
	return Renderable{}, false
}

func (v View) Textured(e Entity) (Textured, bool) {
	if p := v.w.Textured(e); p != nil {
		return *p, true
	}
	return Textured{}, false
}

func (v View) Colored(e Entity) (Colored, bool) {
	if p := v.w.Colored(e); p != nil {
		return *p, true
	}
	return Colored{}, false
}

func (v View) Displacement(e Entity) (Displacement, bool) {
	if p := v.w.Displacement(e); p != nil {
		return *p, true
	}
	return Displacement{}, false
}

func (v View) Rotation(e Entity) (Rotation, bool) {
	if p := v.w.Rotation(e); p != nil {
		return *p, true
	}
	return Rotation{}, false
}

func (v View) Velocity(e Entity) (Velocity, bool) {
	if p := v.w.Velocity(e); p != nil {
		return *p, true
	}
	return Velocity{}, false
}

func (v View) Illuminated(e Entity) (Illuminated, bool) {
	if p := v.w.Illuminated(e); p != nil {
		return *p, true
	}
	return Illuminated{}, false
}
