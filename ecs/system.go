package ecs

import (
	"errors"
	"fmt"
)

// System may change the World
type System interface {
	Update(w *World) error
}

type SystemFunc func(w *World) error

func (f SystemFunc) Update(w *World) error { return f(w) }

// ReadSystem only observes the World, e.g. rendering
type ReadSystem interface {
	Update(v View) error
}

type ReadSystemFunc func(v View) error

func (f ReadSystemFunc) Update(v View) error { return f(v) }

// UpdateWorld runs one frame: every System in order, then every ReadSystem
// in order. A failing system does not stop the frame, all errors are
// returned joined.
func UpdateWorld(w *World, systems []System, readSystems []ReadSystem) error {
	var errs []error

	for i, s := range systems {
		if err := s.Update(w); err != nil {
			errs = append(errs, fmt.Errorf("system %d: %w", i, err))
		}
	}

	v := w.View()
	for i, s := range readSystems {
		if err := s.Update(v); err != nil {
			errs = append(errs, fmt.Errorf("read system %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}
