package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateWorldOrder(t *testing.T) {
	w := NewWorld()
	var trace []string

	record := func(name string) System {
		return SystemFunc(func(*World) error {
			trace = append(trace, name)
			return nil
		})
	}
	observe := func(name string) ReadSystem {
		return ReadSystemFunc(func(View) error {
			trace = append(trace, name)
			return nil
		})
	}

	err := UpdateWorld(w,
		[]System{record("a"), record("b")},
		[]ReadSystem{observe("render"), observe("hud")})

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "render", "hud"}, trace)
}

func TestUpdateWorldMutationVisible(t *testing.T) {
	w := NewWorld()
	e, _ := w.CreateEntity()
	w.SetDisplacement(e, Displacement{})

	move := SystemFunc(func(w *World) error {
		w.Displacement(e).X += 1
		return nil
	})

	var seen float32
	read := ReadSystemFunc(func(v View) error {
		d, _ := v.Displacement(e)
		seen = d.X
		return nil
	})

	for i := 0; i < 3; i++ {
		assert.NoError(t, UpdateWorld(w, []System{move}, []ReadSystem{read}))
	}
	assert.Equal(t, float32(3), seen)
}

func TestUpdateWorldErrors(t *testing.T) {
	w := NewWorld()
	errA := errors.New("a failed")
	errR := errors.New("render failed")

	var ran int
	fail := func(err error) System {
		return SystemFunc(func(*World) error {
			ran++
			return err
		})
	}

	err := UpdateWorld(w,
		[]System{fail(errA), fail(nil)},
		[]ReadSystem{ReadSystemFunc(func(View) error {
			ran++
			return errR
		})})

	assert.Equal(t, 3, ran)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errR)
	assert.Contains(t, err.Error(), "system 0")
	assert.Contains(t, err.Error(), "read system 0")
}
