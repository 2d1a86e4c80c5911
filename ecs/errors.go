package ecs

import (
	"errors"
)

var (
	ErrNoEntitiesLeft = errors.New("ecs: no entities left")
	ErrNotAlive       = errors.New("ecs: entity is not alive")
	ErrResourcesHeld  = errors.New("ecs: entity still holds gpu resources")
)
