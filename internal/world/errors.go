package world

import "errors"

var (
	ErrGridSize          = errors.New("grid size mismatch")
	ErrWarpOutOfBounds   = errors.New("warp zone outside map")
	ErrNpcOutOfBounds    = errors.New("npc outside map")
	ErrUnknownConnection = errors.New("connection to unknown map")
	ErrOneWayConnection  = errors.New("connection not reciprocated")
	ErrUnknownWarp       = errors.New("warp to unknown map")
	ErrUnknownSpawn      = errors.New("spawn on unknown map")
)
