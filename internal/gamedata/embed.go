// Package gamedata loads the world bundle: the embedded world.json or a
// file on disk, converted into runtime maps and validated.
package gamedata

import "embed"

// dataFS holds the bundled world.
//
//go:embed *.json
var dataFS embed.FS

// DefaultWorld is the embedded bundle's file name.
const DefaultWorld = "world.json"
