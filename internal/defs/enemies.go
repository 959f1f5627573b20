// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific kind of enemy.
type EnemyDefinition struct {
	Kind    EnemyKind `json:"kind"`
	Name    string    `json:"name"`
	Visuals Visuals   `json:"visuals"`
}

// Visuals — цвета глифа врага.
type Visuals struct {
	Fill   color.RGBA `json:"fill"`
	Accent color.RGBA `json:"accent"`
	Detail color.RGBA `json:"detail"`
}

// EnemyLibrary is a map to hold all enemy definitions, keyed by their kind.
var EnemyLibrary map[EnemyKind]EnemyDefinition

// SpawnTable — таблица весов появления врагов.
var SpawnTable []SpawnEntry
