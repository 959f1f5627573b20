// internal/defs/loot_tables.go
package defs

// SpawnEntry представляет одну запись в таблице появления.
// Kind - вид врага, а Weight - его относительный шанс появления.
type SpawnEntry struct {
	Kind   EnemyKind `json:"kind"`
	Weight int       `json:"weight"`
}
