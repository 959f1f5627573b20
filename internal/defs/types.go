// internal/defs/types.go
package defs

// EnemyKind определяет вид врага. Общий контракт движения у всех видов один,
// различается только глиф при отрисовке.
type EnemyKind string

const (
	EnemyHound EnemyKind = "hound"
	EnemyYarn  EnemyKind = "yarn"
)
