// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
)

//go:embed enemies.json
var embeddedEnemies []byte

type enemyFile struct {
	Enemies    []EnemyDefinition `json:"enemies"`
	SpawnTable []SpawnEntry      `json:"spawn_table"`
}

func init() {
	if err := LoadEnemyDefinitions(embeddedEnemies); err != nil {
		panic(err)
	}
}

// LoadEnemyDefinitions parses enemy definitions and populates the EnemyLibrary and SpawnTable.
func LoadEnemyDefinitions(data []byte) error {
	var file enemyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	if len(file.Enemies) == 0 {
		return fmt.Errorf("enemy definitions are empty")
	}

	library := make(map[EnemyKind]EnemyDefinition, len(file.Enemies))
	for _, def := range file.Enemies {
		library[def.Kind] = def
	}
	for _, entry := range file.SpawnTable {
		if _, ok := library[entry.Kind]; !ok {
			return fmt.Errorf("spawn table references unknown enemy kind %q", entry.Kind)
		}
	}

	EnemyLibrary = library
	SpawnTable = file.SpawnTable
	log.Printf("Loaded %d enemy definitions", len(EnemyLibrary))
	return nil
}
