package defs

import "testing"

func TestEmbeddedDefinitionsLoaded(t *testing.T) {
	for _, kind := range []EnemyKind{EnemyHound, EnemyYarn} {
		if _, ok := EnemyLibrary[kind]; !ok {
			t.Fatalf("missing definition for %q", kind)
		}
	}
	total := 0
	for _, e := range SpawnTable {
		total += e.Weight
	}
	if total != 100 {
		t.Fatalf("spawn weights sum: got=%d want=100", total)
	}
}

func TestLoadRejectsUnknownSpawnKind(t *testing.T) {
	saved, savedTable := EnemyLibrary, SpawnTable
	defer func() { EnemyLibrary, SpawnTable = saved, savedTable }()

	data := []byte(`{"enemies":[{"kind":"hound"}],"spawn_table":[{"kind":"cat","weight":1}]}`)
	if err := LoadEnemyDefinitions(data); err == nil {
		t.Fatalf("expected error for unknown kind in spawn table")
	}
	if len(EnemyLibrary) != len(saved) {
		t.Fatalf("library must stay untouched on error")
	}
}
