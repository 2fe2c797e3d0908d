package pokeapi

import "testing"

func TestIsStarter(t *testing.T) {
	for _, name := range []string{"bulbasaur", "mudkip", "sobble"} {
		if !IsStarter(name) {
			t.Errorf("IsStarter(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"pikachu", "mewtwo", ""} {
		if IsStarter(name) {
			t.Errorf("IsStarter(%q) = true, want false", name)
		}
	}
}

func TestStarterCatalogShape(t *testing.T) {
	if len(starterNames) != 8 {
		t.Fatalf("regions = %d, want 8", len(starterNames))
	}
	for region, names := range starterNames {
		if len(names) != 3 {
			t.Errorf("region %q has %d starters, want 3", region, len(names))
		}
	}
}
