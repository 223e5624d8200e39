package catalog

import "testing"

func TestHeroLookup(t *testing.T) {
	h, ok := HeroByName("Wizard")
	if !ok {
		t.Fatal("Wizard should exist")
	}
	if h.Story == "" || h.Look == "" || h.Action == "" {
		t.Error("hero prompt fields must be populated")
	}
	if len(h.Particles) == 0 {
		t.Error("hero must have particles")
	}

	if _, ok := HeroByName("Batman"); ok {
		t.Error("unknown hero should not resolve")
	}
}

func TestAllHeroesComplete(t *testing.T) {
	hs := Heroes()
	if len(hs) != 6 {
		t.Fatalf("got %d heroes, want 6", len(hs))
	}
	seen := map[string]bool{}
	for _, h := range hs {
		if seen[h.Name] {
			t.Errorf("duplicate hero %q", h.Name)
		}
		seen[h.Name] = true
		if h.Emoji == "" || h.Color == "" {
			t.Errorf("hero %q missing presentation fields", h.Name)
		}
	}
}

func TestItemLookup(t *testing.T) {
	it, ok := ItemByID("fire_sword")
	if !ok {
		t.Fatal("fire_sword should exist")
	}
	if it.Name != "Fire Sword" || it.Price != 100 {
		t.Errorf("fire_sword = %+v", it)
	}

	if _, ok := ItemByID("bat_mobile"); ok {
		t.Error("unknown item should not resolve")
	}
}

func TestItemPricesPositive(t *testing.T) {
	its := Items()
	if len(its) != 6 {
		t.Fatalf("got %d items, want 6", len(its))
	}
	for _, it := range its {
		if it.Price <= 0 {
			t.Errorf("item %q has non-positive price %d", it.ID, it.Price)
		}
	}
}

func TestCatalogCopiesAreIsolated(t *testing.T) {
	hs := Heroes()
	hs[0].Name = "mutated"
	if Heroes()[0].Name == "mutated" {
		t.Error("Heroes must return a copy")
	}

	its := Items()
	its[0].Price = -1
	if Items()[0].Price == -1 {
		t.Error("Items must return a copy")
	}
}
