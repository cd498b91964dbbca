package catalog

import (
	"testing"

	"github.com/apilooter/gateway/model"
)

func testProviders() []model.Provider {
	return []model.Provider{
		{ID: 2, Name: "Cat Facts", Description: "Random facts about cats", Category: "Fun"},
		{ID: 1, Name: "Dog CEO", Description: "Random dog images", Category: "Images"},
		{ID: 3, Name: "CoinGecko", Description: "Cryptocurrency prices", Category: "Cryptocurrency"},
	}
}

func TestRegistryAllOrderedByName(t *testing.T) {
	reg := NewRegistry(testProviders())

	all := reg.All()
	if len(all) != 3 {
		t.Fatalf("All() len = %d, want 3", len(all))
	}
	want := []string{"Cat Facts", "CoinGecko", "Dog CEO"}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("All()[%d].Name = %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestRegistryByID(t *testing.T) {
	reg := NewRegistry(testProviders())

	p, ok := reg.ByID(2)
	if !ok || p.Name != "Cat Facts" {
		t.Errorf("ByID(2) = %q, %v; want Cat Facts, true", p.Name, ok)
	}
	if _, ok := reg.ByID(99); ok {
		t.Error("ByID(99) = true, want false")
	}
}

func TestRegistryByNameCaseInsensitive(t *testing.T) {
	reg := NewRegistry(testProviders())

	p, ok := reg.ByName("dog ceo")
	if !ok || p.ID != 1 {
		t.Errorf("ByName(\"dog ceo\") = %d, %v; want 1, true", p.ID, ok)
	}
}

func TestRegistrySearch(t *testing.T) {
	reg := NewRegistry(testProviders())

	tests := []struct {
		query string
		want  int
	}{
		{"cat", 1},
		{"random", 2},
		{"CRYPTO", 1},
		{"nothing matches this", 0},
		{"", 3},
	}
	for _, tt := range tests {
		got := reg.Search(tt.query)
		if len(got) != tt.want {
			t.Errorf("Search(%q) len = %d, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestRegistryByCategory(t *testing.T) {
	reg := NewRegistry(testProviders())

	got := reg.ByCategory("Fun")
	if len(got) != 1 || got[0].Name != "Cat Facts" {
		t.Errorf("ByCategory(Fun) = %v, want [Cat Facts]", got)
	}
	if got := reg.ByCategory("Weather"); len(got) != 0 {
		t.Errorf("ByCategory(Weather) len = %d, want 0", len(got))
	}
}

func TestRegistryCategories(t *testing.T) {
	reg := NewRegistry(testProviders())

	got := reg.Categories()
	want := []string{"Cryptocurrency", "Fun", "Images"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryReplace(t *testing.T) {
	reg := NewRegistry(testProviders())

	reg.Replace([]model.Provider{{ID: 10, Name: "Only One", Category: "Data"}})
	if reg.Len() != 1 {
		t.Fatalf("Len() after Replace = %d, want 1", reg.Len())
	}
	if _, ok := reg.ByID(1); ok {
		t.Error("ByID(1) after Replace = true, want false")
	}
}

func TestBuiltinReturnsCopy(t *testing.T) {
	a := Builtin()
	a[0].Name = "mutated"
	b := Builtin()
	if b[0].Name == "mutated" {
		t.Error("Builtin() returned shared backing storage")
	}
}
