package category

import (
	"testing"

	"github.com/guitarkeep/hub/internal/errors"
)

func TestIdentifierFor(t *testing.T) {
	cases := map[string]string{
		"Living Room":    "livingRoom",
		"Outside":        "outside",
		"temperature":    "temperature",
		"CO2 Level":      "cO2Level",
		"Kids  Bed Room": "kidsBedRoom",
		"Ä Room":         "äRoom",
		"":               "",
	}
	for in, want := range cases {
		if got := IdentifierFor(in); got != want {
			t.Errorf("IdentifierFor(%q) = %q, want %q", in, got, want)
		}
	}
	if IdentifierFor(Outside) != OutsideID {
		t.Fatalf("Outside must map to %q", OutsideID)
	}
}

func TestNewRegistryKeepsOrder(t *testing.T) {
	r, err := NewRegistry(RoomType, []string{"Living Room", " Kitchen ", "Outside"})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	got := r.Categories()
	want := []Category{
		{Name: "Living Room", Identifier: "livingRoom"},
		{Name: "Kitchen", Identifier: "kitchen"},
		{Name: "Outside", Identifier: "outside"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestNewRegistryRejectsCollisions(t *testing.T) {
	cases := [][]string{
		{"Living Room", "living Room"},
		{"Living Room", "LivingRoom"},
		{"Kitchen", "Kitchen"},
	}
	for _, names := range cases {
		_, err := NewRegistry(RoomType, names)
		if !errors.IsConfiguration(err) {
			t.Fatalf("expected configuration error for %v, got %v", names, err)
		}
	}
}

func TestNewRegistryRejectsEmptyEntries(t *testing.T) {
	_, err := NewRegistry(DataType, []string{"Temperature", "  "})
	if !errors.IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	r, err := NewRegistry(RoomType, []string{"Living Room", "Outside"})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	byID, err := r.Resolve("livingRoom")
	if err != nil || byID.Name != "Living Room" {
		t.Fatalf("resolve by identifier: %+v %v", byID, err)
	}
	byName, err := r.Resolve("Living Room")
	if err != nil || byName.Identifier != "livingRoom" {
		t.Fatalf("resolve by name: %+v %v", byName, err)
	}

	_, err = r.Resolve("attic")
	if !errors.IsValidation(err) {
		t.Fatalf("expected validation error for unknown selector, got %v", err)
	}
	// Matching is exact.
	if _, err := r.Resolve("living room"); err == nil {
		t.Fatalf("expected case-sensitive lookup")
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	r, _ := NewRegistry(DataType, []string{"Temperature"})
	cats := r.Categories()
	cats[0].Name = "mutated"
	if r.Categories()[0].Name != "Temperature" {
		t.Fatalf("registry must not be mutable through Categories")
	}
}

func TestLoadAndListing(t *testing.T) {
	set, err := Load([]string{"Kitchen", "Outside"}, []string{"Temperature", "Rainfall"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	listing := set.Listing()
	if len(listing.RoomTypes) != 2 || listing.RoomTypes[1].Identifier != "outside" {
		t.Fatalf("unexpected room listing %+v", listing.RoomTypes)
	}
	if len(listing.DataTypes) != 2 || listing.DataTypes[1].Name != "Rainfall" {
		t.Fatalf("unexpected data listing %+v", listing.DataTypes)
	}

	if _, err := Load([]string{"A b", "Ab"}, []string{"Temperature"}); !errors.IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
