package tip

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/guitarkeep/hub/internal/errors"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	want := Table{
		"humidity":    {Min: 45, Max: 55},
		"temperature": {Min: 18, Max: 28},
		"light":       {Min: 0, Max: 100},
		"rainfall":    {Min: 0, Max: 0.5},
	}
	if len(table) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(table))
	}
	for id, r := range want {
		if got, ok := table.Lookup(id); !ok || got != r {
			t.Fatalf("%s: expected %+v, got %+v (found=%v)", id, r, got, ok)
		}
	}
}

func TestClassifyGeneric(t *testing.T) {
	c := NewClassifier(DefaultTable())
	cases := []struct {
		room, data string
		value      float64
		want       string
	}{
		{"livingRoom", "humidity", 60, "humidity should be lower"},
		{"livingRoom", "humidity", 40, "humidity should be higher"},
		{"livingRoom", "humidity", 45, "humidity is in the right range"},
		{"livingRoom", "humidity", 55, "humidity is in the right range"},
		{"kitchen", "temperature", 28.01, "temperature should be lower"},
		{"kitchen", "temperature", 17.99, "temperature should be higher"},
		{"kitchen", "temperature", 18, "temperature is in the right range"},
		{"bedroom", "light", -1, "light should be higher"},
		{"bedroom", "light", 100, "light is in the right range"},
		{"bedroom", "rainfall", 0.6, "rainfall should be lower"},
		{"bedroom", "rainfall", 0.5, "rainfall is in the right range"},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.room, tc.data, tc.value); got != tc.want {
			t.Errorf("Classify(%q, %q, %v) = %q, want %q", tc.room, tc.data, tc.value, got, tc.want)
		}
	}
}

func TestClassifyOutside(t *testing.T) {
	c := NewClassifier(DefaultTable())
	cases := []struct {
		data  string
		value float64
		want  string
	}{
		{"rainfall", 0.6, HighRainfallOutside},
		{"rainfall", 0.5, "rainfall is in the right range"},
		{"temperature", 30, HighTemperatureOutside},
		{"temperature", 28, "temperature is in the right range"},
		{"temperature", 10, "temperature should be higher"},
		// No humidity override outside.
		{"humidity", 60, "humidity should be lower"},
		{"humidity", 30, "humidity should be higher"},
		{"light", 150, "light should be lower"},
		{"pressure", 1000, NA},
	}
	for _, tc := range cases {
		if got := c.Classify("outside", tc.data, tc.value); got != tc.want {
			t.Errorf("Classify(outside, %q, %v) = %q, want %q", tc.data, tc.value, got, tc.want)
		}
	}
}

func TestClassifyOverrideNeedsOutsideIdentifier(t *testing.T) {
	c := NewClassifier(DefaultTable())
	if got := c.Classify("Outside", "rainfall", 0.6); got != "rainfall should be lower" {
		t.Fatalf("display form must not trigger the outside rule, got %q", got)
	}
}

func TestClassifyUnknownDataTypeIsNA(t *testing.T) {
	c := NewClassifier(DefaultTable())
	rng := rand.New(rand.NewSource(1))
	rooms := []string{"outside", "kitchen", "", "livingRoom"}
	types := []string{"co2", "Humidity", "", "noise"}
	for i := 0; i < 200; i++ {
		room := rooms[rng.Intn(len(rooms))]
		data := types[rng.Intn(len(types))]
		value := (rng.Float64() - 0.5) * 1000
		if got := c.Classify(room, data, value); got != NA {
			t.Fatalf("Classify(%q, %q, %v) = %q, want NA", room, data, value, got)
		}
	}
}

func TestClassifyGenericPropertyAcrossRange(t *testing.T) {
	table := DefaultTable()
	c := NewClassifier(table)
	rng := rand.New(rand.NewSource(7))
	for id, r := range table {
		for i := 0; i < 100; i++ {
			value := r.Min - 50 + rng.Float64()*(r.Max-r.Min+100)
			got := c.Classify("kitchen", id, value)
			var want string
			switch {
			case value > r.Max:
				want = id + " should be lower"
			case value < r.Min:
				want = id + " should be higher"
			default:
				want = id + " is in the right range"
			}
			if got != want {
				t.Fatalf("Classify(kitchen, %q, %v) = %q, want %q", id, value, got, want)
			}
		}
	}
}

func TestParseTableValidation(t *testing.T) {
	cases := map[string]string{
		"inverted": "thresholds:\n  humidity:\n    min: 60\n    max: 40\n",
		"empty":    "thresholds: {}\n",
		"broken":   "thresholds: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseTable([]byte(doc)); !errors.IsConfiguration(err) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestLoadTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	doc := "thresholds:\n  co2:\n    min: 0\n    max: 1000\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	c := NewClassifier(table)
	if got := c.Classify("kitchen", "co2", 1200); got != "co2 should be lower" {
		t.Fatalf("unexpected tip %q", got)
	}
	if got := c.Classify("kitchen", "humidity", 50); got != NA {
		t.Fatalf("replaced table must not keep defaults, got %q", got)
	}

	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml")); !errors.IsConfiguration(err) {
		t.Fatalf("expected configuration error for missing file, got %v", err)
	}
	if table, err := LoadTable(""); err != nil || len(table) != 4 {
		t.Fatalf("empty path must return the built-in table")
	}
}

func TestEvaluateOutcomes(t *testing.T) {
	c := NewClassifier(DefaultTable())
	cases := []struct {
		room, data string
		value      float64
		want       Outcome
	}{
		{"kitchen", "humidity", 60, OutcomeHigh},
		{"kitchen", "humidity", 40, OutcomeLow},
		{"kitchen", "humidity", 50, OutcomeInRange},
		{"kitchen", "co2", 50, OutcomeNA},
		{"outside", "rainfall", 0.6, OutcomeRainfallOutside},
		{"outside", "temperature", 30, OutcomeTemperatureOutside},
		{"outside", "humidity", 90, OutcomeHigh},
	}
	for _, tc := range cases {
		v := c.Evaluate(tc.room, tc.data, tc.value)
		if v.Outcome != tc.want {
			t.Fatalf("%s/%s %v: expected %s, got %s", tc.room, tc.data, tc.value, tc.want, v.Outcome)
		}
		if v.Message != c.Classify(tc.room, tc.data, tc.value) {
			t.Fatalf("Evaluate and Classify disagree for %s/%s", tc.room, tc.data)
		}
	}
}
