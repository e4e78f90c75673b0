package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// #region helpers
func sampleRecord(key string) DomainRecord {
	return DomainRecord{
		Key:          key,
		Name:         "Sample " + key,
		Source:       "unit test",
		Count:        42,
		AvgPosterior: 0.5,
		Tier:         TierSilk,
		SampleNode: WisdomNode{
			CoreInsight: "insight for " + key,
			Evidence:    []string{"first", "second"},
			Posterior:   0.6,
			Warmth:      WarmthLow,
		},
	}
}

// #endregion helpers

// #region builtin-tests
func TestBuiltin_DefinitionOrder(t *testing.T) {
	c := Builtin()
	want := []string{"physics", "neurips", "finance", "ethics", "math"}
	if diff := cmp.Diff(want, c.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != len(want) {
		t.Fatalf("expected %d domains, got %d", len(want), c.Len())
	}
}

func TestBuiltin_RecordRanges(t *testing.T) {
	for _, e := range Builtin().ListAll() {
		r := e.Record
		if e.Key != r.Key {
			t.Errorf("entry key %q does not match record key %q", e.Key, r.Key)
		}
		if r.Count < 0 {
			t.Errorf("%s: negative count %d", r.Key, r.Count)
		}
		if r.AvgPosterior < 0 || r.AvgPosterior > 1 {
			t.Errorf("%s: avg_posterior %v out of range", r.Key, r.AvgPosterior)
		}
		if p := r.SampleNode.Posterior; p < 0 || p > 1 {
			t.Errorf("%s: posterior %v out of range", r.Key, p)
		}
		if !r.SampleNode.Warmth.Valid() {
			t.Errorf("%s: unexpected warmth %q", r.Key, r.SampleNode.Warmth)
		}
		if len(r.SampleNode.Evidence) == 0 {
			t.Errorf("%s: sample node has no evidence", r.Key)
		}
	}
}

func TestBuiltin_Physics(t *testing.T) {
	rec, ok := Builtin().Lookup("physics")
	if !ok {
		t.Fatal("expected physics to be present")
	}
	if rec.Name != "Experimental Physics (C7)" {
		t.Errorf("unexpected name %q", rec.Name)
	}
	if rec.Count != 17673 {
		t.Errorf("unexpected count %d", rec.Count)
	}
	if rec.Tier != TierSteel {
		t.Errorf("unexpected tier %q", rec.Tier)
	}
	if rec.SampleNode.Evidence[0] != "Measured scattering length variation of ±50% near resonance" {
		t.Errorf("unexpected first evidence %q", rec.SampleNode.Evidence[0])
	}
}

// #endregion builtin-tests

// #region query-tests
func TestListAll_Idempotent(t *testing.T) {
	c := Builtin()
	first := c.ListAll()
	second := c.ListAll()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("ListAll not deterministic (-first +second):\n%s", diff)
	}
	seen := make(map[string]int)
	for _, e := range first {
		seen[e.Key]++
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("key %q listed %d times", k, n)
		}
	}
}

func TestLookup_EveryKey(t *testing.T) {
	c := Builtin()
	for _, e := range c.ListAll() {
		got, ok := c.Lookup(strings.ToLower(strings.TrimSpace(e.Key)))
		if !ok {
			t.Fatalf("Lookup(%q) not found", e.Key)
		}
		if diff := cmp.Diff(e.Record, got); diff != "" {
			t.Errorf("Lookup(%q) mismatch (-want +got):\n%s", e.Key, diff)
		}
	}
}

func TestLookup_NotFound(t *testing.T) {
	c := Builtin()
	for _, key := range []string{"", "zzz", "PHYSICS", " physics", "phys"} {
		if _, ok := c.Lookup(key); ok {
			t.Errorf("Lookup(%q) should not match", key)
		}
	}
}

func TestReturnedValuesAreCopies(t *testing.T) {
	c := Builtin()
	rec, _ := c.Lookup("math")
	rec.SampleNode.Evidence[0] = "tampered"
	rec.Name = "tampered"

	entries := c.ListAll()
	entries[0].Record.SampleNode.Evidence[1] = "tampered"

	again, _ := c.Lookup("math")
	if again.Name == "tampered" || again.SampleNode.Evidence[0] == "tampered" {
		t.Fatal("Lookup result aliased catalog storage")
	}
	physics, _ := c.Lookup("physics")
	if physics.SampleNode.Evidence[1] == "tampered" {
		t.Fatal("ListAll result aliased catalog storage")
	}
}

// #endregion query-tests

// #region constructor-tests
func TestNew_CopiesInput(t *testing.T) {
	rec := sampleRecord("alpha")
	c, err := New(rec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec.SampleNode.Evidence[0] = "changed"
	got, _ := c.Lookup("alpha")
	if got.SampleNode.Evidence[0] != "first" {
		t.Fatalf("catalog shares evidence slice with caller: %q", got.SampleNode.Evidence[0])
	}
}

func TestNew_Empty(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() != 0 || len(c.ListAll()) != 0 {
		t.Fatal("expected empty catalog")
	}
}

func TestNew_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*DomainRecord)
	}{
		{"empty key", func(r *DomainRecord) { r.Key = "" }},
		{"uppercase key", func(r *DomainRecord) { r.Key = "Alpha" }},
		{"padded key", func(r *DomainRecord) { r.Key = " alpha" }},
		{"empty name", func(r *DomainRecord) { r.Name = "" }},
		{"negative count", func(r *DomainRecord) { r.Count = -1 }},
		{"avg posterior above one", func(r *DomainRecord) { r.AvgPosterior = 1.01 }},
		{"avg posterior below zero", func(r *DomainRecord) { r.AvgPosterior = -0.1 }},
		{"node posterior above one", func(r *DomainRecord) { r.SampleNode.Posterior = 2 }},
		{"unknown warmth", func(r *DomainRecord) { r.SampleNode.Warmth = "tepid" }},
		{"uppercase warmth", func(r *DomainRecord) { r.SampleNode.Warmth = "HIGH" }},
		{"missing warmth", func(r *DomainRecord) { r.SampleNode.Warmth = "" }},
		{"no evidence", func(r *DomainRecord) { r.SampleNode.Evidence = nil }},
		{"blank evidence item", func(r *DomainRecord) { r.SampleNode.Evidence = []string{"ok", ""} }},
		{"empty insight", func(r *DomainRecord) { r.SampleNode.CoreInsight = "" }},
		{"missing tier", func(r *DomainRecord) { r.Tier = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := sampleRecord("alpha")
			tc.mutate(&rec)
			_, err := New(rec)
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
}

func TestNew_DuplicateKey(t *testing.T) {
	_, err := New(sampleRecord("alpha"), sampleRecord("alpha"))
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord for duplicate key, got %v", err)
	}
}

func TestNew_BoundaryPosteriors(t *testing.T) {
	lo := sampleRecord("lo")
	lo.AvgPosterior, lo.SampleNode.Posterior, lo.Count = 0, 0, 0
	hi := sampleRecord("hi")
	hi.AvgPosterior, hi.SampleNode.Posterior = 1, 1
	if _, err := New(lo, hi); err != nil {
		t.Fatalf("boundary values should be accepted: %v", err)
	}
}

// #endregion constructor-tests

// #region type-tests
func TestWarmthValid(t *testing.T) {
	for _, w := range []Warmth{WarmthHigh, WarmthMedium, WarmthLow} {
		if !w.Valid() {
			t.Errorf("%q should be valid", w)
		}
	}
	for _, w := range []Warmth{"", "HIGH", "warm"} {
		if w.Valid() {
			t.Errorf("%q should be invalid", w)
		}
	}
}

// #endregion type-tests
