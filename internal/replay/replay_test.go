package replay

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/awakened-intelligence/catalog-inspector/internal/catalog"
	"github.com/awakened-intelligence/catalog-inspector/internal/console"
)

// #region fixture-tests

// TestFixture_Session replays the scripted tour and checks every step's kind,
// including that nothing after quit is dispatched.
func TestFixture_Session(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "session.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	results, err := Replay(catalog.Builtin(), f.Inputs(), nil)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(results) != len(f.Steps)-1 {
		t.Fatalf("expected %d dispatched steps, got %d", len(f.Steps)-1, len(results))
	}
	if mm := Compare(results, f.Steps); len(mm) != 0 {
		for _, m := range mm {
			t.Error(m)
		}
	}

	if results[1].Key != "physics" {
		t.Errorf("expected padded input to resolve to physics, got %q", results[1].Key)
	}
	if results[1].Input != "physics" {
		t.Errorf("expected normalized input, got %q", results[1].Input)
	}
}

func TestLoadFixture_BadKind(t *testing.T) {
	if _, err := LoadFixture(filepath.Join("testdata", "bad_kind.json")); err == nil {
		t.Fatal("expected error for unknown expected kind")
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := LoadFixture(filepath.Join("testdata", "missing.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

// #endregion fixture-tests

// #region harness-tests
func TestReplay_WritesOutput(t *testing.T) {
	var out bytes.Buffer
	_, err := Replay(catalog.Builtin(), []string{"ethics", "q"}, &out)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("Philosophy & Ethics")) {
		t.Error("expected detail output for ethics")
	}
	if !bytes.Contains(out.Bytes(), []byte("Thank you for exploring")) {
		t.Error("expected farewell output")
	}
}

func TestSummarize(t *testing.T) {
	inputs := []string{"physics", "s", "l", "nope", "q", "math"}
	results, err := Replay(catalog.Builtin(), inputs, nil)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	s := Summarize(results, len(inputs))
	want := Summary{TotalSteps: 5, Details: 1, Schema: 1, Licensing: 1, Unknown: 1, Quit: true, Skipped: 1}
	if s != want {
		t.Fatalf("expected %+v, got %+v", want, s)
	}
}

func TestSummarize_NoQuit(t *testing.T) {
	results, err := Replay(catalog.Builtin(), []string{"zzz"}, nil)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	s := Summarize(results, 1)
	if s.Quit || s.Unknown != 1 || s.Skipped != 0 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestCompare_Mismatches(t *testing.T) {
	results := []Result{
		{Step: 0, Input: "physics", Kind: console.KindDetail, Key: "physics"},
		{Step: 1, Input: "q", Kind: console.KindQuit},
	}
	steps := []FixtureStep{
		{Input: "physics", Expect: "unknown"},
		{Input: "q", Expect: ""},
		{Input: "s", Expect: "schema"},
	}
	mm := Compare(results, steps)
	if len(mm) != 2 {
		t.Fatalf("expected 2 mismatches, got %d: %v", len(mm), mm)
	}
	if mm[0].Actual != "detail" || mm[1].Actual != NotReached {
		t.Errorf("unexpected mismatches %v", mm)
	}
	if mm[0].String() != `step 0 ("physics"): expected unknown, got detail` {
		t.Errorf("unexpected format %q", mm[0].String())
	}
}

// #endregion harness-tests
