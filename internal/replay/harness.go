package replay

import (
	"fmt"
	"io"

	"github.com/awakened-intelligence/catalog-inspector/internal/console"
)

// #region types
// Result captures how one scripted input was dispatched.
type Result struct {
	Step  int
	Input string // normalized
	Kind  console.Kind
	Key   string // domain key for detail commands
}

// Summary provides aggregate counts from a replay run.
type Summary struct {
	TotalSteps int
	Details    int
	Schema     int
	Licensing  int
	Unknown    int
	Quit       bool
	Skipped    int // inputs after quit that were never dispatched
}

// Mismatch is a step whose outcome differs from the fixture's expectation.
type Mismatch struct {
	Step     int
	Input    string
	Expected string
	Actual   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("step %d (%q): expected %s, got %s", m.Step, m.Input, m.Expected, m.Actual)
}

// #endregion types

// #region replay
// Replay feeds inputs through a console session writing to out (io.Discard
// when nil) with no typing delay. It stops at the first quit; later inputs are
// not dispatched.
func Replay(cat console.Catalog, inputs []string, out io.Writer) ([]Result, error) {
	if out == nil {
		out = io.Discard
	}
	sess := console.NewSession(cat, out, console.WithTypingDelay(0), console.WithColor(false))
	results := make([]Result, 0, len(inputs))

	for i, in := range inputs {
		cmd, err := sess.Step(in)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i, err)
		}
		r := Result{Step: i, Input: cmd.Input, Kind: cmd.Kind}
		if cmd.Record != nil {
			r.Key = cmd.Record.Key
		}
		results = append(results, r)
		if sess.State() == console.StateTerminated {
			break
		}
	}
	return results, nil
}

// Summarize computes aggregate counts from replay results.
func Summarize(results []Result, totalInputs int) Summary {
	s := Summary{TotalSteps: len(results), Skipped: totalInputs - len(results)}
	for _, r := range results {
		switch r.Kind {
		case console.KindDetail:
			s.Details++
		case console.KindSchema:
			s.Schema++
		case console.KindLicensing:
			s.Licensing++
		case console.KindUnknown:
			s.Unknown++
		case console.KindQuit:
			s.Quit = true
		}
	}
	return s
}

// Compare checks results against the fixture steps. Steps with an empty
// expectation are not checked; steps never reached report NotReached.
func Compare(results []Result, steps []FixtureStep) []Mismatch {
	var out []Mismatch
	for i, st := range steps {
		if st.Expect == "" {
			continue
		}
		actual := NotReached
		if i < len(results) {
			actual = results[i].Kind.String()
		}
		if actual != st.Expect {
			out = append(out, Mismatch{Step: i, Input: st.Input, Expected: st.Expect, Actual: actual})
		}
	}
	return out
}

// #endregion replay
