package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/awakened-intelligence/catalog-inspector/internal/console"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a session replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Steps       []FixtureStep `json:"steps"`
}

// FixtureStep is one scripted input and the command kind it must resolve to.
type FixtureStep struct {
	Input  string `json:"input"`
	Expect string `json:"expect"` // quit | schema | licensing | detail | unknown | not reached
}

// NotReached is the expectation for inputs that follow a quit.
const NotReached = "not reached"

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file. Expected kinds are checked
// at load time so a typo fails fast instead of showing up as a mismatch.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	for i, st := range f.Steps {
		if st.Expect == "" || st.Expect == NotReached {
			continue
		}
		if _, err := console.ParseKind(st.Expect); err != nil {
			return nil, fmt.Errorf("fixture %s step %d: %w", path, i, err)
		}
	}
	return &f, nil
}

// Inputs returns the raw input lines in order.
func (f *Fixture) Inputs() []string {
	out := make([]string, len(f.Steps))
	for i, st := range f.Steps {
		out[i] = st.Input
	}
	return out
}

// #endregion fixture-loader
