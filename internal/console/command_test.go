package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awakened-intelligence/catalog-inspector/internal/catalog"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"physics":      "physics",
		"  PHYSICS ":   "physics",
		"\tQ\n":        "q",
		"":             "",
		"Mixed Case  ": "mixed case",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestResolve_Kinds(t *testing.T) {
	cat := catalog.Builtin()
	cases := []struct {
		input string
		kind  Kind
	}{
		{"q", KindQuit},
		{" Q ", KindQuit},
		{"s", KindSchema},
		{"S", KindSchema},
		{"l", KindLicensing},
		{"physics", KindDetail},
		{"  PHYSICS ", KindDetail},
		{"ethics", KindDetail},
		{"zzz", KindUnknown},
		{"", KindUnknown},
		{"quit", KindUnknown},
		{"phys", KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			cmd := Resolve(cat, tc.input)
			assert.Equal(t, tc.kind, cmd.Kind)
			assert.Equal(t, Normalize(tc.input), cmd.Input)
			if tc.kind == KindDetail {
				require.NotNil(t, cmd.Record)
				assert.Equal(t, cmd.Input, cmd.Record.Key)
			} else {
				assert.Nil(t, cmd.Record)
			}
		})
	}
}

func TestResolve_TokensWinOverKeys(t *testing.T) {
	rec := catalog.Builtin().ListAll()[0].Record
	rec.Key = "s"
	cat, err := catalog.New(rec)
	require.NoError(t, err)

	assert.Equal(t, KindSchema, Resolve(cat, "s").Kind)
}

func TestResolve_Total(t *testing.T) {
	cat := catalog.Builtin()
	inputs := []string{"q", "s", "l", "math", "MATH", "nope", " ", "ß", "q q", "💎"}
	for _, in := range inputs {
		cmd := Resolve(cat, in)
		_, named := kindNames[cmd.Kind]
		assert.True(t, named, "input %q resolved to unnamed kind %v", in, cmd.Kind)
	}
}

func TestKindRoundTrip(t *testing.T) {
	for k, name := range kindNames {
		got, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.Equal(t, name, k.String())
	}
	_, err := ParseKind("bogus")
	assert.Error(t, err)
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
