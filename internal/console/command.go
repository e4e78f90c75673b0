package console

import (
	"fmt"
	"strings"

	"github.com/awakened-intelligence/catalog-inspector/internal/catalog"
)

// #region tokens
const (
	QuitToken      = "q"
	SchemaToken    = "s"
	LicensingToken = "l"
)

// #endregion tokens

// #region catalog-port
// Catalog is the read-only view of the catalog the console needs.
type Catalog interface {
	ListAll() []catalog.Entry
	Lookup(key string) (catalog.DomainRecord, bool)
}

// #endregion catalog-port

// #region command-kind
// Kind classifies a normalized input line.
type Kind int

const (
	KindUnknown Kind = iota
	KindQuit
	KindSchema
	KindLicensing
	KindDetail
)

var kindNames = map[Kind]string{
	KindUnknown:   "unknown",
	KindQuit:      "quit",
	KindSchema:    "schema",
	KindLicensing: "licensing",
	KindDetail:    "detail",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown command kind %q", s)
}

// #endregion command-kind

// #region resolve
// Command is the outcome of resolving one input line.
type Command struct {
	Kind   Kind
	Input  string                // normalized input
	Record *catalog.DomainRecord // set only for KindDetail
}

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Resolve classifies a raw input line. It is total: every input yields exactly
// one Kind. Command tokens take precedence over catalog keys.
func Resolve(cat Catalog, raw string) Command {
	in := Normalize(raw)
	switch in {
	case QuitToken:
		return Command{Kind: KindQuit, Input: in}
	case SchemaToken:
		return Command{Kind: KindSchema, Input: in}
	case LicensingToken:
		return Command{Kind: KindLicensing, Input: in}
	}
	if rec, ok := cat.Lookup(in); ok {
		return Command{Kind: KindDetail, Input: in, Record: &rec}
	}
	return Command{Kind: KindUnknown, Input: in}
}

// #endregion resolve
