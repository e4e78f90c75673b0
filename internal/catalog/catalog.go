package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord wraps every validation failure reported by New.
var ErrInvalidRecord = errors.New("invalid domain record")

var validate = newValidator()

// newValidator registers the "warmth" tag backed by Warmth.Valid.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("warmth", func(fl validator.FieldLevel) bool {
		w, ok := fl.Field().Interface().(Warmth)
		return ok && w.Valid()
	})
	return v
}

// #region catalog-struct
// Catalog is an immutable, ordered mapping from domain key to DomainRecord.
// It is built once by New and exposes no mutation; values handed out are copies.
type Catalog struct {
	records []DomainRecord
	index   map[string]int
}

// #endregion catalog-struct

// #region constructor
// New validates records and builds a Catalog preserving their order.
// Keys must be unique, lowercase and free of surrounding whitespace, because
// callers normalize input that way before Lookup.
func New(records ...DomainRecord) (*Catalog, error) {
	c := &Catalog{
		records: make([]DomainRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d (%q): %v", ErrInvalidRecord, i, rec.Key, err)
		}
		if strings.TrimSpace(rec.Key) != rec.Key {
			return nil, fmt.Errorf("%w: record %d: key %q has surrounding whitespace", ErrInvalidRecord, i, rec.Key)
		}
		if _, dup := c.index[rec.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidRecord, rec.Key)
		}
		c.index[rec.Key] = len(c.records)
		c.records = append(c.records, rec.clone())
	}
	return c, nil
}

// #endregion constructor

// #region queries
// ListAll returns every record exactly once, in definition order.
func (c *Catalog) ListAll() []Entry {
	out := make([]Entry, len(c.records))
	for i, rec := range c.records {
		out[i] = Entry{Key: rec.Key, Record: rec.clone()}
	}
	return out
}

// Lookup returns the record stored under key. The match is exact.
func (c *Catalog) Lookup(key string) (DomainRecord, bool) {
	i, ok := c.index[key]
	if !ok {
		return DomainRecord{}, false
	}
	return c.records[i].clone(), true
}

// Keys returns the catalog keys in definition order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.records))
	for i, rec := range c.records {
		keys[i] = rec.Key
	}
	return keys
}

// Len returns the number of domains.
func (c *Catalog) Len() int {
	return len(c.records)
}

// #endregion queries
