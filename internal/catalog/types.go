package catalog

// #region warmth
// Warmth is the categorical applicability label attached to a wisdom node.
type Warmth string

const (
	WarmthHigh   Warmth = "high"
	WarmthMedium Warmth = "medium"
	WarmthLow    Warmth = "low"
)

// Valid reports whether w is one of high, medium or low.
func (w Warmth) Valid() bool {
	switch w {
	case WarmthHigh, WarmthMedium, WarmthLow:
		return true
	}
	return false
}

// #endregion warmth

// #region tier
// Tier is a descriptive quality label. Labels carry a glyph prefix for display;
// no ordering between tiers is enforced.
type Tier string

const (
	TierSilk    Tier = "🧵 Silk"
	TierSteel   Tier = "🛡️ Steel"
	TierDiamond Tier = "💎 Diamond"
)

// #endregion tier

// #region wisdom-node
// WisdomNode is a single extracted insight with its supporting citations.
type WisdomNode struct {
	CoreInsight string   `json:"core_insight" validate:"required"`
	Evidence    []string `json:"evidence" validate:"min=1,dive,required"` // display order, numbered 1..n
	Posterior   float64  `json:"posterior" validate:"gte=0,lte=1"`
	Warmth      Warmth   `json:"warmth" validate:"warmth"`
}

// #endregion wisdom-node

// #region domain-record
// DomainRecord is one entry in the catalog: a subject area with its stats and
// one embedded sample node.
type DomainRecord struct {
	Key          string     `json:"key" validate:"required,lowercase"`
	Name         string     `json:"name" validate:"required"`
	Source       string     `json:"source"`
	Count        int64      `json:"count" validate:"gte=0"`
	AvgPosterior float64    `json:"avg_posterior" validate:"gte=0,lte=1"`
	Tier         Tier       `json:"tier" validate:"required"`
	SampleNode   WisdomNode `json:"sample_node"`
}

// clone returns a copy that shares no slices with r.
func (r DomainRecord) clone() DomainRecord {
	out := r
	if r.SampleNode.Evidence != nil {
		out.SampleNode.Evidence = append([]string(nil), r.SampleNode.Evidence...)
	}
	return out
}

// #endregion domain-record

// #region entry
// Entry pairs a catalog key with its record, as returned by ListAll.
type Entry struct {
	Key    string
	Record DomainRecord
}

// #endregion entry
