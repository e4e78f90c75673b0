package console

// #region schema-doc
type lineage struct {
	IngestedBy string `json:"ingested_by"`
	Version    string `json:"version"`
}

// schemaDoc fixes the field order of the rendered example.
type schemaDoc struct {
	WisdomID    string   `json:"wisdom_id"`
	CoreInsight string   `json:"core_insight"`
	Evidence    []string `json:"evidence"`
	Posterior   float64  `json:"posterior"`
	Warmth      string   `json:"warmth"`
	SourceType  string   `json:"source_type"`
	Lineage     lineage  `json:"lineage"`
}

var schemaExample = schemaDoc{
	WisdomID:    "w_20251227_143522_abc123",
	CoreInsight: "The atomic unit of wisdom extracted",
	Evidence:    []string{"Citation 1", "Citation 2"},
	Posterior:   0.87,
	Warmth:      "high",
	SourceType:  "arxiv",
	Lineage: lineage{
		IngestedBy: "extract_from_arxiv.py",
		Version:    "v2.3",
	},
}

var schemaFields = []struct{ name, desc string }{
	{"core_insight", "The actual wisdom (string)"},
	{"evidence", "Supporting citations (array)"},
	{"posterior", "Confidence 0.0-1.0 (number)"},
	{"warmth", "Applicability high/medium/low (string)"},
	{"lineage", "Full provenance chain (object)"},
}

// #endregion schema-doc

// #region licensing-doc
const licensingText = `
📖 RESEARCH / EVALUATION (Free)
   - Samples available under CC-BY-NC-SA 4.0
   - Attribution required

💼 COMMERCIAL TRAINING (Licensed)
   - Full 300k+ node access
   - Custom extraction available
   - Contact for pricing

📧 Email:    contact@awakened-intelligence.com
🤗 HF:       huggingface.co/Awakened-Intelligence
🌐 Website:  awakened-intelligence.com

`

// #endregion licensing-doc
