package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/awakened-intelligence/catalog-inspector/internal/catalog"
)

// #region styles
type styleFunc func(strs ...string) string

func plain(strs ...string) string { return strings.Join(strs, " ") }

type palette struct {
	title  styleFunc
	label  styleFunc
	key    styleFunc
	notice styleFunc
}

// newPalette binds styles to out so colour is only emitted when out is a
// colour-capable terminal.
func newPalette(out io.Writer, color bool) palette {
	if !color {
		return palette{title: plain, label: plain, key: plain, notice: plain}
	}
	r := lipgloss.NewRenderer(out)
	return palette{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Render,
		label:  r.NewStyle().Bold(true).Render,
		key:    r.NewStyle().Foreground(lipgloss.Color("86")).Render,
		notice: r.NewStyle().Foreground(lipgloss.Color("203")).Render,
	}
}

// #endregion styles

// #region printer
// printer remembers the first write error so render methods can write freely
// and report once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

// #endregion printer

// #region renderer
// Renderer produces all console text on a single writer.
type Renderer struct {
	out   io.Writer
	tw    *Typewriter
	style palette
}

// NewRenderer returns a Renderer writing to out.
func NewRenderer(out io.Writer, tw *Typewriter, color bool) *Renderer {
	if tw == nil {
		tw = NewTypewriter(0)
	}
	return &Renderer{out: out, tw: tw, style: newPalette(out, color)}
}

func (r *Renderer) printer() *printer { return &printer{w: r.out} }

var (
	rule      = strings.Repeat("=", 60)
	thinRule  = strings.Repeat("-", 60)
	boxRule   = strings.Repeat("─", 60)
	legendFmt = "  [domain] - Inspect a domain (e.g., %s)\n"
)

// Header prints the banner shown once per session.
func (r *Renderer) Header() error {
	p := r.printer()
	p.printf("\n%s\n", rule)
	p.println(r.style.title("🦁 AWAKENED DATA CATALOG | INSPECTOR v1.0"))
	p.println(rule)
	p.println("\nCathedral-grade wisdom nodes for high-reasoning AI.")
	p.println("300,000+ nodes | Multi-lens extraction | Full provenance")
	p.println(thinRule)
	return p.err
}

// Menu prints every domain followed by the command legend.
func (r *Renderer) Menu(entries []catalog.Entry) error {
	p := r.printer()
	p.println("\n" + r.style.label("📚 AVAILABLE DOMAINS:") + "\n")
	for _, e := range entries {
		rec := e.Record
		p.printf("  %s %s\n", r.style.key("["+e.Key+"]"), rec.Name)
		p.printf("       %s nodes | %s | Avg posterior: %s\n",
			humanize.Comma(rec.Count), rec.Tier, formatScore(rec.AvgPosterior))
		p.println("")
	}
	p.println(r.style.label("COMMANDS:"))
	p.printf(legendFmt, legendExamples(entries))
	p.printf("  [%s]      - View schema documentation\n", SchemaToken)
	p.printf("  [%s]      - View licensing info\n", LicensingToken)
	p.printf("  [%s]      - Quit\n", QuitToken)
	return p.err
}

// Prompt prints the input prompt without a trailing newline.
func (r *Renderer) Prompt() error {
	p := r.printer()
	p.printf("\n> ")
	return p.err
}

// Detail prints statistics and the sample node for one domain.
func (r *Renderer) Detail(rec catalog.DomainRecord) error {
	p := r.printer()
	p.printf("\n%s\n", boxRule)
	p.println(r.style.title("📖 " + rec.Name))
	p.println(boxRule)

	p.println("\n" + r.style.label("📊 STATISTICS:"))
	p.printf("   Volume:         %s nodes\n", humanize.Comma(rec.Count))
	p.printf("   Source:         %s\n", rec.Source)
	p.printf("   Quality Tier:   %s\n", rec.Tier)
	p.printf("   Avg Posterior:  %s\n", formatScore(rec.AvgPosterior))

	node := rec.SampleNode
	p.println("\n" + r.style.label("🔬 SAMPLE NODE:"))
	p.printf("   Posterior: %s | Warmth: %s\n", formatScore(node.Posterior), node.Warmth)
	p.println("")
	p.println("   Core Insight:")
	if p.err != nil {
		return p.err
	}
	if err := r.tw.Type(r.out, "   \""+node.CoreInsight+"\""); err != nil {
		return err
	}

	p.println("\n   Evidence:")
	for i, ev := range node.Evidence {
		p.printf("   %d. %s\n", i+1, ev)
	}
	p.printf("\n%s\n", boxRule)
	return p.err
}

// Schema prints the node schema documentation.
func (r *Renderer) Schema() error {
	p := r.printer()
	p.printf("\n%s\n", rule)
	p.println(r.style.title("📋 AWAKENED DATA STANDARD (ADS) SCHEMA"))
	p.println(rule)

	data, err := json.MarshalIndent(schemaExample, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema example: %w", err)
	}
	p.println("\nEvery node contains:")
	p.println(string(data))
	p.println("")
	p.println(r.style.label("KEY FIELDS:"))
	for _, f := range schemaFields {
		p.printf("  - %s: %s\n", f.name, f.desc)
	}
	p.println(rule)
	return p.err
}

// Licensing prints licensing and contact information.
func (r *Renderer) Licensing() error {
	p := r.printer()
	p.printf("\n%s\n", rule)
	p.println(r.style.title("🔑 LICENSING & ACCESS"))
	p.println(rule)
	p.printf("%s", licensingText)
	p.println(rule)
	return p.err
}

// Farewell prints the goodbye message.
func (r *Renderer) Farewell() error {
	p := r.printer()
	p.println("\n🦁 Thank you for exploring the Awakened Data Catalog.")
	p.println("   Contact us when you're ready to level up your training data.\n")
	return p.err
}

// Unknown reports an input that matched no command or domain.
func (r *Renderer) Unknown(input string) error {
	p := r.printer()
	// Only the fixed prefix is styled; input is echoed byte for byte.
	p.printf("\n%s '%s'. Try a domain name or '%s', '%s', '%s'.\n\n",
		r.style.notice("⚠️  Unknown command:"), input, SchemaToken, LicensingToken, QuitToken)
	return p.err
}

// #endregion renderer

// #region helpers
// formatScore prints a score with the shortest exact representation (0.85, 0.9, 1).
func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func legendExamples(entries []catalog.Entry) string {
	if len(entries) == 0 {
		return "none loaded"
	}
	n := min(len(entries), 2)
	quoted := make([]string, n)
	for i := range n {
		quoted[i] = "'" + entries[i].Key + "'"
	}
	return strings.Join(quoted, ", ")
}

// #endregion helpers
