// Package generator turns a Figma document graph into front-end source
// artifacts: markup fragments, stylesheets in several dialects, TypeScript
// prop interfaces, and heuristic quality metadata. The entry point is
// Generate, which walks the document for generation roots and assembles one
// GeneratedComponent per root.
package generator

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/cockroachdb/errors"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Target frameworks for generated markup.
const (
	FrameworkReact = "react"
	FrameworkVue   = "vue"
	FrameworkHTML  = "html"
)

// Styling dialects for generated stylesheets.
const (
	DialectUtility = "utility-class"
	DialectScoped  = "scoped-css"
	DialectCSSInJS = "css-in-js"
	DialectPlain   = "plain-css"
)

// defaultComponentName is used when a node name sanitizes to nothing.
// It is also the prefix inserted when a sanitized name starts with a digit.
const defaultComponentName = "Component"

// CustomCode carries caller-supplied raw code fragments merged into the
// generated output. Markup is appended inside the component body; CSS and
// AdvancedCSS are appended to the emitted stylesheet in that order. When
// OverrideCSS is set it replaces the generated stylesheet entirely,
// including the CSS/AdvancedCSS fragments. That precedence mirrors the
// behavior this generator was modeled on; it is surprising enough that it
// probably warrants a product decision before changing.
type CustomCode struct {
	Markup      string
	CSS         string
	AdvancedCSS string
	OverrideCSS string
}

// Config controls one generation run. The zero value is not useful;
// start from DefaultConfig.
type Config struct {
	Framework     string
	Styling       string
	TypeScript    bool
	Accessibility bool
	Responsive    bool

	// OptimizeImages adds deferred-loading hints to rendered image tags
	// and enables asset export in the surrounding pipeline.
	OptimizeImages bool

	// AltTexts maps node IDs to caller-supplied alt text. Image nodes
	// without an entry produce a missing-alt accessibility issue.
	AltTexts map[string]string

	Custom CustomCode
}

// DefaultConfig returns the configuration used when callers do not care:
// React with utility classes, TypeScript on, all analyses enabled.
func DefaultConfig() Config {
	return Config{
		Framework:     FrameworkReact,
		Styling:       DialectUtility,
		TypeScript:    true,
		Accessibility: true,
		Responsive:    true,
	}
}

// Issue is a single accessibility finding.
type Issue struct {
	Type    string `json:"type"` // "error" or "warning"
	Message string `json:"message"`
}

// AccessibilityReport holds the heuristic accessibility outcome for one component.
type AccessibilityReport struct {
	Score       int      `json:"score"` // 0-100
	WCAGLevel   string   `json:"wcagLevel"`
	Issues      []Issue  `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// ResponsiveReport flags whether the source node carries responsive layout hints.
type ResponsiveReport struct {
	HasResponsiveDesign bool `json:"hasResponsiveDesign"`
}

// Metadata describes derived facts about a generated component.
type Metadata struct {
	ComponentType     string   `json:"componentType"`
	Complexity        string   `json:"complexity"`
	EstimatedAccuracy int      `json:"estimatedAccuracy"` // 70-100
	GenerationTimeMs  int64    `json:"generationTimeMs"`
	Dependencies      []string `json:"dependencies"`
}

// GeneratedComponent is the output record for one generation root.
type GeneratedComponent struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Markup          string              `json:"markup"`
	StyleText       string              `json:"styleText"`
	TypeDeclaration string              `json:"typeDeclaration,omitempty"`
	Accessibility   AccessibilityReport `json:"accessibility"`
	Responsive      ResponsiveReport    `json:"responsive"`
	Metadata        Metadata            `json:"metadata"`
}

// Failure reports a generation root that could not be processed.
type Failure struct {
	NodeID string `json:"nodeId"`
	Reason string `json:"reason"`
}

// Result is the outcome of one generation run: the successfully generated
// components plus a parallel list of per-root failures. An empty component
// list with a non-empty failure list is a valid terminal outcome.
type Result struct {
	Components []GeneratedComponent `json:"components"`
	Failures   []Failure            `json:"failures"`
}

// Generator assembles components from design nodes. Its memoization caches
// are scoped to one Generate call; a Generator must not be reused across
// requests.
type Generator struct {
	cfg        Config
	fragments  map[string]string              // nodeID|dialect -> markup fragment
	components map[string]*GeneratedComponent // nodeID -> finished component
}

// New returns a Generator for one generation request.
func New(cfg Config) *Generator {
	if cfg.Framework == "" {
		cfg.Framework = FrameworkReact
	}
	if cfg.Styling == "" {
		cfg.Styling = DialectUtility
	}
	return &Generator{
		cfg:        cfg,
		fragments:  make(map[string]string),
		components: make(map[string]*GeneratedComponent),
	}
}

// Generate runs the full pipeline over a file response: the walker selects
// generation roots from the named-components table (falling back to frame
// scanning), and the assembler produces one GeneratedComponent per root.
func Generate(file *figma.FileResponse, cfg Config) *Result {
	g := New(cfg)
	return g.Generate(&file.Document, file.Components)
}

// Generate selects generation roots under doc and assembles a component for
// each. Failure in any single root never aborts the batch; failed roots are
// reported in Result.Failures by node ID.
func (g *Generator) Generate(doc *figma.Node, components map[string]figma.Component) *Result {
	result := &Result{}

	for _, root := range g.selectRoots(doc, components) {
		comp, err := g.assemble(root)
		if err != nil {
			result.Failures = append(result.Failures, Failure{
				NodeID: root.ID,
				Reason: err.Error(),
			})
			continue
		}
		result.Components = append(result.Components, *comp)
	}

	return result
}

// selectRoots picks the generation roots: every entry of the named-components
// table that resolves to a node (in sorted-ID order so runs are
// deterministic), or, when the table yields nothing, every frame in the tree
// that has at least one child.
func (g *Generator) selectRoots(doc *figma.Node, components map[string]figma.Component) []*figma.Node {
	var roots []*figma.Node

	ids := make([]string, 0, len(components))
	for id := range components {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if node := doc.FindByID(id); node != nil {
			roots = append(roots, node)
		}
	}
	if len(roots) > 0 {
		return roots
	}

	// Fallback: full pre-order scan for frames with children.
	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		if n.Type == figma.NodeFrame && !n.IsLeaf() {
			roots = append(roots, n)
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(doc)

	return roots
}

// assemble produces the GeneratedComponent for one root, isolating any
// failure to this root. Repeated IDs within a run return the memoized
// component rather than regenerating.
func (g *Generator) assemble(root *figma.Node) (comp *GeneratedComponent, err error) {
	if root == nil {
		return nil, errors.New("invalid node: nil")
	}
	if root.ID == "" {
		return nil, errors.Newf("invalid node %q: missing id", root.Name)
	}
	if cached, ok := g.components[root.ID]; ok {
		return cached, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("synthesis failed for node %s (%s): %v", root.ID, root.Name, r)
		}
	}()

	start := time.Now()
	name := SanitizeName(root.Name)
	style := ExtractStyle(root)

	markup := g.synthesizeComponent(name, root)
	styleText := g.emitStylesheet(name, style)

	var typeDecl string
	if g.cfg.TypeScript {
		typeDecl = BuildPropTypes(name, root)
	}

	analysis := g.analyze(root)

	comp = &GeneratedComponent{
		ID:              root.ID,
		Name:            name,
		Markup:          markup,
		StyleText:       styleText,
		TypeDeclaration: typeDecl,
		Accessibility:   analysis.Accessibility,
		Responsive:      analysis.Responsive,
		Metadata: Metadata{
			ComponentType:     analysis.ComponentType,
			Complexity:        analysis.Complexity,
			EstimatedAccuracy: analysis.EstimatedAccuracy,
			GenerationTimeMs:  time.Since(start).Milliseconds(),
			Dependencies:      g.dependencies(),
		},
	}

	g.components[root.ID] = comp
	return comp, nil
}

// dependencies lists the package names the generated component imports.
func (g *Generator) dependencies() []string {
	var deps []string
	switch g.cfg.Framework {
	case FrameworkReact:
		deps = append(deps, "react")
	case FrameworkVue:
		deps = append(deps, "vue")
	}
	switch g.cfg.Styling {
	case DialectCSSInJS:
		deps = append(deps, "styled-components")
	case DialectUtility:
		deps = append(deps, "tailwindcss")
	}
	return deps
}

// SanitizeName converts a design node name into a PascalCase identifier.
// Empty results fall back to a fixed default, and names that would start
// with a digit get the same fixed prefix inserted. Collisions between
// distinct nodes are not deduplicated; component identity is the node ID.
func SanitizeName(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		default:
			upperNext = true
		}
	}

	s := b.String()
	if s == "" {
		return defaultComponentName
	}
	if unicode.IsDigit(rune(s[0])) {
		s = defaultComponentName + s
	}
	return s
}

// fragmentKey builds the memoization key for a synthesized fragment.
func (g *Generator) fragmentKey(nodeID string) string {
	return fmt.Sprintf("%s|%s", nodeID, g.cfg.Styling)
}
