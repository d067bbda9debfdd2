package generator

import (
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Accessibility scoring policy. These are deliberate named constants rather
// than inline numbers so tests can target them directly.
const (
	baseAccessibilityScore = 100
	missingAltPenalty      = 15
	lowContrastPenalty     = 10

	// minContrastRatio is the WCAG AA threshold for normal text.
	minContrastRatio = 4.5

	// placeholderContrastRatio stands in for a real contrast computation.
	// The relative-luminance formula is a natural enhancement, but today the
	// value is a fixed placeholder equal to the threshold, so the
	// low-contrast finding never fires. Do not silently upgrade this.
	placeholderContrastRatio = 4.5
)

// WCAG level thresholds over the accessibility score.
const (
	wcagAAThreshold = 80
	wcagAThreshold  = 60

	WCAGLevelAA           = "AA"
	WCAGLevelA            = "A"
	WCAGLevelNonCompliant = "Non-compliant"
)

// Estimated-accuracy policy.
const (
	baseAccuracyScore     = 85
	simpleAccuracyBonus   = 10
	crowdedAccuracyMalus  = 5
	crowdedChildThreshold = 5
	knownTypeBonus        = 5
	minAccuracy           = 70
	maxAccuracy           = 100
)

// Complexity weights and bucket boundaries.
const (
	effectComplexityWeight    = 2
	multiFillComplexityWeight = 1
	simpleComplexityMax       = 3
	mediumComplexityMax       = 8
)

// componentTypeKeywords are matched against the node name in priority order.
var componentTypeKeywords = []string{"button", "card", "text", "input"}

// analysis bundles everything the heuristic analyzer derives for one root.
type analysis struct {
	Accessibility     AccessibilityReport
	Responsive        ResponsiveReport
	ComponentType     string
	Complexity        string
	EstimatedAccuracy int
}

// analyze derives accessibility findings, a responsiveness flag, a
// component-type classification, a complexity bucket, and an estimated
// accuracy percentage for the subtree rooted at n. The accessibility and
// responsive passes honor their config switches; classification, complexity,
// and accuracy are always computed because the metadata depends on them.
func (g *Generator) analyze(n *figma.Node) analysis {
	a := analysis{
		Accessibility: AccessibilityReport{Score: baseAccessibilityScore},
	}

	if g.cfg.Accessibility {
		g.collectAccessibility(n, &a.Accessibility)
	}
	a.Accessibility.WCAGLevel = wcagLevelFor(a.Accessibility.Score)

	if g.cfg.Responsive {
		a.Responsive.HasResponsiveDesign = isResponsive(n)
	}

	a.ComponentType = classifyComponent(n)
	a.Complexity = complexityBucket(n)
	a.EstimatedAccuracy = estimateAccuracy(n, a.ComponentType, a.Complexity)

	return a
}

// collectAccessibility walks the subtree accumulating issues and suggestions.
// The score decreases as issues are appended and floors at zero.
func (g *Generator) collectAccessibility(n *figma.Node, report *AccessibilityReport) {
	if n.IsImage() && g.cfg.AltTexts[n.ID] == "" {
		report.Issues = append(report.Issues, Issue{
			Type:    "error",
			Message: "missing alt text for image node \"" + n.Name + "\"",
		})
		report.Score -= missingAltPenalty
	}

	if n.IsText() && placeholderContrastRatio < minContrastRatio {
		report.Issues = append(report.Issues, Issue{
			Type:    "warning",
			Message: "low contrast text in node \"" + n.Name + "\"",
		})
		report.Score -= lowContrastPenalty
	}

	if n.IsInteractive() {
		report.Suggestions = append(report.Suggestions,
			"Ensure keyboard navigation works for \""+n.Name+"\"",
			"Add ARIA labels to \""+n.Name+"\"")
	}

	if n.IsHeading() {
		report.Suggestions = append(report.Suggestions,
			"Verify heading hierarchy around \""+n.Name+"\"")
	}

	if report.Score < 0 {
		report.Score = 0
	}

	for i := range n.Children {
		g.collectAccessibility(&n.Children[i], report)
	}
}

// wcagLevelFor maps a score to its compliance tier. The level is a pure
// function of the score.
func wcagLevelFor(score int) string {
	switch {
	case score >= wcagAAThreshold:
		return WCAGLevelAA
	case score >= wcagAThreshold:
		return WCAGLevelA
	default:
		return WCAGLevelNonCompliant
	}
}

// isResponsive reports whether the node carries responsive layout hints: an
// auto-layout axis, or constraints that deviate from the default top/left
// anchoring.
func isResponsive(n *figma.Node) bool {
	if n.LayoutMode != "" && n.LayoutMode != "NONE" {
		return true
	}
	if c := n.Constraints; c != nil {
		horizontalDefault := c.Horizontal == "" || c.Horizontal == "LEFT"
		verticalDefault := c.Vertical == "" || c.Vertical == "TOP"
		return !horizontalDefault || !verticalDefault
	}
	return false
}

// classifyComponent assigns a component type: name-keyword match in priority
// order, then "text" for text nodes, then "layout" for crowded containers,
// else "complex".
func classifyComponent(n *figma.Node) string {
	name := strings.ToLower(n.Name)
	for _, kw := range componentTypeKeywords {
		if strings.Contains(name, kw) {
			return kw
		}
	}
	if n.IsText() {
		return "text"
	}
	if len(n.Children) > 3 {
		return "layout"
	}
	return "complex"
}

// complexityBucket maps a weighted sum (children, effects, extra fills) to a
// complexity label.
func complexityBucket(n *figma.Node) string {
	score := len(n.Children)
	if len(n.Effects) > 0 {
		score += effectComplexityWeight
	}
	if len(n.Fills) > 1 {
		score += multiFillComplexityWeight
	}

	switch {
	case score <= simpleComplexityMax:
		return "simple"
	case score <= mediumComplexityMax:
		return "medium"
	default:
		return "complex"
	}
}

// estimateAccuracy produces the estimated visual accuracy percentage,
// clamped to [minAccuracy, maxAccuracy].
func estimateAccuracy(n *figma.Node, componentType, complexity string) int {
	score := baseAccuracyScore
	if complexity == "simple" {
		score += simpleAccuracyBonus
	}
	if len(n.Children) > crowdedChildThreshold {
		score -= crowdedAccuracyMalus
	}
	switch componentType {
	case "button", "text", "card":
		score += knownTypeBonus
	}

	if score < minAccuracy {
		score = minAccuracy
	}
	if score > maxAccuracy {
		score = maxAccuracy
	}
	return score
}
