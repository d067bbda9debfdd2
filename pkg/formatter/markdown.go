// Package formatter renders a generation run as a markdown report: one
// section per generated component with its code blocks and quality metadata,
// plus a summary of per-root failures.
package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/generator"
)

// markupLanguage picks the fenced-code-block language for a framework.
func markupLanguage(framework string) string {
	switch framework {
	case generator.FrameworkVue:
		return "vue"
	case generator.FrameworkHTML:
		return "html"
	default:
		return "tsx"
	}
}

// ToMarkdown transforms a generation result into a markdown report.
// The report lists every generated component with its markup, stylesheet,
// and prop types verbatim, followed by the heuristic quality findings.
func ToMarkdown(result *generator.Result, fileName, framework string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Generated Components - %s\n\n", fileName))
	sb.WriteString(fmt.Sprintf("%d component(s) generated", len(result.Components)))
	if len(result.Failures) > 0 {
		sb.WriteString(fmt.Sprintf(", %d root(s) failed", len(result.Failures)))
	}
	sb.WriteString(".\n\n")

	lang := markupLanguage(framework)

	for i := range result.Components {
		comp := &result.Components[i]
		sb.WriteString(fmt.Sprintf("## %s\n\n", comp.Name))
		sb.WriteString(fmt.Sprintf("Source node: `%s`\n\n", comp.ID))

		sb.WriteString(fmt.Sprintf("```%s\n%s\n```\n\n", lang, strings.TrimRight(comp.Markup, "\n")))

		if comp.StyleText != "" {
			sb.WriteString("### Styles\n\n")
			sb.WriteString(fmt.Sprintf("```css\n%s\n```\n\n", strings.TrimRight(comp.StyleText, "\n")))
		}

		if comp.TypeDeclaration != "" {
			sb.WriteString("### Props\n\n")
			sb.WriteString(fmt.Sprintf("```ts\n%s\n```\n\n", strings.TrimRight(comp.TypeDeclaration, "\n")))
		}

		sb.WriteString("### Quality\n\n")
		sb.WriteString("| Metric | Value |\n")
		sb.WriteString("|--------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Accessibility score | %d (%s) |\n",
			comp.Accessibility.Score, comp.Accessibility.WCAGLevel))
		sb.WriteString(fmt.Sprintf("| Responsive | %t |\n", comp.Responsive.HasResponsiveDesign))
		sb.WriteString(fmt.Sprintf("| Component type | %s |\n", comp.Metadata.ComponentType))
		sb.WriteString(fmt.Sprintf("| Complexity | %s |\n", comp.Metadata.Complexity))
		sb.WriteString(fmt.Sprintf("| Estimated accuracy | %d%% |\n", comp.Metadata.EstimatedAccuracy))
		if len(comp.Metadata.Dependencies) > 0 {
			sb.WriteString(fmt.Sprintf("| Dependencies | %s |\n", strings.Join(comp.Metadata.Dependencies, ", ")))
		}
		sb.WriteString("\n")

		if len(comp.Accessibility.Issues) > 0 {
			sb.WriteString("### Accessibility issues\n\n")
			for _, issue := range comp.Accessibility.Issues {
				sb.WriteString(fmt.Sprintf("- **%s**: %s\n", issue.Type, issue.Message))
			}
			sb.WriteString("\n")
		}

		if len(comp.Accessibility.Suggestions) > 0 {
			sb.WriteString("### Suggestions\n\n")
			for _, s := range comp.Accessibility.Suggestions {
				sb.WriteString(fmt.Sprintf("- %s\n", s))
			}
			sb.WriteString("\n")
		}
	}

	if len(result.Failures) > 0 {
		sb.WriteString("## Failed roots\n\n")
		sb.WriteString("| Node | Reason |\n")
		sb.WriteString("|------|--------|\n")
		for _, f := range result.Failures {
			sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", f.NodeID, f.Reason))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
