package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hellenic-development/figma-codegen/pkg/generator"
)

func TestToMarkdown(t *testing.T) {
	result := &generator.Result{
		Components: []generator.GeneratedComponent{
			{
				ID:              "1:2",
				Name:            "HelloCard",
				Markup:          "export default function HelloCard(props: HelloCardProps) {\n  return (\n    <div />\n  );\n}\n",
				StyleText:       ".hello-card {\n  width: 10px;\n}",
				TypeDeclaration: "export interface HelloCardProps {\n  className?: string;\n}\n",
				Accessibility: generator.AccessibilityReport{
					Score:     85,
					WCAGLevel: generator.WCAGLevelAA,
					Issues: []generator.Issue{
						{Type: "error", Message: `missing alt text for image node "Hero"`},
					},
				},
				Metadata: generator.Metadata{
					ComponentType:     "card",
					Complexity:        "simple",
					EstimatedAccuracy: 100,
					Dependencies:      []string{"react"},
				},
			},
		},
		Failures: []generator.Failure{
			{NodeID: "9:9", Reason: "invalid node: missing id"},
		},
	}

	md := ToMarkdown(result, "Demo File", generator.FrameworkReact)

	assert.True(t, strings.HasPrefix(md, "# Generated Components - Demo File\n"))
	assert.Contains(t, md, "1 component(s) generated, 1 root(s) failed.")
	assert.Contains(t, md, "## HelloCard")
	assert.Contains(t, md, "Source node: `1:2`")
	assert.Contains(t, md, "```tsx\nexport default function HelloCard")
	assert.Contains(t, md, "```css\n.hello-card {")
	assert.Contains(t, md, "```ts\nexport interface HelloCardProps {")
	assert.Contains(t, md, "| Accessibility score | 85 (AA) |")
	assert.Contains(t, md, "- **error**: missing alt text for image node \"Hero\"")
	assert.Contains(t, md, "## Failed roots")
	assert.Contains(t, md, "| `9:9` | invalid node: missing id |")
}

func TestMarkupLanguage(t *testing.T) {
	assert.Equal(t, "tsx", markupLanguage(generator.FrameworkReact))
	assert.Equal(t, "vue", markupLanguage(generator.FrameworkVue))
	assert.Equal(t, "html", markupLanguage(generator.FrameworkHTML))
	assert.Equal(t, "tsx", markupLanguage("unknown"))
}
