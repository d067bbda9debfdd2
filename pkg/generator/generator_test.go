package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

func demoDocument() *figma.Node {
	return &figma.Node{
		ID:   "0:0",
		Name: "Document",
		Type: figma.NodeDocument,
		Children: []figma.Node{
			{
				ID:   "0:1",
				Name: "Page 1",
				Type: figma.NodeCanvas,
				Children: []figma.Node{
					{
						ID:   "1:2",
						Name: "Hello Card",
						Type: figma.NodeFrame,
						Children: []figma.Node{
							{ID: "1:3", Name: "Greeting", Type: figma.NodeText, Characters: "Hello"},
						},
					},
				},
			},
		},
	}
}

func TestGenerateFallbackFrameScan(t *testing.T) {
	doc := demoDocument()

	result := New(DefaultConfig()).Generate(doc, nil)

	require.Len(t, result.Components, 1)
	require.Empty(t, result.Failures)

	comp := result.Components[0]
	assert.Equal(t, "1:2", comp.ID)
	assert.Equal(t, "HelloCard", comp.Name)
	assert.Contains(t, comp.Markup, ">Hello</span>")
	assert.Equal(t, "card", comp.Metadata.ComponentType)
	assert.Equal(t, []string{"react", "tailwindcss"}, comp.Metadata.Dependencies)
}

func TestGenerateFromComponentTable(t *testing.T) {
	doc := demoDocument()
	components := map[string]figma.Component{
		"1:3": {Key: "k1", Name: "Greeting"},
	}

	result := New(DefaultConfig()).Generate(doc, components)

	// The table entry wins over the frame scan, even for a non-frame node.
	require.Len(t, result.Components, 1)
	assert.Equal(t, "1:3", result.Components[0].ID)
	assert.Equal(t, "Greeting", result.Components[0].Name)
}

func TestGenerateComponentTableSortedOrder(t *testing.T) {
	doc := demoDocument()
	components := map[string]figma.Component{
		"1:3": {Name: "Greeting"},
		"1:2": {Name: "Hello Card"},
	}

	result := New(DefaultConfig()).Generate(doc, components)

	require.Len(t, result.Components, 2)
	assert.Equal(t, "1:2", result.Components[0].ID)
	assert.Equal(t, "1:3", result.Components[1].ID)
}

func TestGenerateUnresolvedTableFallsBack(t *testing.T) {
	doc := demoDocument()
	components := map[string]figma.Component{
		"9:9": {Name: "Ghost"},
	}

	result := New(DefaultConfig()).Generate(doc, components)

	// No table entry resolves, so the frame scan takes over.
	require.Len(t, result.Components, 1)
	assert.Equal(t, "1:2", result.Components[0].ID)
}

func TestGenerateIsolatesFailedRoots(t *testing.T) {
	doc := &figma.Node{
		ID:   "0:0",
		Type: figma.NodeDocument,
		Children: []figma.Node{
			{Name: "Broken", Type: figma.NodeFrame, // no ID
				Children: []figma.Node{{ID: "1:1", Type: figma.NodeText, Characters: "x"}}},
			{ID: "2:0", Name: "Fine", Type: figma.NodeFrame,
				Children: []figma.Node{{ID: "2:1", Type: figma.NodeText, Characters: "y"}}},
		},
	}

	result := New(DefaultConfig()).Generate(doc, nil)

	require.Len(t, result.Components, 1)
	assert.Equal(t, "2:0", result.Components[0].ID)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0].Reason, "missing id")
	// The failure names the offending node so reports stay actionable.
	assert.Contains(t, result.Failures[0].Reason, `"Broken"`)
}

func TestAssembleMemoizesByNodeID(t *testing.T) {
	root := &figma.Node{ID: "1:2", Name: "Card", Type: figma.NodeFrame,
		Children: []figma.Node{{ID: "1:3", Type: figma.NodeText, Characters: "x"}}}

	g := New(DefaultConfig())
	first, err := g.assemble(root)
	require.NoError(t, err)
	second, err := g.assemble(root)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestGenerateDeterministic(t *testing.T) {
	doc := demoDocument()

	a := New(DefaultConfig()).Generate(doc, nil)
	b := New(DefaultConfig()).Generate(doc, nil)

	require.Len(t, a.Components, 1)
	require.Len(t, b.Components, 1)
	assert.Equal(t, a.Components[0].Markup, b.Components[0].Markup)
	assert.Equal(t, a.Components[0].StyleText, b.Components[0].StyleText)
	assert.Equal(t, a.Components[0].TypeDeclaration, b.Components[0].TypeDeclaration)
	assert.Equal(t, a.Components[0].Accessibility, b.Components[0].Accessibility)
}

func TestGenerateFileEntryPoint(t *testing.T) {
	file := &figma.FileResponse{
		Name:     "Demo",
		Document: *demoDocument(),
	}

	result := Generate(file, DefaultConfig())
	require.Len(t, result.Components, 1)
	assert.Equal(t, "HelloCard", result.Components[0].Name)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"submit button", "SubmitButton"},
		{"Hello Card", "HelloCard"},
		{"hello-world!", "HelloWorld"},
		{"  spaced  out  ", "SpacedOut"},
		{"", "Component"},
		{"!!!", "Component"},
		{"123 cart", "Component123Cart"},
		{"ALLCAPS", "ALLCAPS"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SanitizeName(tt.in), "in=%q", tt.in)
	}
}

func TestDependencies(t *testing.T) {
	tests := []struct {
		framework string
		styling   string
		expected  []string
	}{
		{FrameworkReact, DialectUtility, []string{"react", "tailwindcss"}},
		{FrameworkReact, DialectCSSInJS, []string{"react", "styled-components"}},
		{FrameworkVue, DialectScoped, []string{"vue"}},
		{FrameworkHTML, DialectPlain, nil},
	}

	for _, tt := range tests {
		g := New(Config{Framework: tt.framework, Styling: tt.styling})
		assert.Equal(t, tt.expected, g.dependencies(), "%s/%s", tt.framework, tt.styling)
	}
}

func TestTypeScriptGatesPropTypes(t *testing.T) {
	doc := demoDocument()

	cfg := DefaultConfig()
	withTS := New(cfg).Generate(doc, nil)
	require.Len(t, withTS.Components, 1)
	assert.Contains(t, withTS.Components[0].TypeDeclaration, "export interface HelloCardProps {")
	assert.Contains(t, withTS.Components[0].TypeDeclaration, "text?: string;")

	cfg.TypeScript = false
	withoutTS := New(cfg).Generate(doc, nil)
	require.Len(t, withoutTS.Components, 1)
	assert.Empty(t, withoutTS.Components[0].TypeDeclaration)
}
