package generator

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// BuildPropTypes synthesizes a TypeScript props interface for a component
// from what its subtree contains: image nodes need a source and alt text,
// text nodes accept an override string, interactive nodes take a click
// handler. className is always present so callers can extend styling.
func BuildPropTypes(name string, root *figma.Node) string {
	var hasImage, hasText, interactive bool

	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		if n.IsImage() {
			hasImage = true
		}
		if n.IsText() {
			hasText = true
		}
		if n.IsInteractive() {
			interactive = true
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(root)

	var b strings.Builder
	fmt.Fprintf(&b, "export interface %sProps {\n", name)
	b.WriteString("  className?: string;\n")
	if hasText {
		b.WriteString("  text?: string;\n")
	}
	if hasImage {
		b.WriteString("  imageSrc?: string;\n")
		b.WriteString("  altText?: string;\n")
	}
	if interactive {
		b.WriteString("  onClick?: () => void;\n")
	}
	b.WriteString("}\n")
	return b.String()
}
