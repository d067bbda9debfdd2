package generator

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// containerKinds render as a generic container element.
var containerKinds = map[string]bool{
	figma.NodeDocument:     true,
	figma.NodeCanvas:       true,
	figma.NodeFrame:        true,
	figma.NodeGroup:        true,
	figma.NodeComponent:    true,
	figma.NodeComponentSet: true,
	figma.NodeInstance:     true,
}

// synthesizeComponent wraps the recursively synthesized fragment for root in
// a framework component shell, with caller-supplied custom markup appended
// inside the body. The result is a template: image sources and accessible
// labels remain placeholder bindings filled at runtime.
func (g *Generator) synthesizeComponent(name string, root *figma.Node) string {
	fragment := g.synthesizeFragment(root, 2)
	if g.cfg.Styling == DialectScoped || g.cfg.Styling == DialectPlain {
		fragment = injectRootAttr(fragment, g.rootClassAttr(name))
	}
	custom := strings.TrimSpace(g.cfg.Custom.Markup)

	switch g.cfg.Framework {
	case FrameworkVue:
		var b strings.Builder
		b.WriteString("<template>\n")
		b.WriteString(fragment)
		b.WriteString("\n")
		if custom != "" {
			b.WriteString(indentLines(custom, 1))
			b.WriteString("\n")
		}
		b.WriteString("</template>\n")
		return b.String()

	case FrameworkHTML:
		out := dedent(fragment)
		if custom != "" {
			out += "\n" + custom
		}
		return out + "\n"

	default: // react
		var b strings.Builder
		if g.cfg.TypeScript {
			fmt.Fprintf(&b, "export default function %s(props: %sProps) {\n", name, name)
		} else {
			fmt.Fprintf(&b, "export default function %s(props) {\n", name)
		}
		b.WriteString("  return (\n")
		if custom != "" {
			b.WriteString("    <>\n")
			b.WriteString(indentLines(dedent(fragment), 3))
			b.WriteString("\n")
			b.WriteString(indentLines(custom, 3))
			b.WriteString("\n    </>\n")
		} else {
			b.WriteString(fragment)
			b.WriteString("\n")
		}
		b.WriteString("  );\n}\n")
		return b.String()
	}
}

// synthesizeFragment recursively turns a node into an indented markup
// fragment: opening tag with attributes, children in original sibling order,
// closing tag. Fragments are memoized by (node ID, dialect) so shared
// subtrees referenced from multiple roots are synthesized once.
func (g *Generator) synthesizeFragment(n *figma.Node, depth int) string {
	key := g.fragmentKey(n.ID)
	if cached, ok := g.fragments[key]; ok {
		return reindent(cached, depth)
	}

	fragment := g.renderNode(n, depth)
	g.fragments[key] = dedent(fragment)
	return fragment
}

func (g *Generator) renderNode(n *figma.Node, depth int) string {
	indent := strings.Repeat("  ", depth)
	tag := g.tagFor(n)
	attrs := g.attributesFor(n, tag)

	open := "<" + tag
	if attrs != "" {
		open += " " + attrs
	}

	// Text leaves emit their characters as body content.
	if n.IsText() {
		return fmt.Sprintf("%s%s>%s</%s>", indent, open, n.Characters, tag)
	}

	if tag == "img" || n.IsLeaf() {
		return indent + g.closeEmpty(open, tag)
	}

	var b strings.Builder
	b.WriteString(indent + open + ">")
	for i := range n.Children {
		b.WriteString("\n")
		b.WriteString(g.synthesizeFragment(&n.Children[i], depth+1))
	}
	b.WriteString("\n" + indent + "</" + tag + ">")
	return b.String()
}

// tagFor chooses the markup tag for a node. Unknown kinds fall back to the
// generic container rather than failing.
func (g *Generator) tagFor(n *figma.Node) string {
	switch {
	case n.IsText():
		if n.IsHeading() {
			return headingTag(n)
		}
		return "span"
	case n.Type == figma.NodeRectangle:
		if n.IsImage() {
			return "img"
		}
		return "div"
	case containerKinds[n.Type]:
		return "div"
	default:
		return "div"
	}
}

// headingTag picks a heading level from the text's font size.
func headingTag(n *figma.Node) string {
	size := 0.0
	if n.Style != nil {
		size = n.Style.FontSize
	}
	switch {
	case size >= 32:
		return "h1"
	case size >= 24:
		return "h2"
	default:
		return "h3"
	}
}

// attributesFor builds the attribute string for a node's opening tag.
// Image tags get placeholder bindings for source and alt text: the concrete
// values are runtime inputs, not derivable from the design data.
func (g *Generator) attributesFor(n *figma.Node, tag string) string {
	var attrs []string

	if g.cfg.Styling == DialectUtility {
		if classes := UtilityClasses(ExtractStyle(n)); classes != "" {
			attrs = append(attrs, g.classAttr(classes))
		}
	}

	if tag == "img" {
		switch g.cfg.Framework {
		case FrameworkVue:
			attrs = append(attrs, `:src="imageSrc"`, `:alt="altText"`)
		case FrameworkHTML:
			attrs = append(attrs, `src="{{imageSrc}}"`, `alt="{{altText}}"`)
		default:
			attrs = append(attrs, "src={props.imageSrc}", "alt={props.altText}")
		}
		if g.cfg.OptimizeImages {
			attrs = append(attrs, `loading="lazy"`, `decoding="async"`)
		}
	}

	return strings.Join(attrs, " ")
}

// classAttr renders the class attribute in the framework's spelling.
func (g *Generator) classAttr(classes string) string {
	if g.cfg.Framework == FrameworkReact {
		return fmt.Sprintf("className=%q", classes)
	}
	return fmt.Sprintf("class=%q", classes)
}

// rootClassAttr is the class attribute for scoped dialects, applied to the
// component root only.
func (g *Generator) rootClassAttr(name string) string {
	return g.classAttr(kebabCase(name))
}

// closeEmpty renders a childless element: self-closing for JSX and Vue,
// paired (or void) tags for plain HTML.
func (g *Generator) closeEmpty(open, tag string) string {
	if g.cfg.Framework == FrameworkHTML {
		if tag == "img" {
			return open + ">"
		}
		return open + "></" + tag + ">"
	}
	return open + " />"
}

// injectRootAttr inserts an attribute into the fragment's first opening tag.
// Scoped dialects hook their selector onto the component root this way
// without disturbing the memoized child fragments.
func injectRootAttr(fragment, attr string) string {
	start := strings.Index(fragment, "<")
	if start < 0 {
		return fragment
	}
	end := start + 1
	for end < len(fragment) {
		c := fragment[end]
		if c == ' ' || c == '>' || c == '/' || c == '\n' {
			break
		}
		end++
	}
	return fragment[:end] + " " + attr + fragment[end:]
}

// indentLines prefixes every line of s with the given indent level.
func indentLines(s string, depth int) string {
	indent := strings.Repeat("  ", depth)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// dedent strips the common leading indentation produced by fragment nesting.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	min := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " "))
		if min == -1 || n < min {
			min = n
		}
	}
	if min <= 0 {
		return s
	}
	for i, line := range lines {
		if len(line) >= min {
			lines[i] = line[min:]
		}
	}
	return strings.Join(lines, "\n")
}

// reindent places a dedented cached fragment at the requested depth.
func reindent(s string, depth int) string {
	return indentLines(s, depth)
}
