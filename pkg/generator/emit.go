package generator

import (
	"fmt"
	"strings"
	"unicode"
)

// emitStylesheet produces the component's stylesheet text for the configured
// dialect, then appends caller-supplied custom and advanced CSS in delimited
// sections. A full CSS override replaces everything, custom fragments
// included (see CustomCode).
func (g *Generator) emitStylesheet(name string, style NormalizedStyle) string {
	if override := strings.TrimSpace(g.cfg.Custom.OverrideCSS); override != "" {
		return override
	}

	var base string
	switch g.cfg.Styling {
	case DialectScoped:
		base = EmitScopedBlock(name, style)
	case DialectCSSInJS:
		base = EmitCSSInJS(name, style)
	case DialectPlain:
		base = fmt.Sprintf("/* %s */\n%s", name, EmitScopedBlock(name, style))
	default: // utility-class: the stylesheet is the root's token string
		base = UtilityClasses(style)
	}

	var b strings.Builder
	b.WriteString(base)
	if custom := strings.TrimSpace(g.cfg.Custom.CSS); custom != "" {
		b.WriteString("\n\n/* Custom CSS */\n")
		b.WriteString(custom)
	}
	if advanced := strings.TrimSpace(g.cfg.Custom.AdvancedCSS); advanced != "" {
		b.WriteString("\n\n/* Advanced CSS */\n")
		b.WriteString(advanced)
	}
	return b.String()
}

// EmitScopedBlock renders a single-selector CSS block keyed by the sanitized
// component name. Each normalized style entry becomes one declaration, with
// camelCase keys converted to kebab-case.
func EmitScopedBlock(name string, style NormalizedStyle) string {
	var b strings.Builder
	fmt.Fprintf(&b, ".%s {\n", kebabCase(name))
	for _, key := range style.orderedKeys() {
		fmt.Fprintf(&b, "  %s: %s;\n", camelToKebab(key), style[key])
	}
	b.WriteString("}")
	return b.String()
}

// EmitCSSInJS renders the same declarations as a styled-components template
// bound to a generated identifier.
func EmitCSSInJS(name string, style NormalizedStyle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "const Styled%s = styled.div`\n", name)
	for _, key := range style.orderedKeys() {
		fmt.Fprintf(&b, "  %s: %s;\n", camelToKebab(key), style[key])
	}
	b.WriteString("`;")
	return b.String()
}

// camelToKebab converts a camelCase property name to its CSS spelling
// (backgroundColor -> background-color).
func camelToKebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// kebabCase converts an identifier to kebab-case for use as a class name
// (SubmitButton -> submit-button).
func kebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		} else if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
