package generator

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// NormalizedStyle maps style-property names (camelCase) to semantic values.
// Keys are unique; insertion order carries no meaning. Absence of a source
// attribute means absence of the corresponding key.
type NormalizedStyle map[string]string

// defaultShadowColor is used for drop shadows whose effect carries no color.
const defaultShadowColor = "rgba(0,0,0,0.25)"

// fontFallback is appended to every extracted font family.
const fontFallback = "sans-serif"

// stylePropertyOrder is the canonical emission order for declarations.
// Properties not listed are appended alphabetically after these.
var stylePropertyOrder = []string{
	"width", "height",
	"display", "flexDirection", "gap", "padding",
	"backgroundColor", "color",
	"fontFamily", "fontSize", "fontWeight", "lineHeight", "letterSpacing",
	"border", "borderRadius", "boxShadow",
	"opacity",
}

// ExtractStyle pulls layout, paint, and typography attributes off a node into
// a normalized style map. Each rule applies independently; no defaults are
// injected for absent source attributes.
func ExtractStyle(n *figma.Node) NormalizedStyle {
	style := make(NormalizedStyle)

	if box := n.AbsoluteBoundingBox; box != nil {
		style["width"] = formatPx(box.Width)
		style["height"] = formatPx(box.Height)
	}

	switch n.LayoutMode {
	case "HORIZONTAL":
		style["display"] = "flex"
		style["flexDirection"] = "row"
	case "VERTICAL":
		style["display"] = "flex"
		style["flexDirection"] = "column"
	}
	if n.LayoutMode != "" && n.LayoutMode != "NONE" && n.ItemSpacing > 0 {
		style["gap"] = formatPx(n.ItemSpacing)
	}

	if n.PaddingTop > 0 || n.PaddingRight > 0 || n.PaddingBottom > 0 || n.PaddingLeft > 0 {
		style["padding"] = fmt.Sprintf("%s %s %s %s",
			formatPx(n.PaddingTop), formatPx(n.PaddingRight),
			formatPx(n.PaddingBottom), formatPx(n.PaddingLeft))
	}

	// The fill list takes precedence over backgroundColor when both exist.
	if fill := firstSolidFill(n.Fills); fill != nil {
		style["backgroundColor"] = paintToRGBA(fill)
	} else if n.BackgroundColor != nil {
		style["backgroundColor"] = colorToRGBA(n.BackgroundColor, nil)
	}

	if n.CornerRadius > 0 {
		style["borderRadius"] = formatPx(n.CornerRadius)
	}

	if stroke := firstSolidFill(n.Strokes); stroke != nil {
		style["border"] = fmt.Sprintf("%s solid %s", formatPx(n.StrokeWeight), paintToRGBA(stroke))
	}

	if n.IsText() {
		extractTextStyle(n, style)
	}

	if n.Opacity != nil && *n.Opacity != 1 {
		style["opacity"] = formatNumber(*n.Opacity)
	}

	if shadow := extractShadows(n.Effects); shadow != "" {
		style["boxShadow"] = shadow
	}

	return style
}

// extractTextStyle adds typography properties for a text node: quoted font
// family with a generic fallback, pixel sizes, and the glyph color from the
// first fill of the text style (falling back to the node's own fills).
func extractTextStyle(n *figma.Node, style NormalizedStyle) {
	if ts := n.Style; ts != nil {
		if ts.FontFamily != "" {
			style["fontFamily"] = fmt.Sprintf("'%s', %s", ts.FontFamily, fontFallback)
		}
		if ts.FontSize > 0 {
			style["fontSize"] = formatPx(ts.FontSize)
		}
		if ts.FontWeight > 0 {
			style["fontWeight"] = formatNumber(ts.FontWeight)
		}
		if ts.LineHeightPx > 0 {
			style["lineHeight"] = formatPx(ts.LineHeightPx)
		}
		if ts.LetterSpacing != 0 {
			style["letterSpacing"] = formatPx(ts.LetterSpacing)
		}
		if fill := firstSolidFill(ts.Fills); fill != nil {
			style["color"] = paintToRGBA(fill)
			return
		}
	}
	if fill := firstSolidFill(n.Fills); fill != nil {
		style["color"] = paintToRGBA(fill)
	}
}

// extractShadows converts visible drop shadows into a comma-joined box-shadow
// value. Offsets and radius default to 0 when absent; the color defaults to a
// translucent black.
func extractShadows(effects []figma.Effect) string {
	var terms []string
	for i := range effects {
		e := &effects[i]
		if e.Type != "DROP_SHADOW" || !e.IsVisible() {
			continue
		}
		var x, y float64
		if e.Offset != nil {
			x, y = e.Offset.X, e.Offset.Y
		}
		color := defaultShadowColor
		if e.Color != nil {
			color = colorToRGBA(e.Color, nil)
		}
		terms = append(terms, fmt.Sprintf("%s %s %s %s",
			formatPx(x), formatPx(y), formatPx(e.Radius), color))
	}
	return strings.Join(terms, ", ")
}

// firstSolidFill returns the first visible solid paint with a color, or nil.
func firstSolidFill(paints []figma.Paint) *figma.Paint {
	for i := range paints {
		p := &paints[i]
		if p.Type == "SOLID" && p.Color != nil && p.IsVisible() {
			return p
		}
	}
	return nil
}

// paintToRGBA renders a solid paint as rgba(). The alpha is the paint's
// explicit opacity when given, else the color's own alpha channel.
func paintToRGBA(p *figma.Paint) string {
	return colorToRGBA(p.Color, p.Opacity)
}

// colorToRGBA converts a Figma color (0-1 channels) to an rgba() string with
// 0-255 channels. A nil color yields opaque black.
func colorToRGBA(c *figma.Color, opacity *float64) string {
	if c == nil {
		return "rgba(0,0,0,1)"
	}
	alpha := c.A
	if opacity != nil {
		alpha = *opacity
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)",
		int(math.Round(c.R*255)),
		int(math.Round(c.G*255)),
		int(math.Round(c.B*255)),
		formatNumber(alpha))
}

// formatPx renders a pixel dimension, trimming insignificant decimals.
func formatPx(v float64) string {
	return formatNumber(v) + "px"
}

// formatNumber renders a float without trailing zeros (16 not 16.000000).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// orderedKeys returns the style's keys in canonical declaration order.
func (s NormalizedStyle) orderedKeys() []string {
	keys := make([]string, 0, len(s))
	seen := make(map[string]bool, len(s))
	for _, k := range stylePropertyOrder {
		if _, ok := s[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range s {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	if len(rest) > 0 {
		sort.Strings(rest)
		keys = append(keys, rest...)
	}
	return keys
}
