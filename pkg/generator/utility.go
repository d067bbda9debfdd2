package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// spacingScale is the known utility step scale; values off the scale emit an
// arbitrary-value token instead.
var spacingScale = map[int]bool{
	0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
	8: true, 10: true, 12: true, 16: true, 20: true, 24: true,
}

// paletteColor is one entry of the small fixed color palette used for
// nearest-color matching.
type paletteColor struct {
	token   string
	r, g, b int
}

// utilityPalette mirrors the default utility framework palette at the 500
// step. Gray is the fallback when nothing is nearer.
var utilityPalette = []paletteColor{
	{"white", 255, 255, 255},
	{"black", 0, 0, 0},
	{"red-500", 239, 68, 68},
	{"green-500", 34, 197, 94},
	{"blue-500", 59, 130, 246},
	{"gray-500", 107, 114, 128},
}

// radiusBuckets maps border-radius pixel ceilings to the six fixed radius
// tokens, in ascending order.
var radiusBuckets = []struct {
	max   float64
	token string
}{
	{2, "rounded-sm"},
	{4, "rounded"},
	{6, "rounded-md"},
	{8, "rounded-lg"},
	{12, "rounded-xl"},
	{16, "rounded-2xl"},
}

// fontSizeBuckets maps font-size pixel ceilings to the seven fixed text
// tokens, in ascending order.
var fontSizeBuckets = []struct {
	max   float64
	token string
}{
	{12, "text-xs"},
	{14, "text-sm"},
	{16, "text-base"},
	{18, "text-lg"},
	{20, "text-xl"},
	{24, "text-2xl"},
	{30, "text-3xl"},
}

// UtilityClasses maps a normalized style to a space-joined utility token
// string. Each property maps independently to zero or more tokens; token
// order is layout, spacing, sizing, color, radius, typography.
func UtilityClasses(style NormalizedStyle) string {
	var tokens []string

	// Layout.
	if style["display"] == "flex" {
		tokens = append(tokens, "flex")
		switch style["flexDirection"] {
		case "row":
			tokens = append(tokens, "flex-row")
		case "column":
			tokens = append(tokens, "flex-col")
		}
	}

	// Spacing.
	if gap, ok := style["gap"]; ok {
		tokens = append(tokens, spacingToken("gap", parsePx(gap)))
	}
	if padding, ok := style["padding"]; ok {
		tokens = append(tokens, paddingTokens(padding)...)
	}

	// Sizing.
	if w, ok := style["width"]; ok {
		tokens = append(tokens, fmt.Sprintf("w-[%s]", w))
	}
	if h, ok := style["height"]; ok {
		tokens = append(tokens, fmt.Sprintf("h-[%s]", h))
	}

	// Color.
	if bg, ok := style["backgroundColor"]; ok {
		tokens = append(tokens, "bg-"+nearestPaletteToken(bg))
	}
	if c, ok := style["color"]; ok {
		tokens = append(tokens, "text-"+nearestPaletteToken(c))
	}

	// Radius.
	if radius, ok := style["borderRadius"]; ok {
		tokens = append(tokens, radiusToken(parsePx(radius)))
	}

	// Typography.
	if size, ok := style["fontSize"]; ok {
		tokens = append(tokens, fontSizeToken(parsePx(size)))
	}

	return strings.Join(tokens, " ")
}

// spacingToken converts a pixel value to a step token: the value divided by 4
// and rounded when it lands on the known scale, else an arbitrary-value token.
func spacingToken(prefix string, px float64) string {
	step := int(math.Round(px / 4))
	if spacingScale[step] {
		return fmt.Sprintf("%s-%d", prefix, step)
	}
	return fmt.Sprintf("%s-[%spx]", prefix, formatNumber(px))
}

// paddingTokens expands the padding shorthand (top right bottom left) into
// per-side tokens, or a single token when all sides match. Zero sides are
// omitted.
func paddingTokens(shorthand string) []string {
	parts := strings.Fields(shorthand)
	if len(parts) != 4 {
		return nil
	}
	top, right := parsePx(parts[0]), parsePx(parts[1])
	bottom, left := parsePx(parts[2]), parsePx(parts[3])

	if top == right && right == bottom && bottom == left {
		return []string{spacingToken("p", top)}
	}

	var tokens []string
	for _, side := range []struct {
		prefix string
		px     float64
	}{{"pt", top}, {"pr", right}, {"pb", bottom}, {"pl", left}} {
		if side.px > 0 {
			tokens = append(tokens, spacingToken(side.prefix, side.px))
		}
	}
	return tokens
}

// nearestPaletteToken matches an rgba() color to the nearest palette entry by
// Euclidean channel distance. Unparseable colors fall back to gray.
func nearestPaletteToken(rgba string) string {
	var r, g, b int
	var a float64
	if _, err := fmt.Sscanf(rgba, "rgba(%d,%d,%d,%f)", &r, &g, &b, &a); err != nil {
		return "gray-500"
	}

	best := utilityPalette[len(utilityPalette)-1] // gray fallback
	bestDist := math.MaxFloat64
	for _, p := range utilityPalette {
		dr, dg, db := float64(r-p.r), float64(g-p.g), float64(b-p.b)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = p
		}
	}
	return best.token
}

// radiusToken buckets a border radius into the six fixed steps, falling back
// to an arbitrary-value token.
func radiusToken(px float64) string {
	for _, b := range radiusBuckets {
		if px <= b.max {
			return b.token
		}
	}
	return fmt.Sprintf("rounded-[%spx]", formatNumber(px))
}

// fontSizeToken buckets a font size into the seven fixed steps, falling back
// to an arbitrary-value token.
func fontSizeToken(px float64) string {
	for _, b := range fontSizeBuckets {
		if px <= b.max {
			return b.token
		}
	}
	return fmt.Sprintf("text-[%spx]", formatNumber(px))
}

// parsePx reads the numeric part of a "<n>px" value. Unparseable input
// yields zero.
func parsePx(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return 0
	}
	return f
}
