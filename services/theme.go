package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"hardware-store/models"
)

// shadeOffsets is the additive RGB offset applied to each channel per shade.
var shadeOffsets = []struct {
	Shade  int
	Offset int
}{
	{50, 80}, {100, 60}, {200, 40}, {300, 20}, {400, 10},
	{500, 0},
	{600, -20}, {700, -40}, {800, -60}, {900, -80},
}

type Theme struct {
	Variables map[string]string `json:"variables"`
}

type rgb struct{ R, G, B int }

// parseHex reads #rrggbb or #rgb. A channel pair is read up to its first
// non-hex digit ("1z" is 1); a pair with no leading hex digit reads as 0.
func parseHex(color string) rgb {
	hex := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	channel := func(i int) int {
		if len(hex) < i+2 {
			return 0
		}
		pair := hex[i : i+2]
		if end := strings.IndexFunc(pair, func(r rune) bool { return !isHexDigit(r) }); end >= 0 {
			pair = pair[:end]
		}
		if pair == "" {
			return 0
		}
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return 0
		}
		return int(v)
	}
	return rgb{R: channel(0), G: channel(2), B: channel(4)}
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func clampChannel(v int) int {
	return max(0, min(255, v))
}

// GenerateShades derives the 50..900 palette of one base color as
// "r, g, b" strings keyed by shade.
func GenerateShades(baseColor string) map[int]string {
	base := parseHex(baseColor)
	shades := make(map[int]string, len(shadeOffsets))
	for _, s := range shadeOffsets {
		shades[s.Shade] = fmt.Sprintf("%d, %d, %d",
			clampChannel(base.R+s.Offset),
			clampChannel(base.G+s.Offset),
			clampChannel(base.B+s.Offset),
		)
	}
	return shades
}

// ApplyTheme maps the three base colors of cfg to CSS custom properties
// named --color-<primary|secondary|accent>-<shade>.
func ApplyTheme(cfg models.StoreConfig) Theme {
	vars := make(map[string]string, 3*len(shadeOffsets))
	for name, color := range map[string]string{
		"primary":   cfg.PrimaryColor,
		"secondary": cfg.SecondaryColor,
		"accent":    cfg.AccentColor,
	} {
		for shade, value := range GenerateShades(color) {
			vars[fmt.Sprintf("--color-%s-%d", name, shade)] = value
		}
	}
	return Theme{Variables: vars}
}

// CSS renders the variables as a :root block in a stable order.
func (t Theme) CSS() string {
	names := make([]string, 0, len(t.Variables))
	for name := range t.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s;\n", name, t.Variables[name])
	}
	b.WriteString("}\n")
	return b.String()
}
