package domain

import "strings"

var DefaultThemes = []string{"surreal", "cyberpunk", "abstract", "cosmic", "dreamscape"}

var styleModifiers = map[string]string{
	"surreal":    "surrealist dreamscape with melting forms and impossible geometry, Salvador Dali inspired",
	"cyberpunk":  "neon-lit cyberpunk cityscape with holographic elements and rain-slicked streets",
	"abstract":   "bold abstract expressionism with dynamic brushstrokes and vibrant color fields",
	"cosmic":     "cosmic nebula with swirling galaxies, stardust, and ethereal light",
	"dreamscape": "ethereal dreamscape with floating islands and bioluminescent flora",
	"vaporwave":  "vaporwave aesthetic with pink and blue gradients, greek statues, and retro tech",
	"minimalist": "minimalist composition with clean lines and negative space",
	"glitch":     "glitch art with digital artifacts, RGB splitting, and data corruption aesthetics",
	"nature":     "fantastical nature scene with impossible plants and magical creatures",
	"geometric":  "sacred geometry patterns with fractals and mathematical beauty",
}

// StyleModifier returns the prompt fragment for a theme, or the theme itself when unknown.
func StyleModifier(theme string) string {
	if modifier, ok := styleModifiers[NormalizeTheme(theme)]; ok {
		return modifier
	}
	return theme
}

func NormalizeTheme(theme string) string {
	return strings.ToLower(strings.TrimSpace(theme))
}

func ParseThemes(csv string) []string {
	themes := make([]string, 0)
	seen := make(map[string]struct{})
	for _, part := range strings.Split(csv, ",") {
		theme := NormalizeTheme(part)
		if theme == "" {
			continue
		}
		if _, ok := seen[theme]; ok {
			continue
		}
		seen[theme] = struct{}{}
		themes = append(themes, theme)
	}

	return themes
}
