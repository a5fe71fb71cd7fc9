package analytics

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldName lowercases s and strips diacritics: "São João del-Rei" -> "sao joao del-rei".
func FoldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// AlternateNames lists the lowercase spellings a city may have been recorded
// under in the analytics database, most specific first and without repeats.
func AlternateNames(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	folded := FoldName(name)

	candidates := []string{
		lower,
		folded,
		strings.ReplaceAll(lower, "-", " "),
		strings.ReplaceAll(folded, "-", " "),
		strings.ReplaceAll(folded, "'", ""),
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
