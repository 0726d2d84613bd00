package hangul

import "strings"

// Precomposed syllable block U+AC00..U+D7A3. Syllables decompose
// algebraically; no dictionary lookup is involved.
const (
	syllableBase = 0xAC00 // 가
	syllableLast = 0xD7A3 // 힣

	vowelCount = 21
	tailCount  = 28
)

// Compatibility jamo in code-point index order.
var leads = []rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

var vowels = []rune{
	'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
	'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
}

// Index 0 means "no trailing consonant".
var tails = []rune{
	0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
	'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= syllableBase && r <= syllableLast
}

// Decompose returns the compatibility jamo of a single syllable; two for
// open syllables, three when a trailing consonant is present. Non-syllables
// yield nil.
func Decompose(r rune) []rune {
	if !IsSyllable(r) {
		return nil
	}
	index := int(r) - syllableBase
	lead := index / (vowelCount * tailCount)
	vowel := (index / tailCount) % vowelCount
	tail := index % tailCount

	parts := []rune{leads[lead], vowels[vowel]}
	if tail != 0 {
		parts = append(parts, tails[tail])
	}
	return parts
}

// Label renders a jamo with its pronunciation label, e.g. "ㅑ(ya)". Jamo
// without a label, like compound trailing clusters, are returned as-is.
func Label(j rune) string {
	if l, ok := jamoLabels[j]; ok {
		return string(j) + "(" + l + ")"
	}
	return string(j)
}

// BreakdownLine formats the compact breakdown of a syllable, e.g.
// "양 = ㅇ(silent/ng) + ㅑ(ya)". Empty for non-syllables.
func BreakdownLine(r rune) string {
	parts := Decompose(r)
	if parts == nil {
		return ""
	}
	labeled := make([]string, 0, len(parts))
	for _, j := range parts {
		labeled = append(labeled, Label(j))
	}
	return string(r) + " = " + strings.Join(labeled, " + ")
}

// UniqueSyllables returns the syllables of text in first-seen order,
// deduplicated. Non-syllable runes are skipped.
func UniqueSyllables(text string) []rune {
	seen := make(map[rune]struct{})
	var out []rune
	for _, r := range text {
		if !IsSyllable(r) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
