package hangul_test

import (
	"testing"

	"github.com/fbngrm/ko-workbook/pkg/hangul"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Jamo orderings of the syllable block, restated here to verify the
// algebraic decomposition round-trips every code point.
var (
	leadIndex  = indexOf("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")
	vowelIndex = indexOf("ㅏㅐㅑㅒㅓㅔㅕㅖㅗㅘㅙㅚㅛㅜㅝㅞㅟㅠㅡㅢㅣ")
	tailIndex  = indexOf("ㄱㄲㄳㄴㄵㄶㄷㄹㄺㄻㄼㄽㄾㄿㅀㅁㅂㅄㅅㅆㅇㅈㅊㅋㅌㅍㅎ")
)

func indexOf(jamo string) map[rune]int {
	m := make(map[rune]int)
	i := 0
	for _, r := range jamo {
		m[r] = i
		i++
	}
	return m
}

func TestDecomposeRoundTripsWholeBlock(t *testing.T) {
	for r := rune(0xAC00); r <= 0xD7A3; r++ {
		parts := hangul.Decompose(r)
		require.True(t, len(parts) == 2 || len(parts) == 3, "syllable %c: got %d parts", r, len(parts))

		lead, ok := leadIndex[parts[0]]
		require.True(t, ok, "syllable %c: unknown lead %c", r, parts[0])
		vowel, ok := vowelIndex[parts[1]]
		require.True(t, ok, "syllable %c: unknown vowel %c", r, parts[1])
		tail := 0
		if len(parts) == 3 {
			tailPos, ok := tailIndex[parts[2]]
			require.True(t, ok, "syllable %c: unknown tail %c", r, parts[2])
			tail = tailPos + 1
		}

		recombined := rune(0xAC00 + (lead*21+vowel)*28 + tail)
		require.Equal(t, r, recombined, "syllable %c does not round-trip", r)
	}
}

func TestDecomposeNonSyllable(t *testing.T) {
	assert.Nil(t, hangul.Decompose('a'))
	assert.Nil(t, hangul.Decompose('ㅏ')) // bare jamo is not a syllable
	assert.Nil(t, hangul.Decompose(' '))
}

func TestIsSyllable(t *testing.T) {
	assert.True(t, hangul.IsSyllable('가'))
	assert.True(t, hangul.IsSyllable('힣'))
	assert.False(t, hangul.IsSyllable(0xABFF))
	assert.False(t, hangul.IsSyllable(0xD7A4))
	assert.False(t, hangul.IsSyllable('z'))
}

func TestBreakdownLine(t *testing.T) {
	assert.Equal(t, "양 = ㅇ(silent/ng) + ㅑ(ya)", hangul.BreakdownLine('양'))
	assert.Equal(t, "한 = ㅎ(h) + ㅏ(a) + ㄴ(n)", hangul.BreakdownLine('한'))
	assert.Equal(t, "", hangul.BreakdownLine('x'))
}

func TestLabelFallsBackToBareJamo(t *testing.T) {
	assert.Equal(t, "ㅑ(ya)", hangul.Label('ㅑ'))
	// compound trailing cluster has no label
	assert.Equal(t, "ㄳ", hangul.Label('ㄳ'))
}

func TestUniqueSyllables(t *testing.T) {
	got := hangul.UniqueSyllables("고양이는 있다.")
	assert.Equal(t, []rune{'고', '양', '이', '는', '있', '다'}, got)

	// deduplicated, first-seen order
	assert.Equal(t, []rune{'고', '양'}, hangul.UniqueSyllables("고고양고"))

	// no syllables at all
	assert.Empty(t, hangul.UniqueSyllables("abc !?"))
}

func TestUniqueSyllablesIdempotent(t *testing.T) {
	text := "작은 고양이는 검다."
	first := hangul.UniqueSyllables(text)
	second := hangul.UniqueSyllables(text)
	assert.Equal(t, first, second)
}
