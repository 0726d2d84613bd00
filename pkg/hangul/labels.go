package hangul

// jamoLabels maps compatibility jamo to short romanized labels used in
// breakdown lines. Compound trailing clusters are intentionally absent and
// fall back to the bare jamo.
var jamoLabels = map[rune]string{
	// consonants
	'ㄱ': "g/k",
	'ㄲ': "kk",
	'ㄴ': "n",
	'ㄷ': "d/t",
	'ㄸ': "tt",
	'ㄹ': "r/l",
	'ㅁ': "m",
	'ㅂ': "b/p",
	'ㅃ': "pp",
	'ㅅ': "s",
	'ㅆ': "ss",
	'ㅇ': "silent/ng",
	'ㅈ': "j",
	'ㅉ': "jj",
	'ㅊ': "ch",
	'ㅋ': "k",
	'ㅌ': "t",
	'ㅍ': "p",
	'ㅎ': "h",
	// vowels
	'ㅏ': "a",
	'ㅐ': "ae",
	'ㅑ': "ya",
	'ㅒ': "yae",
	'ㅓ': "eo",
	'ㅔ': "e",
	'ㅕ': "yeo",
	'ㅖ': "ye",
	'ㅗ': "o",
	'ㅘ': "wa",
	'ㅙ': "wae",
	'ㅚ': "oe",
	'ㅛ': "yo",
	'ㅜ': "u",
	'ㅝ': "wo",
	'ㅞ': "we",
	'ㅟ': "wi",
	'ㅠ': "yu",
	'ㅡ': "eu",
	'ㅢ': "ui",
	'ㅣ': "i",
}
