package cloze

import (
	"strings"

	"github.com/fbngrm/ko-workbook/pkg/hangul"
)

// Options controls pool generation. The pool is an ordered set of blanked
// variants of one sentence; word-level candidates come first, then span-level
// candidates, capped at MaxItems.
type Options struct {
	IncludeWordLevel  bool
	IncludeSpanLevel  bool
	MaxItems          int
	MaxSpanLen        int
	BlankChar         rune // marker replacing masked syllables
	BlanksPerSyllable int  // blank run width per masked syllable
}

func DefaultOptions() Options {
	return Options{
		IncludeWordLevel:  true,
		IncludeSpanLevel:  true,
		MaxItems:          60,
		MaxSpanLen:        6,
		BlankChar:         '＿', // U+FF3F FULLWIDTH LOW LINE
		BlanksPerSyllable: 3,
	}
}

func (o Options) blankRun(syllables int) string {
	if syllables < 1 {
		syllables = 1
	}
	per := o.BlanksPerSyllable
	if per < 1 {
		per = 1
	}
	return strings.Repeat(string(o.BlankChar), syllables*per)
}

// GeneratePool enumerates blanked variants of text. Candidates are pairwise
// distinct and never equal to text itself; a sentence without Hangul
// syllables yields an empty pool.
func GeneratePool(text string, opts Options) []string {
	var out []string
	seen := make(map[string]struct{})

	emit := func(candidate string) {
		if candidate == text {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	if opts.IncludeWordLevel {
		tokens := strings.Split(text, " ")
		for idx, tok := range tokens {
			if !containsSyllable(tok) {
				continue
			}
			blanked := []rune(tok)
			for i, r := range blanked {
				if hangul.IsSyllable(r) {
					blanked[i] = opts.BlankChar
				}
			}
			masked := make([]string, len(tokens))
			copy(masked, tokens)
			masked[idx] = string(blanked)
			emit(strings.Join(masked, " "))
			if len(out) >= opts.MaxItems {
				return out
			}
		}
	}

	if opts.IncludeSpanLevel {
		runes := []rune(text)
		for _, run := range syllableRuns(runes) {
			maxLen := opts.MaxSpanLen
			if len(run) < maxLen {
				maxLen = len(run)
			}
			for spanLen := 1; spanLen <= maxLen; spanLen++ {
				for start := 0; start+spanLen <= len(run); start++ {
					from := run[start]
					to := run[start+spanLen-1] + 1
					emit(string(runes[:from]) + opts.blankRun(spanLen) + string(runes[to:]))
					if len(out) >= opts.MaxItems {
						return out
					}
				}
			}
		}
	}

	return out
}

func containsSyllable(s string) bool {
	for _, r := range s {
		if hangul.IsSyllable(r) {
			return true
		}
	}
	return false
}

// syllableRuns partitions the rune indices of syllables into maximal runs of
// consecutive positions. Any interrupting rune, spaces included, breaks a run.
func syllableRuns(runes []rune) [][]int {
	var runs [][]int
	var cur []int
	for i, r := range runes {
		if !hangul.IsSyllable(r) {
			continue
		}
		if len(cur) > 0 && i != cur[len(cur)-1]+1 {
			runs = append(runs, cur)
			cur = nil
		}
		cur = append(cur, i)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
