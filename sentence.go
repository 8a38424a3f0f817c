package klexicrawl

import (
	"strings"
	"unicode"
)

// abbreviations lists common German abbreviations (lowercase, without the
// trailing period) that end in a period mid-sentence.
var abbreviations = map[string]bool{
	"abb":  true,
	"allg": true,
	"bd":   true,
	"bspw": true,
	"bzw":  true,
	"ca":   true,
	"dr":   true,
	"etc":  true,
	"evtl": true,
	"geb":  true,
	"gest": true,
	"ggf":  true,
	"inkl": true,
	"jh":   true,
	"nr":   true,
	"prof": true,
	"sog":  true,
	"st":   true,
	"usw":  true,
	"vgl":  true,
}

// SplitSentences splits a plain-text paragraph into sentences.
//
// A sentence ends at a run of '.', '?' or '!' followed by whitespace or the
// end of the string; the punctuation stays with the sentence. A split is
// suppressed when the run is a single period and the preceding token is a
// known abbreviation, a single letter (initials, "z. B."), or all digits
// (ordinals, "19. Jahrhundert").
//
// The heuristic is deliberately approximate. Known false joins: an
// abbreviation from the list that actually ends a sentence. Known false
// splits: abbreviations not on the list, and ellipses used mid-sentence.
func SplitSentences(paragraph string) []string {
	runes := []rune(paragraph)
	n := len(runes)

	var sentences []string
	start := 0

	for i := 0; i < n; {
		if !isTerminal(runes[i]) {
			i++
			continue
		}

		// Extend over the whole punctuation run.
		j := i + 1
		for j < n && isTerminal(runes[j]) {
			j++
		}

		atEnd := j == n
		if !atEnd && !unicode.IsSpace(runes[j]) {
			// Mid-token punctuation ("z.B.", decimal numbers).
			i = j
			continue
		}

		if j-i == 1 && runes[i] == '.' && isAbbreviation(runes[start:i]) {
			i = j
			continue
		}

		if s := strings.TrimSpace(string(runes[start:j])); s != "" {
			sentences = append(sentences, s)
		}
		start = j
		i = j
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// isAbbreviation reports whether the text preceding a period ends in a
// token that should not terminate a sentence.
func isAbbreviation(before []rune) bool {
	end := len(before)
	startTok := end
	for startTok > 0 && !unicode.IsSpace(before[startTok-1]) {
		startTok--
	}
	token := strings.ToLower(string(before[startTok:end]))

	// Keep only the part after any embedded period ("z.B" -> "b").
	if idx := strings.LastIndex(token, "."); idx != -1 {
		token = token[idx+1:]
	}
	token = strings.TrimLeftFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if token == "" {
		return false
	}

	if len([]rune(token)) == 1 && unicode.IsLetter([]rune(token)[0]) {
		return true
	}

	allDigits := true
	for _, r := range token {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return true
	}

	return abbreviations[token]
}
