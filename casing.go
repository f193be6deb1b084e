package spell

import (
	"unicode"

	"github.com/eskriett/confusables"
)

// transferCasing re-applies source's casing pattern onto target. It is
// used to recover a correction's original shouting/sentence/camel case
// after the dictionary lookup, which necessarily operates on
// case-folded or dictionary-cased terms.
func transferCasing(source, target string, foldConfusables bool) string {
	if target == "" {
		return target
	}

	srcRunes := []rune(source)
	tgtRunes := []rune(target)

	if len(srcRunes) == len(tgtRunes) {
		return transferCasingMatching(srcRunes, tgtRunes)
	}
	if foldConfusables {
		srcRunes = []rune(confusables.Skeleton(source))
	}
	return transferCasingSimilar(srcRunes, tgtRunes)
}

// transferCasingMatching handles the equal-length case: casing is
// copied position by position.
func transferCasingMatching(src, tgt []rune) string {
	out := make([]rune, len(tgt))
	for i, r := range tgt {
		switch {
		case unicode.IsUpper(src[i]):
			out[i] = unicode.ToUpper(r)
		case unicode.IsLower(src[i]):
			out[i] = unicode.ToLower(r)
		default:
			out[i] = r
		}
	}
	return string(out)
}

// transferCasingSimilar handles the differing-length case, where a
// single edit has shifted alignment partway through the word. It walks
// source and target together while they agree letter-for-letter
// (case-insensitively), copying casing directly; once they first
// diverge (the point of the edit), source is abandoned and the last
// case seen before the divergence is propagated across the remaining
// target characters (non-letters are passed through unchanged).
func transferCasingSimilar(src, tgt []rune) string {
	out := make([]rune, 0, len(tgt))
	si := 0
	upper := false
	aligned := true

	for _, r := range tgt {
		if aligned && si < len(src) && unicode.ToLower(src[si]) == unicode.ToLower(r) {
			switch {
			case unicode.IsUpper(src[si]):
				upper = true
				out = append(out, unicode.ToUpper(r))
			case unicode.IsLower(src[si]):
				upper = false
				out = append(out, unicode.ToLower(r))
			default:
				out = append(out, r)
			}
			si++
			continue
		}

		aligned = false
		if !unicode.IsLetter(r) {
			out = append(out, r)
			continue
		}
		if upper {
			out = append(out, unicode.ToUpper(r))
		} else {
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}
