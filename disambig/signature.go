package disambig

import (
	"strings"

	"github.com/revelaction/wordsense/tagger"
)

// Placeholder marks the target word in a signature.
const Placeholder = "WORD"

// Signature joins tags as "-T1-T2-...-" with the tag at target replaced by
// the Placeholder.
func Signature(tags []string, target int) string {
	parts := make([]string, len(tags))
	copy(parts, tags)
	if target >= 0 && target < len(parts) {
		parts[target] = Placeholder
	}
	return "-" + strings.Join(parts, "-") + "-"
}

// ExampleSignature builds the signature of a tagged example, marking the
// first token equal to word. It reports false when word does not occur.
func ExampleSignature(tagged []tagger.Tagged, word string) (string, bool) {
	for i, t := range tagged {
		if t.Text == word {
			return Signature(tagger.Tags(tagged), i), true
		}
	}
	return "", false
}

// LongestCommonSubstring returns the longest byte substring shared by s1 and
// s2. Among equally long matches the first one found scanning s1 wins. The
// result is a substring of s1.
func LongestCommonSubstring(s1, s2 string) string {
	if s1 == "" || s2 == "" {
		return ""
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	longest, xLongest := 0, 0

	for x := 1; x <= len(s1); x++ {
		for y := 1; y <= len(s2); y++ {
			if s1[x-1] == s2[y-1] {
				curr[y] = prev[y-1] + 1
				if curr[y] > longest {
					longest = curr[y]
					xLongest = x
				}
			} else {
				curr[y] = 0
			}
		}
		prev, curr = curr, prev
	}

	return s1[xLongest-longest : xLongest]
}
