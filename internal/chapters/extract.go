// Package chapters finds references to Gita chapters in free text.
package chapters

import (
	"regexp"
	"sort"
	"strconv"
)

// The Gita has 18 chapters; anything outside that range is noise.
const (
	MinChapter = 1
	MaxChapter = 18
)

// chapterRef matches "Chapter 7" and the Hindi form "अध्याय 7".
// Digits are ASCII; whitespace before the number is optional.
var chapterRef = regexp.MustCompile(`(?i)(?:chapter|अध्याय)\s*([0-9]+)`)

// Extract returns the set of valid chapter numbers mentioned in text,
// sorted ascending. It is a pure function: no state, deterministic.
func Extract(text string) []int {
	matches := chapterRef.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[int]bool)
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n < MinChapter || n > MaxChapter {
			continue
		}
		seen[n] = true
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
