// Package chunker splits raw document text into bounded-size passages
// suitable for embedding.
package chunker

import "strings"

// Split breaks text into passages of roughly targetSize characters.
//
// Tokens are whitespace-delimited words. Words accumulate into the current
// passage, counting one separator character per word; once the running count
// reaches targetSize the passage is closed (words rejoined with single
// spaces) and a new one begins. A word is never split, so a single word
// longer than targetSize forms a passage on its own. The final passage holds
// whatever remains and may be shorter than targetSize.
//
// Split is a pure function: same input, same output. Empty or all-whitespace
// text yields no passages. targetSize must be positive; callers validate.
func Split(text string, targetSize int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var passages []string
	var current []string
	size := 0

	for _, word := range words {
		current = append(current, word)
		size += len(word) + 1 // +1 for the separator

		if size >= targetSize {
			passages = append(passages, strings.Join(current, " "))
			current = current[:0]
			size = 0
		}
	}

	if len(current) > 0 {
		passages = append(passages, strings.Join(current, " "))
	}

	return passages
}
