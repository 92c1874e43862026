// Package chunker splits raw document text into fixed-size word-count
// windows, the atomic unit of retrieval.
package chunker

import "strings"

// DefaultWindow is the number of words per chunk when callers do not
// override it.
const DefaultWindow = 150

// Split breaks text on whitespace and groups consecutive words into windows
// of exactly window words; the final window may be shorter. Each window is
// joined back with single spaces. Empty or whitespace-only input yields no
// chunks. A non-positive window falls back to DefaultWindow.
func Split(text string, window int) []string {
	if window <= 0 {
		window = DefaultWindow
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	chunks := make([]string, 0, (len(words)+window-1)/window)
	for i := 0; i < len(words); i += window {
		end := i + window
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}
