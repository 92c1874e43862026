package chunker

import (
	"fmt"
	"strings"
	"testing"
)

// TestSplit_WindowInvariants checks that N words split with window W yield
// ceil(N/W) chunks, every chunk but the last holds exactly W words, and the
// concatenated words reproduce the original sequence.
func TestSplit_WindowInvariants(t *testing.T) {
	cases := []struct {
		words  int
		window int
	}{
		{words: 1, window: 5},
		{words: 5, window: 5},
		{words: 6, window: 5},
		{words: 17, window: 4},
		{words: 300, window: 150},
		{words: 151, window: 150},
	}
	for _, tc := range cases {
		words := make([]string, tc.words)
		for i := range words {
			words[i] = fmt.Sprintf("w%d", i)
		}
		text := strings.Join(words, " ")

		chunks := Split(text, tc.window)

		wantChunks := (tc.words + tc.window - 1) / tc.window
		if len(chunks) != wantChunks {
			t.Fatalf("Split(%d words, window %d) = %d chunks, want %d", tc.words, tc.window, len(chunks), wantChunks)
		}
		var rejoined []string
		for i, c := range chunks {
			n := len(strings.Fields(c))
			if i < len(chunks)-1 && n != tc.window {
				t.Fatalf("chunk %d has %d words, want %d", i, n, tc.window)
			}
			rejoined = append(rejoined, strings.Fields(c)...)
		}
		if strings.Join(rejoined, " ") != text {
			t.Fatalf("rejoined chunks do not reproduce the original word sequence")
		}
	}
}

func TestSplit_CollapsesWhitespace(t *testing.T) {
	chunks := Split("  one \t two\n\nthree  ", 2)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0] != "one two" || chunks[1] != "three" {
		t.Fatalf("unexpected chunks: %q", chunks)
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	if chunks := Split("", 10); len(chunks) != 0 {
		t.Fatalf("expected no chunks for empty input, got %d", len(chunks))
	}
	if chunks := Split("   \n\t ", 10); len(chunks) != 0 {
		t.Fatalf("expected no chunks for whitespace-only input, got %d", len(chunks))
	}
}

func TestSplit_DefaultWindow(t *testing.T) {
	words := make([]string, DefaultWindow+1)
	for i := range words {
		words[i] = "w"
	}
	chunks := Split(strings.Join(words, " "), 0)
	if len(chunks) != 2 {
		t.Fatalf("expected default window of %d to produce 2 chunks, got %d", DefaultWindow, len(chunks))
	}
}
