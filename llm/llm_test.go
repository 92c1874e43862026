package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAnswerPrompt(t *testing.T) {
	p := AnswerPrompt("what is it?", "the thing is blue")
	if !strings.Contains(p, "the thing is blue") {
		t.Fatalf("prompt missing grounding: %q", p)
	}
	if !strings.Contains(p, "what is it?") {
		t.Fatalf("prompt missing question: %q", p)
	}
	if !strings.Contains(p, "ONLY the context") {
		t.Fatalf("prompt missing grounding instruction: %q", p)
	}
}

func TestSummaryPrompt(t *testing.T) {
	p := SummaryPrompt([]string{"q1", "q2"})
	if !strings.Contains(p, "q1\nq2") {
		t.Fatalf("prompt missing history lines: %q", p)
	}
}

func TestGrounding(t *testing.T) {
	g := Grounding([]string{"a", "b"})
	if g != "a\n\nb" {
		t.Fatalf("Grounding = %q", g)
	}
}

const chatResponse = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "model": "gpt-4o-mini",
  "choices": [
    {"index": 0, "finish_reason": "stop",
     "message": {"role": "assistant", "content": "  It is blue.  "}}
  ],
  "usage": {"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14}
}`

func TestClient_Answer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatResponse))
	}))
	defer srv.Close()

	c, err := New("test-key", "gpt-4o-mini", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	out, err := c.Answer(context.Background(), "what color?", "the thing is blue")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if out != "It is blue." {
		t.Fatalf("Answer = %q, want trimmed content", out)
	}
}

func TestClient_SummarizeEmpty(t *testing.T) {
	c, err := New("test-key", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := c.Summarize(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty history")
	}
}
