package main

// history keeps a short rolling window of recent questions for /summarize.
// It operates on questions only; the vector index is not involved.
type history struct {
	max   int
	items []string
}

func newHistory(max int) *history {
	return &history{max: max}
}

func (h *history) add(q string) {
	h.items = append(h.items, q)
	if len(h.items) > h.max {
		h.items = h.items[len(h.items)-h.max:]
	}
}

func (h *history) recent() []string {
	return h.items
}
