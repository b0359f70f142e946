package commands

import "sync"

// StreamHandler collects streamed command output in arrival order and hands
// each line to a callback as it lands. Safe for the concurrent stdout and
// stderr reader goroutines of RunAndStream.
type StreamHandler struct {
	mu     sync.Mutex
	lines  []string
	onLine func(string)
}

// NewStreamHandler creates a handler. onLine may be nil.
func NewStreamHandler(onLine func(string)) *StreamHandler {
	return &StreamHandler{onLine: onLine}
}

// HandleStdout records a stdout line.
func (h *StreamHandler) HandleStdout(line string) {
	h.record(line)
}

// HandleStderr records a stderr line.
func (h *StreamHandler) HandleStderr(line string) {
	h.record(line)
}

func (h *StreamHandler) record(line string) {
	h.mu.Lock()
	h.lines = append(h.lines, line)
	h.mu.Unlock()

	if h.onLine != nil {
		h.onLine(line)
	}
}

// Lines returns a copy of the collected output.
func (h *StreamHandler) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.lines...)
}

// Clear drops the collected output.
func (h *StreamHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = nil
}
