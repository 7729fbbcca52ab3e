package testsupport

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Recorder is a slog.Handler that captures every record so tests can assert
// on emitted warnings without scraping formatted output.
type Recorder struct {
	mu      sync.Mutex
	records []slog.Record
	attrs   []slog.Attr
}

// NewRecorder returns a Recorder and a logger writing into it.
func NewRecorder() (*Recorder, *slog.Logger) {
	r := &Recorder{}
	return r, slog.New(r)
}

func (r *Recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *Recorder) Handle(_ context.Context, record slog.Record) error {
	clone := record.Clone()
	clone.AddAttrs(r.attrs...)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, clone)
	return nil
}

// WithAttrs shares the backing store so records captured through derived
// loggers stay visible on the root Recorder.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sharedRecorder{root: r, attrs: append(append([]slog.Attr(nil), r.attrs...), attrs...)}
}

func (r *Recorder) WithGroup(string) slog.Handler { return r }

// Messages returns the messages of all records at or above level.
func (r *Recorder) Messages(level slog.Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, record := range r.records {
		if record.Level >= level {
			out = append(out, record.Message)
		}
	}
	return out
}

// CountContaining returns how many records at or above level contain substr.
func (r *Recorder) CountContaining(level slog.Level, substr string) int {
	n := 0
	for _, msg := range r.Messages(level) {
		if strings.Contains(msg, substr) {
			n++
		}
	}
	return n
}

type sharedRecorder struct {
	root  *Recorder
	attrs []slog.Attr
}

func (s *sharedRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (s *sharedRecorder) Handle(ctx context.Context, record slog.Record) error {
	clone := record.Clone()
	clone.AddAttrs(s.attrs...)
	return s.root.Handle(ctx, clone)
}

func (s *sharedRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sharedRecorder{root: s.root, attrs: append(append([]slog.Attr(nil), s.attrs...), attrs...)}
}

func (s *sharedRecorder) WithGroup(string) slog.Handler { return s }
