package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Built 4 plots (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports entity and layout events at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnCreate(class, id string) {
	h.logger.Debug("Created", "class", class, "id", shortID(id))
}

func (h *logHooks) OnChange(class, id, attr string) {
	h.logger.Debug("Changed", "class", class, "id", shortID(id), "attr", attr)
}

func (h *logHooks) OnLink(class, id, attr, targetID string) {
	h.logger.Debug("Linked", "class", class, "id", shortID(id), "attr", attr, "target", shortID(targetID))
}

func (h *logHooks) OnUnlink(class, id, attr, targetID string) {
	h.logger.Debug("Unlinked", "class", class, "id", shortID(id), "attr", attr, "target", shortID(targetID))
}

func (h *logHooks) OnLayoutBuilt(kind string, children int) {
	h.logger.Debug("Layout built", "kind", kind, "children", children)
}

func (h *logHooks) OnToolsMerged(plots, tools int) {
	h.logger.Debug("Tools merged", "plots", plots, "tools", tools)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
