package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every pipeline and HTTP event to a logger at debug level.
// It implements both [PipelineHooks] and [HTTPHooks].
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through logger, prefixed "hooks".
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

func (h *LogHooks) OnSearchStart(_ context.Context, algorithm, maze string, rows, cols int) {
	h.logger.Debug("search start", "algorithm", algorithm, "maze", maze, "rows", rows, "cols", cols)
}

func (h *LogHooks) OnSearchComplete(_ context.Context, algorithm, maze string, visited int, found bool, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("search failed", "algorithm", algorithm, "maze", maze, "err", err)
		return
	}
	h.logger.Debug("search done", "algorithm", algorithm, "maze", maze, "visited", visited, "found", found, "duration", duration)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render start", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render done", "format", format, "bytes", size, "duration", duration)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request start", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, statusCode int, duration time.Duration) {
	h.logger.Debug("request done", "method", method, "path", path, "status", statusCode, "duration", duration)
}

func (h *LogHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Debug("request error", "method", method, "path", path, "err", err)
}
