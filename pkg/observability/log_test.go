package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	ctx := context.Background()

	h.OnSearchStart(ctx, "bfs", "spiral", 9, 9)
	h.OnSearchComplete(ctx, "bfs", "spiral", 45, true, time.Millisecond, nil)
	h.OnRenderComplete(ctx, "svg", 0, 0, errors.New("boom"))
	h.OnResponse(ctx, "POST", "/bfs", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"hooks", "search start", "visited=45", "render failed", "boom", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))

	h.OnRequest(context.Background(), "GET", "/mazes")

	if buf.Len() != 0 {
		t.Errorf("debug event logged at info level: %q", buf.String())
	}
}
