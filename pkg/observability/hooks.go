// Package observability provides hooks for instrumenting the formatting
// pipeline.
//
// Libraries emit events through the registered [PipelineHooks]; the default
// implementation does nothing. Programs that want metrics, tracing or
// debug logs register their own implementation once at startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myHooks{})
//	    // ... run application
//	}
//
// The pipeline reports each stage when it finishes:
//
//	observability.Pipeline().OnReadComplete(ctx, rows, cols, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the formatting pipeline.
type PipelineHooks interface {
	// OnReadComplete fires after input has been read and validated.
	// rows includes the header.
	OnReadComplete(ctx context.Context, rows, cols int, duration time.Duration, err error)

	// OnTransformComplete fires after the table has been wrapped into blocks.
	OnTransformComplete(ctx context.Context, blocks int, duration time.Duration, err error)

	// OnRenderComplete fires after the boxed text has been produced.
	OnRenderComplete(ctx context.Context, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnReadComplete(context.Context, int, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnTransformComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration, error)    {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
