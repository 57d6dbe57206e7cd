// Package scanner provides decode collaborators that feed code strings into
// a scan session. Symbol decoding itself always happens outside this module;
// these adapters only deliver already-decoded strings.
package scanner

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/mediscan/mediscan/internal/domain/providers"
	apperrors "github.com/mediscan/mediscan/pkg/errors"
)

// ReaderProvider implements ScanProvider over a line-oriented reader. Each
// non-empty line is delivered as one decoded symbol. It is the CLI's stand-in
// for a camera scanner.
type ReaderProvider struct {
	r io.Reader

	mu      sync.Mutex
	started bool
	stopped bool
	done    chan struct{}
}

// NewReaderProvider creates a provider reading from r.
func NewReaderProvider(r io.Reader) *ReaderProvider {
	return &ReaderProvider{r: r, done: make(chan struct{})}
}

// Start begins delivering decoded lines until the reader is drained, Stop is
// called, or ctx is cancelled. It returns immediately; callbacks run on a
// single background goroutine, so they are never concurrent with each other.
func (p *ReaderProvider) Start(ctx context.Context, onDecoded func(code string), onError func(message string)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return apperrors.NewValidationError("scan provider already started")
	}
	if p.stopped {
		return apperrors.NewValidationError("scan provider already stopped")
	}
	p.started = true

	go p.run(ctx, onDecoded, onError)
	return nil
}

func (p *ReaderProvider) run(ctx context.Context, onDecoded func(string), onError func(string)) {
	defer close(p.done)

	lines := bufio.NewScanner(p.r)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}
		if ctx.Err() != nil || p.isStopped() {
			return
		}
		onDecoded(line)
	}

	if err := lines.Err(); err != nil && !p.isStopped() && onError != nil {
		onError(err.Error())
	}
}

// Stop ends the session. The background goroutine may still be blocked on a
// read, but anything it reads afterwards is discarded.
func (p *ReaderProvider) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	return nil
}

// Done is closed once the input is drained or the session ends.
func (p *ReaderProvider) Done() <-chan struct{} {
	return p.done
}

func (p *ReaderProvider) isStopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}

var _ providers.ScanProvider = (*ReaderProvider)(nil)
