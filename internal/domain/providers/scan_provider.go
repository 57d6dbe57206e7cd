package providers

import "context"

// ScanProvider is the external decode collaborator: it turns camera frames
// (or any other input source) into decoded code strings delivered via
// callback, at its own cadence, until stopped.
type ScanProvider interface {
	// Start begins a decode session. onDecoded receives each decoded string;
	// onError receives retryable decode failures as user-facing messages.
	// Callbacks stop once Stop is called or ctx is cancelled.
	Start(ctx context.Context, onDecoded func(code string), onError func(message string)) error

	// Stop ends the session. Decodes already in flight are discarded.
	Stop() error
}
