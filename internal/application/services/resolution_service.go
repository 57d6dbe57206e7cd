package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mediscan/mediscan/internal/domain/entities"
	"github.com/mediscan/mediscan/internal/domain/repositories"
	apperrors "github.com/mediscan/mediscan/pkg/errors"
)

// ScanState is the resolution pipeline state for one scan session.
type ScanState int

const (
	// StateIdle means no decode has been armed.
	StateIdle ScanState = iota

	// StateResolving means the session is armed and waiting for a decode.
	StateResolving

	// StateResolved means the last decode matched a catalog record.
	StateResolved

	// StateNotFound means the last decode matched nothing.
	StateNotFound
)

func (s ScanState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateResolved:
		return "resolved"
	case StateNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ScanResult is the terminal outcome of one decoded code.
type ScanResult struct {
	State ScanState
	Code  string

	// Record and Feedback are set in the resolved state.
	Record   *entities.MedicationRecord
	Feedback []entities.FeedbackEntry

	// Message is the user-facing text for the not-found state; it includes
	// the decoded code.
	Message string
}

// ResolutionService turns decoded code strings into display-ready results,
// recording scan history and loading feedback on a hit. History and feedback
// persistence are best-effort: their failures are logged and never block the
// resolved record.
type ResolutionService struct {
	meds     repositories.MedicationRepository
	history  repositories.ScanHistoryRepository
	feedback repositories.FeedbackRepository
}

// NewResolutionService creates a new resolution service.
func NewResolutionService(
	meds repositories.MedicationRepository,
	history repositories.ScanHistoryRepository,
	feedback repositories.FeedbackRepository,
) *ResolutionService {
	return &ResolutionService{meds: meds, history: history, feedback: feedback}
}

// NewSession creates an idle scan session.
func (s *ResolutionService) NewSession() *ScanSession {
	return &ScanSession{svc: s, state: StateIdle}
}

// ScanSession serializes decode callbacks for one scanning surface. The
// decode collaborator runs at its own cadence and may deliver codes after
// the session has moved on; only the first decode of an armed session is
// acted on, and nothing mutates the session after Stop.
type ScanSession struct {
	svc *ResolutionService

	mu      sync.Mutex
	state   ScanState
	stopped bool
	result  *ScanResult
}

// Begin arms the session for the next decode, discarding any previous result.
func (sess *ScanSession) Begin() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.stopped = false
	sess.state = StateResolving
	sess.result = nil
}

// Stop invalidates the session. In-flight decode callbacks that land after
// this point are ignored until the next Begin.
func (sess *ScanSession) Stop() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.stopped = true
	sess.state = StateIdle
	sess.result = nil
}

// HandleDecoded consumes one decoded code string. It returns the result for
// the first decode of an armed session, and nil for anything delivered while
// the session is stopped or already holds a result.
func (sess *ScanSession) HandleDecoded(ctx context.Context, code string) *ScanResult {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.stopped || sess.state != StateResolving {
		return nil
	}

	result := sess.svc.resolve(ctx, code)
	sess.state = result.State
	sess.result = result
	return result
}

// State returns the current session state.
func (sess *ScanSession) State() ScanState {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state
}

// Result returns the last resolution outcome, or nil before one exists.
func (sess *ScanSession) Result() *ScanResult {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.result
}

func (s *ResolutionService) resolve(ctx context.Context, code string) *ScanResult {
	rec, err := s.meds.Lookup(ctx, code)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			log.Error().Err(err).Str("code", code).Msg("catalog lookup failed")
		}
		// A miss has no persistence side effects.
		return &ScanResult{
			State:   StateNotFound,
			Code:    code,
			Message: fmt.Sprintf("no information found for code: %s", code),
		}
	}

	if err := s.history.Record(ctx, code); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("failed to record scan history")
	}

	feedback, err := s.feedback.GetForDrug(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("code", code).Msg("failed to load feedback")
		feedback = nil
	}

	return &ScanResult{
		State:    StateResolved,
		Code:     code,
		Record:   rec,
		Feedback: feedback,
	}
}
