package notify

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Advisor surfaces advisory, non-fatal outcomes of store operations to the
// active session. Failures reported here never crash the session; they are
// the programmatic stand-in for user-facing notifications.
type Advisor interface {
	Success(msg string)
	Error(msg string)
}

// LogAdvisor reports advisories through the global zerolog logger.
type LogAdvisor struct{}

func (LogAdvisor) Success(msg string) {
	log.Info().Str("advisory", "success").Msg(msg)
}

func (LogAdvisor) Error(msg string) {
	log.Warn().Str("advisory", "error").Msg(msg)
}

// Recorder captures advisories for inspection in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}
