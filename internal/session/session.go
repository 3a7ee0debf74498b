// Package session holds the process-wide state of one assistant session: the
// last saved recording and the last analysis result. There is exactly one
// session per process; it is created at startup and cleared on demand, never
// shared across runs.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/domain/meeting"
)

type Session struct {
	mu sync.Mutex

	id        string
	startedAt time.Time

	savedPath string
	rms       float64
	result    *meeting.AnalysisResult
}

func New() *Session {
	return &Session{
		id:        uuid.NewString(),
		startedAt: time.Now(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) StartedAt() time.Time { return s.startedAt }

// SetRecording records the saved path and loudness of the latest recording.
func (s *Session) SetRecording(path string, rms float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedPath = path
	s.rms = rms
}

// SetResult overwrites the previous analysis result. Results are never merged.
func (s *Session) SetResult(r meeting.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &r
}

// Result returns the last analysis result, or false if none is stored yet.
func (s *Session) Result() (meeting.AnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return meeting.AnalysisResult{}, false
	}
	return *s.result, true
}

func (s *Session) SavedPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savedPath
}

func (s *Session) RMS() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rms
}

// Clear resets everything but the session identity.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedPath = ""
	s.rms = 0
	s.result = nil
}
