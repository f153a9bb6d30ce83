// Package gldebug turns driver debug output into structured log records and
// treats driver-reported warnings and errors as contract violations.
package gldebug

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Severity mirrors the GL_DEBUG_SEVERITY_* enum values.
type Severity uint32

const (
	SeverityHigh         Severity = 0x9146
	SeverityMedium       Severity = 0x9147
	SeverityLow          Severity = 0x9148
	SeverityNotification Severity = 0x826B
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	case SeverityNotification:
		return "notification"
	default:
		return fmt.Sprintf("severity(%#x)", uint32(s))
	}
}

// IsViolation reports whether a message of this severity is treated as a bug.
func (s Severity) IsViolation() bool {
	return s == SeverityHigh || s == SeverityMedium || s == SeverityLow
}

// Message is one driver debug message.
type Message struct {
	Source   uint32
	Type     uint32
	ID       uint32
	Severity Severity
	Text     string
}

// ErrDriverViolation is wrapped by every *Violation.
var ErrDriverViolation = errors.New("graphics driver reported a violation")

// Violation is a driver message at low severity or above.
type Violation struct {
	Message Message
}

func (v *Violation) Error() string {
	return fmt.Sprintf("OpenGL Error: %s (id %d, %s severity)", v.Message.Text, v.Message.ID, v.Message.Severity)
}

func (v *Violation) Unwrap() error { return ErrDriverViolation }

// Sink receives driver debug messages. Notifications are traced; violations
// are logged and recorded, and with FailFast the sink panics with the
// *Violation.
type Sink struct {
	Logger   *slog.Logger
	FailFast bool

	mu    sync.Mutex
	first *Violation
	count int
}

// NewSink creates a sink logging to logger.
func NewSink(logger *slog.Logger, failFast bool) *Sink {
	return &Sink{Logger: logger, FailFast: failFast}
}

// Handle processes one message. Drivers invoke it synchronously from the
// thread that issued the offending call.
func (s *Sink) Handle(m Message) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !m.Severity.IsViolation() {
		logger.Log(context.Background(), slog.LevelDebug, m.Text,
			slog.Uint64("id", uint64(m.ID)),
			slog.Uint64("source", uint64(m.Source)),
			slog.Uint64("type", uint64(m.Type)))
		return
	}

	v := &Violation{Message: m}
	logger.Error("OpenGL Error", slog.String("message", m.Text),
		slog.String("severity", m.Severity.String()),
		slog.Uint64("id", uint64(m.ID)))

	s.mu.Lock()
	if s.first == nil {
		s.first = v
	}
	s.count++
	s.mu.Unlock()

	if s.FailFast {
		panic(v)
	}
}

// Err returns the first recorded violation, or nil.
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.first == nil {
		return nil
	}
	return s.first
}

// Count returns the number of violations seen so far.
func (s *Sink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
