package prince

import (
	"context"
	"time"

	"github.com/jadiha/little-prince/internal/util"
)

// DefaultTimeout is the hard cap on one flavor-text call.
const DefaultTimeout = 8 * time.Second

// Service wraps a Messenger with a timeout and the fallback bank. Speak never
// fails.
type Service struct {
	messenger Messenger
	timeout   time.Duration
	pick      func(n int) int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithPicker makes fallback selection deterministic.
func WithPicker(pick func(n int) int) ServiceOption {
	return func(s *Service) { s.pick = pick }
}

// NewService builds a Service. A nil messenger always falls back.
func NewService(m Messenger, opts ...ServiceOption) *Service {
	s := &Service{messenger: m, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Speak asks the messenger for a line and falls back to the static bank on
// timeout, transport failure, a non-2xx answer or an empty message.
func (s *Service) Speak(ctx context.Context, req Request) Reply {
	if s == nil {
		return Reply{Message: PickFallback(req.Context, nil), Fallback: true}
	}
	if s.messenger == nil {
		return Reply{Message: PickFallback(req.Context, s.pick), Fallback: true}
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	msg, err := s.messenger.Message(ctx, req)
	if err != nil {
		util.Debugf("prince: %s falling back: %v", req.Context, err)
		return Reply{Message: PickFallback(req.Context, s.pick), Fallback: true}
	}
	return Reply{Message: msg}
}
