package service

import (
	"sync"
	"time"

	"github.com/ecoshare/ecoshare-backend/internal/model"
)

// ToastService holds at most one transient notice. Notify replaces whatever
// is currently shown; a notice disappears after the TTL or on explicit
// dismissal, whichever comes first.
type ToastService interface {
	Notify(message string, kind model.NoticeKind)
	Dismiss()
	Current() (model.Notice, bool)
}

type toastService struct {
	mu      sync.Mutex
	ttl     time.Duration
	seq     uint64
	current *model.Notice
	timer   *time.Timer
}

func NewToastService(ttl time.Duration) ToastService {
	return &toastService{ttl: ttl}
}

func (s *toastService) Notify(message string, kind model.NoticeKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	seq := s.seq
	s.current = &model.Notice{
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.ttl > 0 {
		// seq guards against a stale timer dismissing a newer notice.
		s.timer = time.AfterFunc(s.ttl, func() {
			s.expire(seq)
		})
	}
}

func (s *toastService) expire(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == seq {
		s.current = nil
		s.timer = nil
	}
}

func (s *toastService) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.current = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *toastService) Current() (model.Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.Notice{}, false
	}
	return *s.current, true
}
