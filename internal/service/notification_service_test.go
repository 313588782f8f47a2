package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoshare/ecoshare-backend/internal/model"
)

func TestNotifyReplacesCurrent(t *testing.T) {
	s := NewToastService(0)

	s.Notify("first", model.NoticeInfo)
	s.Notify("second", model.NoticeSuccess)

	notice, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "second", notice.Message)
	assert.Equal(t, model.NoticeSuccess, notice.Kind)
}

func TestDismiss(t *testing.T) {
	s := NewToastService(0)

	s.Notify("hello", model.NoticeInfo)
	s.Dismiss()
	_, ok := s.Current()
	assert.False(t, ok)

	// Dismissing with nothing shown is fine.
	s.Dismiss()
}

func TestAutoDismiss(t *testing.T) {
	s := NewToastService(20 * time.Millisecond)

	s.Notify("fleeting", model.NoticeSuccess)
	_, ok := s.Current()
	require.True(t, ok)

	deadline := time.After(time.Second)
	for {
		if _, ok := s.Current(); !ok {
			return
		}
		select {
		case <-deadline:
			t.Fatal("notice was not auto-dismissed")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestReplacementOutlivesPredecessorTTL(t *testing.T) {
	s := NewToastService(80 * time.Millisecond)

	s.Notify("first", model.NoticeInfo)
	time.Sleep(40 * time.Millisecond)
	s.Notify("second", model.NoticeInfo)

	// The first notice's TTL elapses here; the second must survive it.
	time.Sleep(50 * time.Millisecond)
	notice, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "second", notice.Message)
}
