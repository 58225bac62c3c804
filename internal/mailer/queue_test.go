package mailer

import (
	"context"
	"errors"
	"log"
	"sync"
	"testing"
	"time"

	"worklink/internal/config"
)

type flakyMailer struct {
	mu        sync.Mutex
	failFirst int
	calls     []Message
}

func (m *flakyMailer) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, msg)
	if len(m.calls) <= m.failFirst {
		return errors.New("smtp unavailable")
	}
	return nil
}

func (m *flakyMailer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func testQueueConfig(size int) config.MailerConfig {
	return config.MailerConfig{
		FromAddress: "no-reply@worklink.local",
		QueueSize:   size,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	}
}

func TestQueueDeliversWithRetries(t *testing.T) {
	m := &flakyMailer{failFirst: 2}
	q := NewQueue(m, testQueueConfig(8), log.New(testWriter{t}, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	if !q.Enqueue("seeker@example.com", "Application update", "Your application moved to IN_REVIEW") {
		t.Fatalf("Enqueue rejected message with room in the queue")
	}
	q.Stop()

	if got := m.callCount(); got != 3 {
		t.Fatalf("expected 3 send attempts (2 failures + 1 success), got %d", got)
	}
	m.mu.Lock()
	last := m.calls[len(m.calls)-1]
	m.mu.Unlock()
	if last.From != "no-reply@worklink.local" || last.To != "seeker@example.com" {
		t.Fatalf("unexpected envelope: from=%q to=%q", last.From, last.To)
	}
}

func TestQueueGivesUpAfterMaxAttempts(t *testing.T) {
	m := &flakyMailer{failFirst: 100}
	q := NewQueue(m, testQueueConfig(8), log.New(testWriter{t}, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	q.Enqueue("seeker@example.com", "subject", "body")
	q.Stop()

	if got := m.callCount(); got != 3 {
		t.Fatalf("expected exactly 3 attempts before giving up, got %d", got)
	}
}

func TestQueueEnqueueDropsWhenFull(t *testing.T) {
	m := &flakyMailer{}
	q := NewQueue(m, testQueueConfig(1), log.New(testWriter{t}, "", 0))

	if !q.Enqueue("a@example.com", "s", "b") {
		t.Fatalf("first enqueue should be accepted")
	}
	if q.Enqueue("b@example.com", "s", "b") {
		t.Fatalf("second enqueue should be dropped, buffer is full")
	}
}

func TestQueueEnqueueAfterStopIsDropped(t *testing.T) {
	m := &flakyMailer{}
	q := NewQueue(m, testQueueConfig(8), log.New(testWriter{t}, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)
	q.Stop()

	if q.Enqueue("late@example.com", "s", "b") {
		t.Fatalf("enqueue after stop must be dropped")
	}
	if got := m.callCount(); got != 0 {
		t.Fatalf("no sends expected after stop, got %d", got)
	}
	// Stop stays idempotent.
	q.Stop()
}

func TestQueueEnqueueRejectsEmptyRecipient(t *testing.T) {
	q := NewQueue(&flakyMailer{}, testQueueConfig(1), log.New(testWriter{t}, "", 0))
	if q.Enqueue("", "s", "b") {
		t.Fatalf("empty recipient must be rejected")
	}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
