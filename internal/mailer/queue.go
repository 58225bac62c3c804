package mailer

import (
	"context"
	"log"
	"sync"
	"time"

	"worklink/internal/config"
)

// Queue decouples email delivery from request handling. Enqueue never
// blocks; a full buffer drops the message with a log line. One worker
// drains the buffer and retries failed sends with a growing delay up to
// the configured attempt cap.
type Queue struct {
	mailer Mailer
	logger *log.Logger

	from        string
	maxAttempts int
	retryDelay  time.Duration

	messages chan Message
	wg       sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewQueue(m Mailer, cfg config.MailerConfig, logger *log.Logger) *Queue {
	if logger == nil {
		logger = log.Default()
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = 256
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 30 * time.Second
	}
	return &Queue{
		mailer:      m,
		logger:      logger,
		from:        cfg.FromAddress,
		maxAttempts: attempts,
		retryDelay:  delay,
		messages:    make(chan Message, size),
	}
}

// Enqueue queues one message for delivery and reports whether it was
// accepted. Messages arriving after Stop are dropped, not panicked on.
func (q *Queue) Enqueue(to, subject, body string) bool {
	if q == nil || to == "" {
		return false
	}
	msg := Message{From: q.from, To: to, Subject: subject, Body: body}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Printf("Mail dropped | to=%s reason=queue_stopped", to)
		return false
	}
	select {
	case q.messages <- msg:
		return true
	default:
		q.logger.Printf("Mail dropped | to=%s reason=queue_full", to)
		return false
	}
}

// Start launches the delivery worker. The worker exits when ctx is
// cancelled or the queue is stopped.
func (q *Queue) Start(ctx context.Context) {
	if q == nil {
		return
	}
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-q.messages:
				if !ok {
					return
				}
				q.deliver(ctx, msg)
			}
		}
	}()
}

// Stop closes the queue and waits for the worker to drain what remains.
func (q *Queue) Stop() {
	if q == nil {
		return
	}
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.messages)
	}
	q.mu.Unlock()
	q.wg.Wait()
}

func (q *Queue) deliver(ctx context.Context, msg Message) {
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		err := q.mailer.Send(ctx, msg)
		if err == nil {
			return
		}
		q.logger.Printf("Mail send failed | to=%s attempt=%d/%d error=%v", msg.To, attempt, q.maxAttempts, err)
		if attempt == q.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(q.retryDelay * time.Duration(attempt)):
		}
	}
	q.logger.Printf("Mail abandoned | to=%s attempts=%d", msg.To, q.maxAttempts)
}
