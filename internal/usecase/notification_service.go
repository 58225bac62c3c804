package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/notification"
	"worklink/internal/repository"
)

// RealtimePusher pushes a stored notification to any live connections of
// its user. The websocket hub satisfies this.
type RealtimePusher interface {
	NotifyUser(n notification.Notification)
}

// MailQueue accepts outbound mail without blocking; false means dropped.
type MailQueue interface {
	Enqueue(to, subject, body string) bool
}

// NotificationService is the Notifier implementation: it stores the inbox
// row, pushes it over websocket, and queues an email. Every channel is
// best-effort; a failed channel is logged and never surfaces to the flow
// that raised the notification.
type NotificationService struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	pusher        RealtimePusher
	mail          MailQueue
	logger        *log.Logger
	now           func() time.Time
}

func NewNotificationService(
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	pusher RealtimePusher,
	mail MailQueue,
	logger *log.Logger,
) *NotificationService {
	if logger == nil {
		logger = log.Default()
	}
	return &NotificationService{
		notifications: notifications,
		users:         users,
		pusher:        pusher,
		mail:          mail,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, kind, message string) {
	if userID == uuid.Nil || message == "" {
		return
	}

	n := notification.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}

	if s.notifications != nil {
		if err := s.notifications.Create(ctx, n); err != nil {
			s.logger.Printf("Notification store failed | user=%s kind=%s error=%v", userID, kind, err)
		}
	}

	if s.pusher != nil {
		s.pusher.NotifyUser(n)
	}

	s.sendMail(ctx, n)
}

func (s *NotificationService) sendMail(ctx context.Context, n notification.Notification) {
	if s.mail == nil || s.users == nil {
		return
	}
	usr, err := s.users.GetByID(ctx, n.UserID)
	if err != nil {
		s.logger.Printf("Notification mail skipped | user=%s error=%v", n.UserID, err)
		return
	}
	if !usr.Active || usr.Email == "" {
		return
	}
	s.mail.Enqueue(usr.Email, mailSubject(n.Kind), n.Message)
}

func mailSubject(kind string) string {
	switch kind {
	case notification.KindApplicationStatus:
		return "Your application status changed"
	case notification.KindNewApplication:
		return "New application received"
	case notification.KindCourseInquiry:
		return "New course inquiry"
	case notification.KindJobClosed:
		return "A job posting was closed"
	default:
		return "WorkLink update"
	}
}
