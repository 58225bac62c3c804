package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/application"
	"worklink/internal/domain/course"
	"worklink/internal/domain/job"
	"worklink/internal/domain/notification"
	"worklink/internal/domain/profile"
	"worklink/internal/domain/user"
	"worklink/internal/repository"
)

type mockJobRepo struct {
	byID   map[uuid.UUID]job.Job
	open   []job.Job
	recent []job.Job
	mine   []job.Job
	err    error

	created   []job.Job
	updated   []job.Job
	statusSet map[uuid.UUID]string
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{byID: make(map[uuid.UUID]job.Job), statusSet: make(map[uuid.UUID]string)}
}

func (m *mockJobRepo) add(j job.Job) {
	m.byID[j.ID] = j
	if j.IsOpen() {
		m.open = append(m.open, j)
	}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, j)
	m.byID[j.ID] = j
	return nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, j)
	m.byID[j.ID] = j
	return nil
}

func (m *mockJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) FindOpenJobs(context.Context) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.open, nil
}

func (m *mockJobRepo) FindOpenJobsExcluding(_ context.Context, excluded map[uuid.UUID]struct{}) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, 0, len(m.open))
	for _, j := range m.open {
		if _, skip := excluded[j.ID]; skip {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (m *mockJobRepo) FindRecentOpenJobs(_ context.Context, limit int) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.recent) > limit {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

func (m *mockJobRepo) ListOpen(context.Context, repository.JobFilter) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.open, nil
}

func (m *mockJobRepo) ListByEmployer(context.Context, uuid.UUID, int, int) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.mine, nil
}

func (m *mockJobRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	if m.err != nil {
		return m.err
	}
	j, ok := m.byID[id]
	if !ok {
		return job.ErrNotFound
	}
	j.Status = status
	m.byID[id] = j
	m.statusSet[id] = status
	return nil
}

func (m *mockJobRepo) CloseExpired(context.Context, time.Time, int) (int64, error) {
	return 0, m.err
}

func (m *mockJobRepo) Count(context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.byID), nil
}

type mockProfileRepo struct {
	seeker    profile.SeekerProfile
	seekerErr error

	employer    profile.EmployerProfile
	employerErr error
	center      profile.CenterProfile
	centerErr   error

	upsertedSeekers   []profile.SeekerProfile
	upsertedEmployers []profile.EmployerProfile
	upsertedCenters   []profile.CenterProfile
	upsertErr         error
}

func (m *mockProfileRepo) FindBySeekerID(context.Context, uuid.UUID) (profile.SeekerProfile, error) {
	if m.seekerErr != nil {
		return profile.SeekerProfile{}, m.seekerErr
	}
	return m.seeker, nil
}

func (m *mockProfileRepo) UpsertSeeker(_ context.Context, p profile.SeekerProfile) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upsertedSeekers = append(m.upsertedSeekers, p)
	return nil
}

func (m *mockProfileRepo) FindEmployerByUserID(context.Context, uuid.UUID) (profile.EmployerProfile, error) {
	if m.employerErr != nil {
		return profile.EmployerProfile{}, m.employerErr
	}
	return m.employer, nil
}

func (m *mockProfileRepo) UpsertEmployer(_ context.Context, p profile.EmployerProfile) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upsertedEmployers = append(m.upsertedEmployers, p)
	return nil
}

func (m *mockProfileRepo) FindCenterByUserID(context.Context, uuid.UUID) (profile.CenterProfile, error) {
	if m.centerErr != nil {
		return profile.CenterProfile{}, m.centerErr
	}
	return m.center, nil
}

func (m *mockProfileRepo) UpsertCenter(_ context.Context, p profile.CenterProfile) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upsertedCenters = append(m.upsertedCenters, p)
	return nil
}

type mockApplicationRepo struct {
	byID     map[uuid.UUID]application.Application
	applied  map[uuid.UUID]struct{}
	bySeeker []application.Application
	byJob    []application.Application

	err       error
	createErr error

	created   []application.Application
	statusSet map[uuid.UUID]application.Status
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{
		byID:      make(map[uuid.UUID]application.Application),
		applied:   make(map[uuid.UUID]struct{}),
		statusSet: make(map[uuid.UUID]application.Status),
	}
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, a)
	m.byID[a.ID] = a
	return nil
}

func (m *mockApplicationRepo) FindByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) FindJobIDsBySeeker(context.Context, uuid.UUID) (map[uuid.UUID]struct{}, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.applied, nil
}

func (m *mockApplicationRepo) ListBySeeker(context.Context, uuid.UUID, int, int) ([]application.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.bySeeker, nil
}

func (m *mockApplicationRepo) ListByJob(context.Context, uuid.UUID, int, int) ([]application.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byJob, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	if m.err != nil {
		return m.err
	}
	a, ok := m.byID[id]
	if !ok {
		return application.ErrNotFound
	}
	a.Status = status
	m.byID[id] = a
	m.statusSet[id] = status
	return nil
}

func (m *mockApplicationRepo) Count(context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.byID), nil
}

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
	users   []user.User
	counts  map[string]int

	err       error
	createErr error

	activeSet map[uuid.UUID]bool
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:      make(map[uuid.UUID]user.User),
		byEmail:   make(map[string]user.User),
		activeSet: make(map[uuid.UUID]bool),
	}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.err != nil {
		return m.err
	}
	if _, exists := m.byEmail[u.Email]; exists {
		return user.ErrDuplicateEmail
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ListByRole(context.Context, string, int, int) ([]user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *mockUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	if m.err != nil {
		return m.err
	}
	u, ok := m.byID[id]
	if ok {
		u.Active = active
		m.byID[id] = u
	}
	m.activeSet[id] = active
	return nil
}

func (m *mockUserRepo) CountByRole(context.Context) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.counts, nil
}

type mockCourseRepo struct {
	byID      map[uuid.UUID]course.Course
	active    []course.Course
	mine      []course.Course
	inquiries []course.Inquiry
	err       error

	created         []course.Course
	updated         []course.Course
	createdInquiries []course.Inquiry
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{byID: make(map[uuid.UUID]course.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, c course.Course) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, c)
	m.byID[c.ID] = c
	return nil
}

func (m *mockCourseRepo) Update(_ context.Context, c course.Course) error {
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, c)
	m.byID[c.ID] = c
	return nil
}

func (m *mockCourseRepo) FindByID(_ context.Context, id uuid.UUID) (course.Course, error) {
	if m.err != nil {
		return course.Course{}, m.err
	}
	c, ok := m.byID[id]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	return c, nil
}

func (m *mockCourseRepo) ListActive(context.Context, int, int) ([]course.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.active, nil
}

func (m *mockCourseRepo) ListByCenter(context.Context, uuid.UUID, int, int) ([]course.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.mine, nil
}

func (m *mockCourseRepo) CreateInquiry(_ context.Context, q course.Inquiry) error {
	if m.err != nil {
		return m.err
	}
	m.createdInquiries = append(m.createdInquiries, q)
	return nil
}

func (m *mockCourseRepo) ListInquiriesByCenter(context.Context, uuid.UUID, int, int) ([]course.Inquiry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.inquiries, nil
}

type mockBookmarkRepo struct {
	jobs    []job.Job
	err     error
	saved   [][2]uuid.UUID
	removed [][2]uuid.UUID
}

func (m *mockBookmarkRepo) Save(_ context.Context, userID, jobID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, [2]uuid.UUID{userID, jobID})
	return nil
}

func (m *mockBookmarkRepo) Remove(_ context.Context, userID, jobID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.removed = append(m.removed, [2]uuid.UUID{userID, jobID})
	return nil
}

func (m *mockBookmarkRepo) ListJobsByUser(context.Context, uuid.UUID, int, int) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.jobs, nil
}

type mockNotificationRepo struct {
	items []notification.Notification
	err   error

	created    []notification.Notification
	markedRead []uuid.UUID
	markedAll  []uuid.UUID
}

func (m *mockNotificationRepo) Create(_ context.Context, n notification.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]notification.Notification, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, _ uuid.UUID, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.markedRead = append(m.markedRead, id)
	return nil
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.markedAll = append(m.markedAll, userID)
	return nil
}

// mockCache stores marshalled values so a SetJSON becomes visible to the next
// GetJSON, the way the real wrapper behaves.
type mockCache struct {
	data            map[string][]byte
	getErr          error
	setKeys         []string
	deleted         []string
	deletedPatterns []string
	lockOK          bool
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte), lockOK: true}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.setKeys = append(m.setKeys, key)
	return nil
}

func (m *mockCache) SetIfNotExists(context.Context, string, string, time.Duration) (bool, error) {
	return m.lockOK, nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	return nil
}

type notifyCall struct {
	userID  uuid.UUID
	kind    string
	message string
}

type mockNotifier struct {
	calls []notifyCall
}

func (m *mockNotifier) Notify(_ context.Context, userID uuid.UUID, kind, message string) {
	m.calls = append(m.calls, notifyCall{userID: userID, kind: kind, message: message})
}
