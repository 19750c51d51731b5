package services

import (
	"context"
	"sort"
	"sync"

	"skillswap-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// In-memory stores backing the service tests. They return pgx.ErrNoRows for
// missing rows, matching the real repositories.

type memUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*models.User)}
}

func (m *memUsers) add(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
}

func (m *memUsers) credits(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id].Credits
}

func (m *memUsers) totalCredits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, u := range m.users {
		total += u.Credits
	}
	return total
}

func (m *memUsers) Create(ctx context.Context, user *models.User) error {
	m.add(user)
	return nil
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) UpdateProfile(ctx context.Context, userID, bio string, teach, learn []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Bio = bio
	u.SkillsToTeach = teach
	u.SkillsToLearn = learn
	return nil
}

func (m *memUsers) AdjustCredits(ctx context.Context, userID string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Credits += delta
	return nil
}

func (m *memUsers) SpendCredit(ctx context.Context, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok || u.Credits < 1 {
		return false, nil
	}
	u.Credits--
	return true, nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	users    *memUsers
}

func newMemSessions(users *memUsers) *memSessions {
	return &memSessions{sessions: make(map[string]*models.Session), users: users}
}

func (m *memSessions) Create(ctx context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *session
	m.sessions[session.ID] = &cp
	return nil
}

func (m *memSessions) GetByID(ctx context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *s
	return &cp, nil
}

func (m *memSessions) TransitionStatus(ctx context.Context, id, status string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.Status != models.SessionPending {
		return false, nil
	}
	s.Status = status
	return true, nil
}

func (m *memSessions) ListByUser(ctx context.Context, userID string) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Session
	for _, s := range m.sessions {
		if s.TeacherID != userID && s.LearnerID != userID {
			continue
		}
		cp := *s
		if m.users != nil {
			if t, ok := m.users.users[s.TeacherID]; ok {
				cp.Teacher = &models.Party{ID: t.ID, Name: t.Name, Email: t.Email}
			}
			if l, ok := m.users.users[s.LearnerID]; ok {
				cp.Learner = &models.Party{ID: l.ID, Name: l.Name, Email: l.Email}
			}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledTime.Before(out[j].ScheduledTime) })
	return out, nil
}

type memMessages struct {
	mu       sync.Mutex
	messages []models.Message
}

func newMemMessages() *memMessages {
	return &memMessages{}
}

func (m *memMessages) Create(ctx context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memMessages) ListBetween(ctx context.Context, userA, userB string) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Message
	for _, msg := range m.messages {
		if (msg.SenderID == userA && msg.ReceiverID == userB) || (msg.SenderID == userB && msg.ReceiverID == userA) {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type memSkills struct {
	mu     sync.Mutex
	skills []models.Skill
}

func newMemSkills() *memSkills {
	return &memSkills{}
}

func (m *memSkills) Create(ctx context.Context, skill *models.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skills = append(m.skills, *skill)
	return nil
}

func (m *memSkills) List(ctx context.Context) ([]models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Skill, len(m.skills))
	copy(out, m.skills)
	return out, nil
}

func (m *memSkills) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skills = nil
	return nil
}
