package handlers

import (
	"context"
	"sort"
	"sync"

	"skillswap-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// Minimal in-memory stores for exercising the HTTP surface end to end
// without a database.

type memStore struct {
	mu       sync.Mutex
	users    map[string]*models.User
	sessions map[string]*models.Session
	messages []models.Message
	skills   []models.Skill
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*models.User),
		sessions: make(map[string]*models.Session),
	}
}

func (m *memStore) credits(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id].Credits
}

// UserStore

func (m *memStore) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
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

func (m *memStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memStore) UpdateProfile(ctx context.Context, userID, bio string, teach, learn []string) error {
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

func (m *memStore) AdjustCredits(ctx context.Context, userID string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Credits += delta
	return nil
}

func (m *memStore) SpendCredit(ctx context.Context, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok || u.Credits < 1 {
		return false, nil
	}
	u.Credits--
	return true, nil
}

// SessionStore

type memSessionStore struct{ *memStore }

func (m memSessionStore) Create(ctx context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *session
	m.sessions[session.ID] = &cp
	return nil
}

func (m memSessionStore) GetByID(ctx context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *s
	return &cp, nil
}

func (m memSessionStore) TransitionStatus(ctx context.Context, id, status string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.Status != models.SessionPending {
		return false, nil
	}
	s.Status = status
	return true, nil
}

func (m memSessionStore) ListByUser(ctx context.Context, userID string) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Session
	for _, s := range m.sessions {
		if s.TeacherID != userID && s.LearnerID != userID {
			continue
		}
		cp := *s
		if t, ok := m.users[s.TeacherID]; ok {
			cp.Teacher = &models.Party{ID: t.ID, Name: t.Name, Email: t.Email}
		}
		if l, ok := m.users[s.LearnerID]; ok {
			cp.Learner = &models.Party{ID: l.ID, Name: l.Name, Email: l.Email}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledTime.Before(out[j].ScheduledTime) })
	return out, nil
}

// MessageStore

type memMessageStore struct{ *memStore }

func (m memMessageStore) Create(ctx context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, *msg)
	return nil
}

func (m memMessageStore) ListBetween(ctx context.Context, userA, userB string) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Message
	for _, msg := range m.messages {
		if (msg.SenderID == userA && msg.ReceiverID == userB) || (msg.SenderID == userB && msg.ReceiverID == userA) {
			out = append(out, msg)
		}
	}
	return out, nil
}

// SkillStore

type memSkillStore struct{ *memStore }

func (m memSkillStore) Create(ctx context.Context, skill *models.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skills = append(m.skills, *skill)
	return nil
}

func (m memSkillStore) List(ctx context.Context) ([]models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Skill, len(m.skills))
	copy(out, m.skills)
	return out, nil
}

func (m memSkillStore) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skills = nil
	return nil
}
