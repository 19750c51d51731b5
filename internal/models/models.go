package models

import "time"

// Session status values. A pending session may move to completed or
// cancelled; both of those are terminal.
const (
	SessionPending   = "pending"
	SessionConfirmed = "confirmed"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// StartingCredits is granted to every user at registration.
const StartingCredits = 3

// DefaultSessionMinutes is used when a booking does not specify a duration.
const DefaultSessionMinutes = 60

// User represents a registered user
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Bio           string    `json:"bio"`
	SkillsToTeach []string  `json:"skills_to_teach"`
	SkillsToLearn []string  `json:"skills_to_learn"`
	Credits       int       `json:"credits"`
	Rating        float64   `json:"rating"`
	ReviewsCount  int       `json:"reviews_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Skill represents a catalog entry users can teach or learn
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Party is the subset of a user embedded in session listings
type Party struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session represents a booked teaching session between two users
type Session struct {
	ID            string    `json:"id"`
	TeacherID     string    `json:"teacher_id"`
	LearnerID     string    `json:"learner_id"`
	Skill         string    `json:"skill"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `json:"status"`
	Duration      int       `json:"duration"`
	Teacher       *Party    `json:"teacher,omitempty"`
	Learner       *Party    `json:"learner,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Message represents a direct message between two users
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
