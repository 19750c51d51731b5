package services

import (
	"context"
	"fmt"
	"time"

	"skillswap-backend/internal/models"

	"github.com/google/uuid"
)

// SkillStore is the persistence surface the skill service needs.
type SkillStore interface {
	Create(ctx context.Context, skill *models.Skill) error
	List(ctx context.Context) ([]models.Skill, error)
	DeleteAll(ctx context.Context) error
}

// SkillService handles the skill catalog
type SkillService struct {
	skills SkillStore
}

// NewSkillService creates a new skill service
func NewSkillService(skills SkillStore) *SkillService {
	return &SkillService{skills: skills}
}

// CreateSkill inserts a catalog entry
func (s *SkillService) CreateSkill(ctx context.Context, name, category, description string) (*models.Skill, error) {
	if name == "" || category == "" {
		return nil, ValidationError("name and category are required")
	}

	skill := &models.Skill{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

// ListSkills returns the full catalog
func (s *SkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.skills.List(ctx)
}

// Seed clears the catalog and inserts the default batch
func (s *SkillService) Seed(ctx context.Context) error {
	if err := s.skills.DeleteAll(ctx); err != nil {
		return err
	}
	for _, d := range defaultSkills {
		if _, err := s.CreateSkill(ctx, d.Name, d.Category, d.Description); err != nil {
			return fmt.Errorf("failed to seed skill %q: %w", d.Name, err)
		}
	}
	return nil
}

var defaultSkills = []models.Skill{
	{Name: "Web Development", Category: "Technology",
		Description: "Learn the fundamentals of HTML, CSS, and JavaScript to build modern websites."},
	{Name: "Python Programming", Category: "Technology",
		Description: "Master Python for data science, automation, and web development."},
	{Name: "Graphic Design", Category: "Design",
		Description: "Learn to use Adobe Photoshop and Illustrator to create stunning visuals."},
	{Name: "Digital Marketing", Category: "Business",
		Description: "Understand SEO, social media marketing, and content strategy."},
	{Name: "Guitar for Beginners", Category: "Music",
		Description: "Start your musical journey by learning basic chords and strumming patterns."},
	{Name: "Cooking - Italian Cuisine", Category: "Lifestyle",
		Description: "Master the art of making fresh pasta and authentic Italian sauces."},
	{Name: "Photography Basics", Category: "Photography",
		Description: "Learn about exposure, composition, and lighting to take better photos."},
}
