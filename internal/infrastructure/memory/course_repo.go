package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepview/interview-backend/internal/domain"
)

type CourseRepo struct {
	mu        sync.RWMutex
	byName    map[string]domain.Course
	questions map[string][]domain.Question
}

func NewCourseRepo() *CourseRepo {
	return &CourseRepo{
		byName:    make(map[string]domain.Course),
		questions: make(map[string][]domain.Question),
	}
}

// NewSeededCourseRepo returns a repo preloaded with a small starter catalog,
// so the questions endpoint works out of the box in dev mode.
func NewSeededCourseRepo() *CourseRepo {
	r := NewCourseRepo()
	seed := []struct {
		name, description string
		questions         []struct{ level, text string }
	}{
		{
			name:        "javascript",
			description: "Core JavaScript interview questions",
			questions: []struct{ level, text string }{
				{"easy", "What is the difference between var, let and const?"},
				{"easy", "What is a closure and when would you use one?"},
				{"medium", "Explain how the event loop schedules callbacks."},
				{"hard", "How does prototypal inheritance differ from classical inheritance?"},
			},
		},
		{
			name:        "golang",
			description: "Go interview questions",
			questions: []struct{ level, text string }{
				{"easy", "What is the zero value of a map, and what happens when you write to it?"},
				{"medium", "When does a goroutine leak occur and how do you prevent it?"},
				{"hard", "Explain how a buffered channel differs from an unbuffered one under contention."},
			},
		},
		{
			name:        "system-design",
			description: "System design interview questions",
			questions: []struct{ level, text string }{
				{"medium", "Design a URL shortener. What are the main components?"},
				{"hard", "How would you shard a relational database for a social feed?"},
			},
		},
	}

	for _, s := range seed {
		c := domain.Course{
			ID:          uuid.NewString(),
			Name:        s.name,
			Description: s.description,
			CreatedAt:   time.Now().UTC(),
		}
		r.byName[c.Name] = c
		for _, q := range s.questions {
			r.questions[c.ID] = append(r.questions[c.ID], domain.Question{
				ID:       uuid.NewString(),
				CourseID: c.ID,
				Level:    q.level,
				Text:     q.text,
			})
		}
	}
	return r
}

// Add registers a course with its questions. Used by tests.
func (r *CourseRepo) Add(c domain.Course, questions ...domain.Question) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[c.Name] = c
	r.questions[c.ID] = append(r.questions[c.ID], questions...)
}

func (r *CourseRepo) GetByName(_ context.Context, name string) (domain.Course, error) {
	name = strings.TrimSpace(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byName[name]
	if !ok {
		return domain.Course{}, domain.ErrCourseNotFound()
	}
	return c, nil
}

func (r *CourseRepo) ListQuestions(_ context.Context, courseID string) ([]domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	qs := make([]domain.Question, len(r.questions[courseID]))
	copy(qs, r.questions[courseID])
	return qs, nil
}
