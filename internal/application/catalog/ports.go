package catalog

import (
	"context"

	"github.com/prepview/interview-backend/internal/domain"
)

// CourseRepo is the persistence port for the question catalog.
type CourseRepo interface {
	GetByName(ctx context.Context, name string) (domain.Course, error)
	ListQuestions(ctx context.Context, courseID string) ([]domain.Question, error)
}
