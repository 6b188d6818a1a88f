package catalog

import (
	"context"
	"strings"

	"github.com/prepview/interview-backend/internal/domain"
)

type Service struct {
	courses CourseRepo
}

func NewService(courses CourseRepo) *Service {
	return &Service{courses: courses}
}

type CourseQuestions struct {
	Course    domain.Course
	Questions []domain.Question
}

// GetQuestions resolves a course by name and returns it with its question
// set. A course with no questions is not an error; the slice is just empty.
func (s *Service) GetQuestions(ctx context.Context, courseName string) (CourseQuestions, error) {
	courseName = strings.TrimSpace(courseName)
	if courseName == "" {
		return CourseQuestions{}, domain.ErrCourseNotFound()
	}

	course, err := s.courses.GetByName(ctx, courseName)
	if err != nil {
		return CourseQuestions{}, err
	}

	questions, err := s.courses.ListQuestions(ctx, course.ID)
	if err != nil {
		return CourseQuestions{}, err
	}

	return CourseQuestions{Course: course, Questions: questions}, nil
}
