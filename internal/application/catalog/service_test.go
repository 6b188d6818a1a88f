package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/prepview/interview-backend/internal/domain"
)

type fakeCourseRepo struct {
	byName    map[string]domain.Course
	questions map[string][]domain.Question

	getErr  error
	listErr error
}

func (f *fakeCourseRepo) GetByName(ctx context.Context, name string) (domain.Course, error) {
	if f.getErr != nil {
		return domain.Course{}, f.getErr
	}
	c, ok := f.byName[name]
	if !ok {
		return domain.Course{}, domain.ErrCourseNotFound()
	}
	return c, nil
}

func (f *fakeCourseRepo) ListQuestions(ctx context.Context, courseID string) ([]domain.Question, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.questions[courseID], nil
}

func newRepoForTest() *fakeCourseRepo {
	return &fakeCourseRepo{
		byName: map[string]domain.Course{
			"golang": {ID: "c1", Name: "golang", Description: "Go interviews"},
			"react":  {ID: "c2", Name: "react"},
		},
		questions: map[string][]domain.Question{
			"c1": {
				{ID: "q1", CourseID: "c1", Level: "easy", Text: "What is a goroutine?"},
				{ID: "q2", CourseID: "c1", Level: "hard", Text: "Explain the memory model."},
			},
		},
	}
}

func TestGetQuestions_Success(t *testing.T) {
	t.Parallel()

	svc := NewService(newRepoForTest())

	got, err := svc.GetQuestions(context.Background(), "golang")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if got.Course.ID != "c1" || len(got.Questions) != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetQuestions_CourseWithoutQuestions(t *testing.T) {
	t.Parallel()

	svc := NewService(newRepoForTest())

	got, err := svc.GetQuestions(context.Background(), "react")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(got.Questions) != 0 {
		t.Fatalf("expected empty questions, got %+v", got.Questions)
	}
}

func TestGetQuestions_UnknownCourse(t *testing.T) {
	t.Parallel()

	svc := NewService(newRepoForTest())

	_, err := svc.GetQuestions(context.Background(), "cobol")
	if !domain.Is(err, "course_not_found") {
		t.Fatalf("expected course_not_found, got %v", err)
	}
}

func TestGetQuestions_EmptyName(t *testing.T) {
	t.Parallel()

	svc := NewService(newRepoForTest())

	_, err := svc.GetQuestions(context.Background(), "  ")
	if !domain.Is(err, "course_not_found") {
		t.Fatalf("expected course_not_found, got %v", err)
	}
}

func TestGetQuestions_RepoFailureSurfaces(t *testing.T) {
	t.Parallel()

	repo := newRepoForTest()
	repo.listErr = domain.ErrDBUnavailable(errors.New("down"))
	svc := NewService(repo)

	_, err := svc.GetQuestions(context.Background(), "golang")
	if !domain.Is(err, "db_unavailable") {
		t.Fatalf("expected db_unavailable, got %v", err)
	}
}
