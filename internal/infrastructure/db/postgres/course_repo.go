package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/prepview/interview-backend/internal/domain"
)

type CourseRepo struct {
	db *sql.DB
}

func NewCourseRepo(db *sql.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

func (r *CourseRepo) GetByName(ctx context.Context, name string) (domain.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Course{}, domain.ErrCourseNotFound()
	}

	const q = `
SELECT id, name, description, created_at
FROM courses
WHERE name = $1
LIMIT 1;
`
	var c domain.Course
	err := r.db.QueryRowContext(ctx, q, name).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Course{}, domain.ErrCourseNotFound()
		}
		return domain.Course{}, domain.ErrDBUnavailable(err)
	}
	return c, nil
}

func (r *CourseRepo) ListQuestions(ctx context.Context, courseID string) ([]domain.Question, error) {
	const q = `
SELECT id, course_id, level, question
FROM questions
WHERE course_id = $1
ORDER BY level, id;
`
	rows, err := r.db.QueryContext(ctx, q, courseID)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var qu domain.Question
		if err := rows.Scan(&qu.ID, &qu.CourseID, &qu.Level, &qu.Text); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		questions = append(questions, qu)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return questions, nil
}
