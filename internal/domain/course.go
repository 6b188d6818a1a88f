package domain

import "time"

type Course struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

type Question struct {
	ID       string
	CourseID string
	Level    string
	Text     string
}
