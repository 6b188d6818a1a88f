package dto

import (
	"time"

	"github.com/prepview/interview-backend/internal/domain"
)

type MessageData struct {
	Message string `json:"message"`
}

type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}

type LoginData struct {
	Message   string   `json:"message"`
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int64    `json:"expires_in"`
	User      UserView `json:"user"`
}

type MeData struct {
	User UserView `json:"user"`
}

type QuestionView struct {
	ID    string `json:"id"`
	Level string `json:"level"`
	Text  string `json:"question"`
}

type CourseView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type QuestionsData struct {
	Course    CourseView     `json:"course"`
	Questions []QuestionView `json:"questions"`
}
