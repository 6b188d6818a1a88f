package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/prepview/interview-backend/internal/application/catalog"
	"github.com/prepview/interview-backend/internal/transport/http/dto"
	"github.com/prepview/interview-backend/internal/transport/http/response"
)

type CatalogHandler struct {
	svc *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))

	res, err := h.svc.GetQuestions(r.Context(), name)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	questions := make([]dto.QuestionView, 0, len(res.Questions))
	for _, q := range res.Questions {
		questions = append(questions, dto.QuestionView{
			ID:    q.ID,
			Level: q.Level,
			Text:  q.Text,
		})
	}

	response.OK(w, dto.QuestionsData{
		Course: dto.CourseView{
			ID:          res.Course.ID,
			Name:        res.Course.Name,
			Description: res.Course.Description,
		},
		Questions: questions,
	})
}
