package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/api/http/presenter"
	"github.com/artem13815/interview/pkg/export"
	"github.com/artem13815/interview/pkg/interview"
	"github.com/artem13815/interview/pkg/resume"
)

type CandidateHandler struct {
	svc *interview.Service
	now func() time.Time
}

func NewCandidateHandler(svc *interview.Service) *CandidateHandler {
	return &CandidateHandler{svc: svc, now: time.Now}
}

type candidateRequest struct {
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Phone  string       `json:"phone"`
	Resume *resume.Meta `json:"resume,omitempty"`
}

// Create registers a candidate from the completed profile form.
// @Summary Create candidate
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   input body candidateRequest true "candidate profile"
// @Success 201 {object} interview.Candidate
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var req candidateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	cand, err := h.svc.CreateCandidate(c.Context(), interview.Profile{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Resume: req.Resume,
	})
	if err != nil {
		return presenter.FromError(c, err, "failed to create candidate")
	}
	return presenter.JSON(c, http.StatusCreated, cand)
}

type updateCandidateRequest struct {
	Name   *string      `json:"name,omitempty"`
	Email  *string      `json:"email,omitempty"`
	Phone  *string      `json:"phone,omitempty"`
	Resume *resume.Meta `json:"resume,omitempty"`
}

// Update edits the profile before the interview starts.
// @Summary Update candidate profile
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   id    path string                 true "candidate id"
// @Param   input body updateCandidateRequest true "fields to change"
// @Success 200 {object} interview.Candidate
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [patch]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	var req updateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	cand, err := h.svc.UpdateCandidate(c.Context(), c.Params("id"), interview.CandidateUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Resume: req.Resume,
	})
	if err != nil {
		return presenter.FromError(c, err, "failed to update candidate")
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

type candidateListResponse struct {
	Items  []interview.Candidate `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// List is the interviewer dashboard.
// @Summary Список кандидатов
// @Tags    candidates
// @Produce json
// @Param   search query string false "substring of name or email"
// @Param   status query string false "all, not_started, in_progress, completed"
// @Param   limit  query int    false "page size (1..200)"
// @Param   offset query int    false "offset"
// @Security BearerAuth
// @Success 200 {object} candidateListResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	switch interview.Status(status) {
	case "", "all", interview.StatusNotStarted, interview.StatusInProgress, interview.StatusCompleted:
	default:
		return presenter.Error(c, http.StatusBadRequest, "invalid status filter")
	}
	items, total := h.svc.ListCandidates(interview.Filter{
		Search: c.Query("search"),
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	return presenter.JSON(c, http.StatusOK, candidateListResponse{Items: items, Total: total, Limit: limit, Offset: offset})
}

// Get returns the candidate with the full transcript and marks it selected.
// @Summary Карточка кандидата
// @Tags    candidates
// @Produce json
// @Param   id path string true "candidate id"
// @Security BearerAuth
// @Success 200 {object} interview.Candidate
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [get]
func (h *CandidateHandler) Get(c *fiber.Ctx) error {
	cand, err := h.svc.SelectCandidate(c.Context(), c.Params("id"))
	if err != nil {
		return presenter.FromError(c, err, "failed to load candidate")
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

// Export downloads the dashboard as an XLSX workbook.
// @Summary Экспорт кандидатов в Excel
// @Tags    candidates
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   search query string false "substring of name or email"
// @Param   status query string false "all, not_started, in_progress, completed"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /candidates/export [get]
func (h *CandidateHandler) Export(c *fiber.Ctx) error {
	items, _ := h.svc.ListCandidates(interview.Filter{Search: c.Query("search"), Status: c.Query("status")})
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, items); err != nil {
		return presenter.FromError(c, err, "failed to export candidates")
	}
	filename := fmt.Sprintf("candidates-%s.xlsx", h.now().UTC().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(http.StatusOK).Send(buf.Bytes())
}
