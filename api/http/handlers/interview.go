package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/api/http/presenter"
	"github.com/artem13815/interview/pkg/interview"
)

type InterviewHandler struct {
	svc *interview.Service
}

func NewInterviewHandler(svc *interview.Service) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type sessionResponse struct {
	Session   *interview.Session   `json:"session"`
	Candidate *interview.Candidate `json:"candidate,omitempty"`
	Busy      bool                 `json:"busy"`
}

func (h *InterviewHandler) view() sessionResponse {
	st := h.svc.Snapshot()
	out := sessionResponse{Session: st.Session, Busy: h.svc.Busy()}
	if st.Session != nil {
		if c, err := h.svc.Candidate(st.Session.CandidateID); err == nil {
			out.Candidate = &c
		}
	}
	return out
}

// Start generates questions and opens the interview for a candidate.
// @Summary Start interview
// @Tags    interview
// @Produce json
// @Param   id path string true "candidate id"
// @Success 201 {object} interview.Session
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/interview [post]
func (h *InterviewHandler) Start(c *fiber.Ctx) error {
	sess, err := h.svc.StartInterview(c.Context(), c.Params("id"))
	if err != nil {
		return presenter.FromError(c, err, "failed to start interview")
	}
	return presenter.JSON(c, http.StatusCreated, sess)
}

// Current returns the interview in progress, if any.
// @Summary Current interview
// @Tags    interview
// @Produce json
// @Success 200 {object} sessionResponse
// @Router  /interview [get]
func (h *InterviewHandler) Current(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.view())
}

type answerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// Answer scores the answer to the current question and advances.
// @Summary Submit answer
// @Tags    interview
// @Accept  json
// @Produce json
// @Param   input body answerRequest true "answer to the current question"
// @Success 200 {object} interview.Submission
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse "stale question, paused or busy"
// @Router  /interview/answers [post]
func (h *InterviewHandler) Answer(c *fiber.Ctx) error {
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.QuestionID) == "" {
		return presenter.Error(c, http.StatusBadRequest, "questionId is required")
	}
	sub, err := h.svc.SubmitAnswer(c.Context(), req.QuestionID, req.Answer)
	if err != nil {
		return presenter.FromError(c, err, "failed to submit answer")
	}
	return presenter.JSON(c, http.StatusOK, sub)
}

// Pause freezes the countdown.
// @Summary Pause interview
// @Tags    interview
// @Produce json
// @Success 200 {object} interview.Timer
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /interview/pause [post]
func (h *InterviewHandler) Pause(c *fiber.Ctx) error {
	t, err := h.svc.Pause(c.Context())
	if err != nil {
		return presenter.FromError(c, err, "failed to pause interview")
	}
	return presenter.JSON(c, http.StatusOK, t)
}

// Resume continues the countdown with the remaining time.
// @Summary Resume interview
// @Tags    interview
// @Produce json
// @Success 200 {object} interview.Timer
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /interview/resume [post]
func (h *InterviewHandler) Resume(c *fiber.Ctx) error {
	t, err := h.svc.Resume(c.Context())
	if err != nil {
		return presenter.FromError(c, err, "failed to resume interview")
	}
	return presenter.JSON(c, http.StatusOK, t)
}

// Reset удаляет всех кандидатов и текущее интервью.
// @Summary Полный сброс состояния
// @Tags    admin
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /state [delete]
func (h *InterviewHandler) Reset(c *fiber.Ctx) error {
	if err := h.svc.Reset(c.Context()); err != nil {
		return presenter.FromError(c, err, "failed to reset state")
	}
	return c.SendStatus(http.StatusNoContent)
}
