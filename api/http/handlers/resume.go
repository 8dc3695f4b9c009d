package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/api/http/presenter"
	"github.com/artem13815/interview/pkg/resume"
)

// DefaultMaxUploadBytes limits the uploaded file size read into memory.
const DefaultMaxUploadBytes int64 = 15 << 20

type ResumeHandler struct {
	svc      resume.Service
	maxBytes int64
}

func NewResumeHandler(svc resume.Service, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &ResumeHandler{svc: svc, maxBytes: maxBytes}
}

// Parse извлекает контакты кандидата из резюме (PDF/DOCX). Текст резюме не сохраняется.
// @Summary Разбор резюме и предзаполнение профиля
// @Description Принимает PDF или DOCX, извлекает имя, email и телефон эвристиками.
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF или DOCX)"
// @Success 200 {object} resume.Parsed
// @Failure 400 {object} presenter.ErrorResponse "Файл не передан"
// @Failure 413 {object} presenter.ErrorResponse "Файл слишком большой"
// @Failure 415 {object} presenter.ErrorResponse "Неподдерживаемый формат"
// @Failure 422 {object} presenter.ErrorResponse "Файл повреждён или защищён паролем"
// @Router  /resumes/parse [post]
func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		}
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	parsed, err := h.svc.Parse(fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return presenter.FromError(c, err, "failed to parse resume")
	}
	return presenter.JSON(c, http.StatusOK, parsed)
}
