package http

import (
	"errors"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai"

	"github.com/gofiber/fiber/v2"
)

// statusOf maps the error taxonomy onto HTTP status codes.
func statusOf(err error) int {
	var capErr *domain.CaptureError
	var perErr *domain.PersistenceError
	var valErr *model.ValidationError
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound), errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrBusy):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNoPersonalInfo),
		errors.As(err, &valErr),
		errors.Is(err, model.ErrSkillLimit),
		errors.Is(err, model.ErrEmptySkill),
		errors.Is(err, ai.ErrTitleRequired),
		errors.Is(err, repository.ErrUnknownDraft):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrUnknownStep):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrRenderTimeout):
		return fiber.StatusGatewayTimeout
	case errors.As(err, &capErr):
		return fiber.StatusBadGateway
	case errors.As(err, &perErr):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func writeError(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	body := fiber.Map{"error": message(status, err)}
	var valErr *model.ValidationError
	if errors.As(err, &valErr) {
		body["fields"] = valErr.Fields
	}
	if status >= fiber.StatusInternalServerError {
		logger.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Int("status", status).Msg("request failed")
	}
	return c.Status(status).JSON(body)
}

// message prefers the notification text for export and storage failures and
// the error itself for input problems.
func message(status int, err error) string {
	switch status {
	case fiber.StatusNotFound:
		if !errors.Is(err, domain.ErrTemplateNotFound) {
			return err.Error()
		}
	case fiber.StatusUnprocessableEntity, fiber.StatusBadRequest:
		if errors.Is(err, domain.ErrNoPersonalInfo) {
			return domain.UserMessage(err)
		}
		return err.Error()
	}
	return domain.UserMessage(err)
}

// rejectDocument answers a failed Decode: content limits are 422, malformed
// documents 400.
func rejectDocument(c *fiber.Ctx, err error) error {
	if errors.Is(err, model.ErrSkillLimit) {
		return writeError(c, err)
	}
	return badRequest(c, err)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
