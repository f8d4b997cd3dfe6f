package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"

	"github.com/gofiber/fiber/v2"
)

// DefaultDraftOwner is used when a request carries no X-Client-ID header.
const DefaultDraftOwner = "anonymous"

const clientIDHeader = "X-Client-ID"

type Handler struct {
	templates *render.Registry
	resumes   *usecase.Resumes
	exporter  *usecase.Exporter
	previews  *usecase.Previews
	drafts    usecase.DraftStore
	assistant *ai.Assistant
	aiRate    float64
	aiBurst   int
}

type Deps struct {
	Templates *render.Registry
	Resumes   *usecase.Resumes
	Exporter  *usecase.Exporter
	Previews  *usecase.Previews
	// Drafts may be nil when no Redis is configured.
	Drafts    usecase.DraftStore
	Assistant *ai.Assistant
	// AIRate limits /ai requests per caller per second; 0 disables it.
	AIRate  float64
	AIBurst int
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		templates: d.Templates,
		resumes:   d.Resumes,
		exporter:  d.Exporter,
		previews:  d.Previews,
		drafts:    d.Drafts,
		assistant: d.Assistant,
		aiRate:    d.AIRate,
		aiBurst:   d.AIBurst,
	}
}

func (h *Handler) Register(r fiber.Router) {
	r.Get("/healthz", h.Health)
	r.Get("/templates", h.ListTemplates)

	r.Post("/resumes", h.CreateResume)
	r.Get("/resumes/:id", h.GetResume)
	r.Put("/resumes/:id", h.UpdateResume)
	r.Post("/resumes/:id/skills", h.AddSkill)
	r.Post("/resumes/:id/export", h.ExportSaved)

	r.Post("/validate/:step", h.ValidateStep)

	r.Post("/previews", h.OpenPreview)
	r.Get("/previews/:id", h.ShowPreview)
	r.Post("/previews/:id/export", h.ExportPreview)
	r.Delete("/previews/:id", h.ClosePreview)

	r.Post("/exports", h.ExportDocument)
	r.Get("/exports/:id", h.GetExportJob)

	r.Put("/drafts/:key", h.PutDraft)
	r.Get("/drafts/:key", h.GetDraft)

	assist := r.Group("/ai", RateLimit("ai", h.aiRate, h.aiBurst))
	assist.Post("/summary", h.GenerateSummary)
	assist.Post("/job-description", h.GenerateJobDescription)
	assist.Post("/skills", h.SuggestSkills)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type templateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	var out []templateInfo
	for _, t := range h.templates.List() {
		out = append(out, templateInfo{ID: t.ID(), Name: t.Name(), Description: t.Description()})
	}
	return c.JSON(out)
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	r, err := usecase.Decode(c.Body())
	if err != nil {
		return rejectDocument(c, err)
	}
	id, err := h.resumes.Create(c.UserContext(), r)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	r, err := h.resumes.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(r)
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	r, err := usecase.Decode(c.Body())
	if err != nil {
		return rejectDocument(c, err)
	}
	if err := h.resumes.Update(c.UserContext(), c.Params("id"), r); err != nil {
		return writeError(c, err)
	}
	return c.JSON(r)
}

type addSkillReq struct {
	Name string `json:"name"`
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	var req addSkillReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, errors.New("invalid payload"))
	}
	sk, err := h.resumes.AddSkill(c.UserContext(), c.Params("id"), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sk)
}

func (h *Handler) ExportSaved(c *fiber.Ctx) error {
	f, err := format(c)
	if err != nil {
		return badRequest(c, err)
	}
	r, err := h.resumes.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.exporter.Export(c.UserContext(), r, f)
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, res)
}

func (h *Handler) ExportDocument(c *fiber.Ctx) error {
	f, err := format(c)
	if err != nil {
		return badRequest(c, err)
	}
	r, err := usecase.Decode(c.Body())
	if err != nil {
		return rejectDocument(c, err)
	}
	res, err := h.exporter.Export(c.UserContext(), r, f)
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, res)
}

func (h *Handler) GetExportJob(c *fiber.Ctx) error {
	st, err := h.exporter.Job(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) ValidateStep(c *fiber.Ctx) error {
	r, err := usecase.DecodeDraft(c.Body())
	if err != nil {
		return badRequest(c, err)
	}
	if err := model.ValidateStep(model.Step(c.Params("step")), r); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"valid": true})
}

func (h *Handler) OpenPreview(c *fiber.Ctx) error {
	r, err := usecase.Decode(c.Body())
	if err != nil {
		return rejectDocument(c, err)
	}
	s, err := h.previews.Open(r)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sessionId": s.ID, "template": s.Preview.Template})
}

func (h *Handler) ShowPreview(c *fiber.Ctx) error {
	s, err := h.previews.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	page, err := render.HTML(s.Preview)
	if err != nil {
		return writeError(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(page)
}

func (h *Handler) ExportPreview(c *fiber.Ctx) error {
	f, err := format(c)
	if err != nil {
		return badRequest(c, err)
	}
	s, err := h.previews.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.exporter.ExportPreview(c.UserContext(), s, f)
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, res)
}

func (h *Handler) ClosePreview(c *fiber.Ctx) error {
	h.previews.Close(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PutDraft(c *fiber.Ctx) error {
	if h.drafts == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "draft storage is not configured"})
	}
	if !json.Valid(c.Body()) {
		return badRequest(c, errors.New("draft must be valid json"))
	}
	body := append(json.RawMessage(nil), c.Body()...)
	if err := h.drafts.Set(c.UserContext(), draftOwner(c), c.Params("key"), body); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) GetDraft(c *fiber.Ctx) error {
	if h.drafts == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "draft storage is not configured"})
	}
	raw, err := h.drafts.Get(c.UserContext(), draftOwner(c), c.Params("key"))
	if err != nil {
		return writeError(c, err)
	}
	c.Type("json", "utf-8")
	return c.Send(raw)
}

func (h *Handler) GenerateSummary(c *fiber.Ctx) error {
	var req ai.SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, errors.New("invalid payload"))
	}
	res, err := h.assistant.Summary(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) GenerateJobDescription(c *fiber.Ctx) error {
	var req ai.JobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, errors.New("invalid payload"))
	}
	return c.JSON(h.assistant.JobDescription(c.UserContext(), req))
}

func (h *Handler) SuggestSkills(c *fiber.Ctx) error {
	var req ai.SkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, errors.New("invalid payload"))
	}
	skills, fallback := h.assistant.Skills(c.UserContext(), req)
	if skills == nil {
		skills = []string{}
	}
	return c.JSON(fiber.Map{"skills": skills, "fallback": fallback})
}

func format(c *fiber.Ctx) (domain.Format, error) {
	raw := c.Query("format", string(domain.FormatPDF))
	f, ok := domain.ParseFormat(raw)
	if !ok {
		return "", fmt.Errorf("unsupported format %q", raw)
	}
	return f, nil
}

func draftOwner(c *fiber.Ctx) string {
	if id := c.Get(clientIDHeader); id != "" {
		return id
	}
	return DefaultDraftOwner
}

func sendExport(c *fiber.Ctx, res *usecase.ExportResult) error {
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.FileName))
	c.Set("X-Export-Job", res.JobID.String())
	if res.URL != "" {
		c.Set("X-Export-URL", res.URL)
	}
	return c.Send(res.Data)
}
