package server

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-reportdoc/report"
)

type handlers struct {
	service *report.Service
	store   report.ArtifactStore
	baseURL string
	logger  report.Logger
}

// PingResponse reports liveness and the active PDF engine.
type PingResponse struct {
	OK      bool   `json:"ok"`
	Engine  string `json:"engine"`
	Primary bool   `json:"primary"`
}

// RenderBase64Response is the JSON body for POST /render_b64.
type RenderBase64Response struct {
	Filename string `json:"filename"`
	Mime     string `json:"mime"`
	Data     string `json:"data"`
	FileURL  string `json:"file_url"`
}

// Ping handles GET /ping.
func (h *handlers) Ping(c *fiber.Ctx) error {
	engine := h.service.EngineName()
	return c.JSON(PingResponse{
		OK:      true,
		Engine:  engine,
		Primary: engine == "chromium",
	})
}

// Render handles POST /render: the full pipeline, returned as an attachment.
func (h *handlers) Render(c *fiber.Ctx) error {
	meta, err := h.parseMetadata(c)
	if err != nil {
		return writeError(c, err)
	}

	doc, err := h.service.Render(c.UserContext(), meta)
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+doc.Filename)
	c.Set(fiber.HeaderContentType, report.MIMEPDF)
	return c.Send(doc.PDF)
}

// RenderBase64 handles POST /render_b64: the pipeline plus persistence, with
// a stable URL for later retrieval.
func (h *handlers) RenderBase64(c *fiber.Ctx) error {
	meta, err := h.parseMetadata(c)
	if err != nil {
		return writeError(c, err)
	}

	stored, err := h.service.RenderAndStore(c.UserContext(), meta)
	if err != nil {
		return writeError(c, err)
	}

	base := h.baseURL
	if base == "" {
		base = c.BaseURL()
	}
	base = strings.TrimRight(base, "/")

	return c.JSON(RenderBase64Response{
		Filename: stored.Filename,
		Mime:     report.MIMEPDF,
		Data:     base64.StdEncoding.EncodeToString(stored.PDF),
		FileURL:  base + "/file/" + stored.StoredName,
	})
}

// GetFile handles GET /file/:name, streaming a previously stored PDF.
func (h *handlers) GetFile(c *fiber.Ctx) error {
	name := c.Params("name")
	file, meta, err := h.store.Open(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, meta.ContentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename=`+name)
	if meta.Size > 0 {
		return c.SendStream(file, int(meta.Size))
	}
	return c.SendStream(file)
}

func (h *handlers) parseMetadata(c *fiber.Ctx) (report.ReportMetadata, error) {
	var payload report.Payload
	if err := c.BodyParser(&payload); err != nil {
		return report.ReportMetadata{}, report.NewError(report.KindValidation, "invalid request payload", err)
	}
	return report.Validate(payload)
}
