package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/export"
)

// ExportHandler descarga de tablas del tenant en json, csv o xml.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Download godoc
// @Summary      Exportar una tabla del tenant
// @Tags         export
// @Security     Bearer
// @Produce      json
// @Param        table   query  string  true   "Tabla permitida (products, locations, ...)"
// @Param        format  query  string  false  "json | csv | xml"  default(json)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/export [get]
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	format := c.Query("format")
	if format == "" {
		format = export.FormatJSON
	}
	res, err := h.uc.Export(c.Context(), GetOrgID(c), c.Query("table"), format)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+res.Filename)
	return c.Send(res.Data)
}
