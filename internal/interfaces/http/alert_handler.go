package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/application/usecase"
)

// AlertHandler alertas de quiebre de stock.
type AlertHandler struct {
	uc *usecase.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas (opcionalmente solo no leídas)
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        unread_only  query  bool  false  "Solo alertas no leídas"
// @Param        limit        query  int   false  "Límite"  default(20)
// @Param        offset       query  int   false  "Offset"  default(0)
// @Success      200  {object}  map[string][]dto.AlertResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	limit, offset := pageParams(c)
	items, err := h.uc.List(orgID, c.QueryBool("unread_only"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	unread, err := h.uc.CountUnread(orgID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"alerts": items, "unread": unread})
}

// MarkRead godoc
// @Summary      Marcar alertas como leídas (masivo)
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarkAlertsReadRequest  true  "IDs a marcar"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alerts [patch]
func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	var in dto.MarkAlertsReadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.uc.MarkRead(GetOrgID(c), in.IDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}
