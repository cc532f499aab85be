package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/subscription"
)

// SubscriptionHandler expone el snapshot del plan y su consumo.
type SubscriptionHandler struct {
	uc *subscription.UseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *subscription.UseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener suscripción con consumo actual
// @Tags         subscription
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subscription [get]
func (h *SubscriptionHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Snapshot(c.Context(), GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
