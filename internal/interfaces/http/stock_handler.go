package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/application/inventory"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
)

// StockHandler niveles de stock por producto y aplicación de deltas.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListByProduct godoc
// @Summary      Listar niveles de stock de un producto por ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  map[string][]dto.StockLevelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	levels, err := h.uc.ListByProduct(c.Context(), GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		items = append(items, toStockLevelResponse(l))
	}
	return c.JSON(fiber.Map{"stockLevels": items})
}

// ApplyChange godoc
// @Summary      Aplicar un delta de stock (add/remove) a un producto
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ApplyStockRequest  true  "Delta a aplicar"
// @Success      201   {object}  map[string]dto.StockLevelResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *StockHandler) ApplyChange(c *fiber.Ctx) error {
	var in dto.ApplyStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	level, err := h.uc.ApplyChange(c.Context(), inventory.StockChangeInput{
		OrgID:      GetOrgID(c),
		UserID:     GetUserID(c),
		ProductID:  c.Params("id"),
		LocationID: in.LocationID,
		Delta:      in.Delta(),
		ChangeType: in.ChangeType,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"stockLevel": toStockLevelResponse(level)})
}

// History godoc
// @Summary      Listar la bitácora de movimientos de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  map[string][]dto.StockHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	records, err := h.uc.History(c.Context(), GetOrgID(c), c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.StockHistoryResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.StockHistoryResponse{
			ID:               r.ID,
			OrgID:            r.OrgID,
			ProductID:        r.ProductID,
			LocationID:       r.LocationID,
			ChangeType:       r.ChangeType,
			Delta:            r.Delta,
			PreviousQuantity: r.PreviousQuantity,
			NewQuantity:      r.NewQuantity,
			CreatedBy:        r.CreatedBy,
			CreatedAt:        r.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"history": items})
}

func toStockLevelResponse(l *entity.StockLevel) dto.StockLevelResponse {
	return dto.StockLevelResponse{
		OrgID:        l.OrgID,
		ProductID:    l.ProductID,
		LocationID:   l.LocationID,
		Quantity:     l.Quantity,
		ReorderPoint: l.ReorderPoint,
		UpdatedAt:    l.UpdatedAt,
	}
}
