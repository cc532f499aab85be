package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/application/inventory"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
)

// TransferHandler traslados de stock entre ubicaciones.
type TransferHandler struct {
	uc *inventory.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *inventory.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Trasladar stock entre dos ubicaciones
// @Tags         stock-transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Datos del traslado"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	transfer, err := h.uc.Transfer(c.Context(), inventory.TransferInput{
		OrgID:          GetOrgID(c),
		UserID:         GetUserID(c),
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		Notes:          in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransferResponse(transfer))
}

// List godoc
// @Summary      Listar traslados de la organización
// @Tags         stock-transfers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/stock-transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	transfers, err := h.uc.List(c.Context(), GetOrgID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		items = append(items, toTransferResponse(t))
	}
	return c.JSON(items)
}

func toTransferResponse(t *entity.StockTransfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:             t.ID,
		OrgID:          t.OrgID,
		ProductID:      t.ProductID,
		FromLocationID: t.FromLocationID,
		ToLocationID:   t.ToLocationID,
		Quantity:       t.Quantity,
		Notes:          t.Notes,
		CreatedAt:      t.CreatedAt,
	}
}
