package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/application/usecase"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
	"github.com/tu-usuario/stockpilot/internal/infrastructure/pdf"
)

// PDFGenerator puerto hacia el generador de PDF de infraestructura.
type PDFGenerator interface {
	GeneratePurchaseOrderPDF(ctx context.Context, order *entity.PurchaseOrder, org *entity.Organization, lines []pdf.POLine) ([]byte, error)
}

// PurchaseOrderHandler órdenes de compra y su PDF imprimible.
type PurchaseOrderHandler struct {
	uc          *usecase.PurchaseOrderUseCase
	orgRepo     repository.OrganizationRepository
	productRepo repository.ProductRepository
	pdfGen      PDFGenerator
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(
	uc *usecase.PurchaseOrderUseCase,
	orgRepo repository.OrganizationRepository,
	productRepo repository.ProductRepository,
	pdfGen PDFGenerator,
) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc, orgRepo: orgRepo, productRepo: productRepo, pdfGen: pdfGen}
}

// Create godoc
// @Summary      Crear orden de compra (cabecera y líneas atómicas)
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  map[string]dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetOrgID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"purchaseOrder": out})
}

// GetByID godoc
// @Summary      Obtener orden de compra con sus líneas
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(fiber.Map{"purchaseOrder": out})
}

// List godoc
// @Summary      Listar órdenes de compra (filtro opcional por estado)
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | ordered | received | cancelled"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  map[string][]dto.PurchaseOrderResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetOrgID(c), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"purchaseOrders": out})
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una orden (transiciones válidas)
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdatePOStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  map[string]dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/status [patch]
func (h *PurchaseOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdatePOStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(GetOrgID(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(fiber.Map{"purchaseOrder": out})
}

// DownloadPDF godoc
// @Summary      Descargar el PDF de una orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/pdf [get]
func (h *PurchaseOrderHandler) DownloadPDF(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	order, err := h.uc.GetEntity(orgID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	org, err := h.orgRepo.GetByID(orgID)
	if err != nil {
		return respondError(c, err)
	}
	if org == nil {
		return respondError(c, domain.ErrNotFound)
	}

	names := make(map[string]string, len(order.Items))
	lines := make([]pdf.POLine, 0, len(order.Items))
	for _, item := range order.Items {
		name, ok := names[item.ProductID]
		if !ok {
			product, err := h.productRepo.GetByID(item.ProductID)
			if err != nil {
				return respondError(c, err)
			}
			name = item.ProductID
			if product != nil {
				name = product.Name
			}
			names[item.ProductID] = name
		}
		lines = append(lines, pdf.POLine{ProductName: name, Item: item})
	}

	data, err := h.pdfGen.GeneratePurchaseOrderPDF(c.Context(), order, org, lines)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.pdf", order.OrderNumber))
	return c.Send(data)
}
