package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/application/usecase"
)

// OrganizationHandler organización del usuario autenticado y su equipo.
type OrganizationHandler struct {
	uc *usecase.OrganizationUseCase
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener la organización propia
// @Tags         organization
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrganizationResponse
// @Router       /api/organization [get]
func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar la organización (owner/admin)
// @Tags         organization
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateOrganizationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/organization [put]
func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMembers godoc
// @Summary      Listar miembros de la organización
// @Tags         organization
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MemberListResponse
// @Router       /api/organization/members [get]
func (h *OrganizationHandler) ListMembers(c *fiber.Ctx) error {
	items, err := h.uc.ListMembers(GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MemberListResponse{Items: items, Total: len(items)})
}

// InviteMember godoc
// @Summary      Invitar un miembro (owner/admin; límite team_members)
// @Tags         organization
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InviteMemberRequest  true  "Datos del miembro"
// @Success      201   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/organization/members [post]
func (h *OrganizationHandler) InviteMember(c *fiber.Ctx) error {
	var in dto.InviteMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.InviteMember(c.Context(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
