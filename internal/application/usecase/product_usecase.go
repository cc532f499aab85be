package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// limitChecker contrato mínimo para verificar límites del plan antes de crear
// recursos. Lo implementa *subscription.UseCase; la interfaz evita acoplar los
// CRUD al paquete de suscripciones.
type limitChecker interface {
	CheckResourceLimit(ctx context.Context, orgID, resource string) error
}

// ProductUseCase casos de uso CRUD para productos. El stock se maneja por
// ubicación vía el reconciliador, nunca aquí.
type ProductUseCase struct {
	repo   repository.ProductRepository
	limits limitChecker
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, limits limitChecker) *ProductUseCase {
	return &ProductUseCase{repo: repo, limits: limits}
}

// Create crea un producto tras verificar SKU único y el límite del plan.
// El límite se consulta fresco en cada llamada.
func (uc *ProductUseCase) Create(ctx context.Context, orgID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.limits.CheckResourceLimit(ctx, orgID, entity.ResourceProducts); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByOrgAndSKU(orgID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		UnitCost:     in.UnitCost,
		SellingPrice: in.SellingPrice,
		ReorderPoint: in.ReorderPoint,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la organización; nil si no existe o es ajeno.
func (uc *ProductUseCase) GetByID(orgID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.OrgID != orgID {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza metadatos y precios. SKU e identidad son inmutables.
func (uc *ProductUseCase) Update(orgID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.OrgID != orgID {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.UnitCost != nil {
		product.UnitCost = *in.UnitCost
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.ReorderPoint != nil {
		product.ReorderPoint = *in.ReorderPoint
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos de la organización con filtro y paginación.
func (uc *ProductUseCase) List(orgID string, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByOrg(orgID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Delete elimina un producto de la organización.
func (uc *ProductUseCase) Delete(orgID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.OrgID != orgID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		OrgID:        p.OrgID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		UnitCost:     p.UnitCost,
		SellingPrice: p.SellingPrice,
		ReorderPoint: p.ReorderPoint,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
