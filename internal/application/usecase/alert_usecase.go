package usecase

import (
	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// AlertUseCase lectura y marcado masivo de alertas de inventario.
// Las alertas se generan dentro de la transacción de movimientos de stock,
// nunca aquí.
type AlertUseCase struct {
	repo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo}
}

// List lista alertas de la organización, opcionalmente solo las no leídas.
func (uc *AlertUseCase) List(orgID string, unreadOnly bool, limit, offset int) ([]dto.AlertResponse, error) {
	alerts, err := uc.repo.ListByOrg(orgID, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, toAlertResponse(a))
	}
	return items, nil
}

// CountUnread cuenta las alertas pendientes de la organización.
func (uc *AlertUseCase) CountUnread(orgID string) (int, error) {
	return uc.repo.CountUnread(orgID)
}

// MarkRead marca como leídas las alertas indicadas. Solo afectan las de la
// organización; ids ajenos se ignoran en silencio. Devuelve cuántas cambiaron.
func (uc *AlertUseCase) MarkRead(orgID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, domain.FieldErrors{"ids": "se requiere al menos un id"}
	}
	return uc.repo.MarkRead(orgID, ids)
}

func toAlertResponse(a *entity.Alert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:        a.ID,
		OrgID:     a.OrgID,
		ProductID: a.ProductID,
		Type:      a.Type,
		Message:   a.Message,
		IsRead:    a.IsRead,
		CreatedAt: a.CreatedAt,
	}
}
