package analytics

import (
	"context"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// subscriptionSnapshotter provee el snapshot del plan para incluirlo en el
// dashboard sin acoplar este paquete al de suscripciones.
type subscriptionSnapshotter interface {
	Snapshot(ctx context.Context, orgID string) (*dto.SubscriptionResponse, error)
}

// UseCase agrega las estadísticas del dashboard. Solo lectura; los conteos se
// calculan frescos en cada petición.
type UseCase struct {
	repo repository.AnalyticsRepository
	subs subscriptionSnapshotter
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.AnalyticsRepository, subs subscriptionSnapshotter) *UseCase {
	return &UseCase{repo: repo, subs: subs}
}

// DashboardStats calcula los agregados de inventario de la organización y
// adjunta el snapshot de la suscripción.
func (uc *UseCase) DashboardStats(ctx context.Context, orgID string) (*dto.DashboardStatsDTO, error) {
	stats, err := uc.repo.GetDashboardStats(ctx, orgID)
	if err != nil {
		return nil, err
	}
	snapshot, err := uc.subs.Snapshot(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsDTO{
		TotalProducts:   stats.TotalProducts,
		LowStockCount:   stats.LowStockCount,
		OutOfStockCount: stats.OutOfStock,
		UnreadAlerts:    stats.UnreadAlerts,
		InventoryValue:  stats.InventoryValue,
		Subscription:    *snapshot,
	}, nil
}
