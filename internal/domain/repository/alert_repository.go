package repository

import "github.com/tu-usuario/stockpilot/internal/domain/entity"

// AlertRepository define el puerto de persistencia para Alert.
type AlertRepository interface {
	Create(alert *entity.Alert) error
	ListByOrg(orgID string, unreadOnly bool, limit, offset int) ([]*entity.Alert, error)
	// MarkRead marca como leídas las alertas indicadas (solo de la organización).
	// Devuelve cuántas filas cambiaron.
	MarkRead(orgID string, ids []string) (int, error)
	// HasUnread indica si ya existe una alerta no leída del mismo producto y tipo,
	// para no duplicar notificaciones en cada movimiento.
	HasUnread(orgID, productID, alertType string) (bool, error)
	CountUnread(orgID string) (int, error)
}
