package client

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tipos de notificación.
const (
	NotificationLowStock   = "low_stock"
	NotificationOutOfStock = "out_of_stock"
	NotificationSuccess    = "success"
)

// Notification aviso de stock para mostrar al usuario.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ProductID string    `json:"productId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// NotificationList mantiene las notificaciones de stock con su estado de
// lectura. Seguro para uso concurrente.
type NotificationList struct {
	mu            sync.Mutex
	notifications []Notification
	seen          map[string]bool // type + productID, evita duplicados entre syncs
	now           func() time.Time
}

// NewNotificationList crea la lista vacía.
func NewNotificationList() *NotificationList {
	return &NotificationList{
		seen: make(map[string]bool),
		now:  time.Now,
	}
}

// SyncFromReports genera notificaciones nuevas a partir de los reportes de
// stock bajo y agotados. Un producto ya notificado no se repite.
func (l *NotificationList) SyncFromReports(lowStock, outOfStock []Product) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range outOfStock {
		l.add(Notification{
			Type:      NotificationOutOfStock,
			ProductID: p.ID,
			Title:     "Producto agotado",
			Message:   fmt.Sprintf("%s (%s) se quedó sin stock", p.Name, p.SKU),
		})
	}
	for _, p := range lowStock {
		l.add(Notification{
			Type:      NotificationLowStock,
			ProductID: p.ID,
			Title:     "Stock bajo",
			Message:   fmt.Sprintf("%s (%s) tiene %d unidades, umbral %d", p.Name, p.SKU, p.Stock, p.LowStockThreshold),
		})
	}
}

// Add agrega una notificación suelta, por ejemplo tras una mutación exitosa.
// A diferencia del sync de reportes no se deduplica.
func (l *NotificationList) Add(typ, title, message string) Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := Notification{
		ID:        uuid.New().String(),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: l.now(),
	}
	l.notifications = append([]Notification{n}, l.notifications...)
	return n
}

func (l *NotificationList) add(n Notification) {
	key := n.Type + ":" + n.ProductID
	if l.seen[key] {
		return
	}
	l.seen[key] = true
	n.ID = uuid.New().String()
	n.CreatedAt = l.now()
	l.notifications = append([]Notification{n}, l.notifications...)
}

// All devuelve una copia de las notificaciones, las más recientes primero.
func (l *NotificationList) All() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Notification, len(l.notifications))
	copy(out, l.notifications)
	return out
}

// UnreadCount cantidad de notificaciones sin leer.
func (l *NotificationList) UnreadCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	count := 0
	for _, n := range l.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead marca una notificación como leída. Devuelve false si no existe.
func (l *NotificationList) MarkRead(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.notifications {
		if l.notifications[i].ID == id {
			l.notifications[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead marca todas como leídas.
func (l *NotificationList) MarkAllRead() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.notifications {
		l.notifications[i].Read = true
	}
}

// ClearAll elimina todas las notificaciones. Los productos ya vistos no se
// vuelven a notificar en syncs posteriores.
func (l *NotificationList) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notifications = nil
}
