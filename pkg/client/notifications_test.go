package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockProduct(id, name, sku string, stock, threshold int) Product {
	return Product{ID: id, Name: name, SKU: sku, Stock: stock, LowStockThreshold: threshold}
}

func TestSyncFromReportsDeduplicates(t *testing.T) {
	l := NewNotificationList()
	low := []Product{stockProduct("p1", "Bajo", "LOW-01", 2, 10)}
	out := []Product{stockProduct("p2", "Agotado", "OUT-01", 0, 10)}

	l.SyncFromReports(low, out)
	require.Len(t, l.All(), 2)
	assert.Equal(t, 2, l.UnreadCount())

	// Un segundo sync con los mismos productos no duplica.
	l.SyncFromReports(low, out)
	assert.Len(t, l.All(), 2)
}

func TestAddAppendsWithoutDeduplication(t *testing.T) {
	l := NewNotificationList()
	l.Add(NotificationSuccess, "Producto creado", "Teclado")
	l.Add(NotificationSuccess, "Producto creado", "Teclado")

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, NotificationSuccess, all[0].Type)
	assert.Equal(t, 2, l.UnreadCount())
}

func TestMarkReadAndMarkAllRead(t *testing.T) {
	l := NewNotificationList()
	l.SyncFromReports([]Product{stockProduct("p1", "Bajo", "LOW-01", 2, 10)}, nil)
	l.SyncFromReports([]Product{stockProduct("p2", "Otro", "LOW-02", 1, 10)}, nil)

	all := l.All()
	require.Len(t, all, 2)

	assert.True(t, l.MarkRead(all[0].ID))
	assert.Equal(t, 1, l.UnreadCount())
	assert.False(t, l.MarkRead("missing"))

	l.MarkAllRead()
	assert.Zero(t, l.UnreadCount())
}

func TestClearAllKeepsSeenProducts(t *testing.T) {
	l := NewNotificationList()
	low := []Product{stockProduct("p1", "Bajo", "LOW-01", 2, 10)}
	l.SyncFromReports(low, nil)
	require.Len(t, l.All(), 1)

	l.ClearAll()
	assert.Empty(t, l.All())
	assert.Zero(t, l.UnreadCount())

	// El producto ya notificado no reaparece tras limpiar.
	l.SyncFromReports(low, nil)
	assert.Empty(t, l.All())
}

func TestNewestNotificationsFirst(t *testing.T) {
	l := NewNotificationList()
	l.SyncFromReports([]Product{stockProduct("p1", "Primero", "LOW-01", 2, 10)}, nil)
	l.SyncFromReports([]Product{stockProduct("p2", "Segundo", "LOW-02", 1, 10)}, nil)

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, "p2", all[0].ProductID)
}
