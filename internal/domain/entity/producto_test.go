package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/farmanet/farmacia-api/internal/domain/entity"
)

func TestCalcularEstado(t *testing.T) {
	ahora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lejos := ahora.AddDate(0, 6, 0)
	cerca := ahora.AddDate(0, 0, 15)
	justoEnLaVentana := ahora.AddDate(0, 0, entity.DiasAlertaVencimiento)

	casos := []struct {
		nombre      string
		stock       int
		vencimiento *time.Time
		esperado    string
	}{
		{"stock positivo sin vencimiento", 10, nil, entity.EstadoDisponible},
		{"stock cero", 0, nil, entity.EstadoAgotado},
		{"stock cero con vencimiento cercano gana agotado", 0, &cerca, entity.EstadoAgotado},
		{"vencimiento lejano", 5, &lejos, entity.EstadoDisponible},
		{"vencimiento dentro de la ventana", 5, &cerca, entity.EstadoPorVencer},
		{"vencimiento exactamente en el borde", 5, &justoEnLaVentana, entity.EstadoPorVencer},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, entity.CalcularEstado(c.stock, c.vencimiento, ahora))
		})
	}
}

func TestBajoStock(t *testing.T) {
	assert.True(t, (&entity.Producto{Stock: 3, StockMinimo: 5}).BajoStock())
	assert.True(t, (&entity.Producto{Stock: 5, StockMinimo: 5}).BajoStock())
	assert.False(t, (&entity.Producto{Stock: 6, StockMinimo: 5}).BajoStock())
}
