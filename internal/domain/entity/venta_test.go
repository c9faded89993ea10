package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farmanet/farmacia-api/internal/domain/entity"
)

func TestMetodoPagoValido(t *testing.T) {
	for _, m := range []string{entity.MetodoEfectivo, entity.MetodoTarjeta, entity.MetodoNequi, entity.MetodoDaviplata} {
		assert.True(t, entity.MetodoPagoValido(m), m)
	}
	assert.False(t, entity.MetodoPagoValido("cheque"))
	assert.False(t, entity.MetodoPagoValido(""))
	assert.False(t, entity.MetodoPagoValido("EFECTIVO"))
}
