package ventas_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/application/ventas"
	"github.com/farmanet/farmacia-api/internal/domain"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func producto(id int64, stock, minimo int) *entity.Producto {
	return &entity.Producto{
		ID:          id,
		Nombre:      fmt.Sprintf("Producto %d", id),
		Stock:       stock,
		StockMinimo: minimo,
		Estado:      entity.EstadoDisponible,
	}
}

func precio(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ventaDe(items ...dto.VentaItemRequest) dto.CreateVentaRequest {
	var total decimal.Decimal
	for _, it := range items {
		total = total.Add(it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))))
	}
	return dto.CreateVentaRequest{Total: total, MetodoPago: entity.MetodoEfectivo, Items: items}
}

// ──────────────────────────────────────────────────────────────────────────────
// Venta exitosa
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateVenta_DescuentaStockYRegistraMovimientos(t *testing.T) {
	store := newMemStore(producto(1, 10, 2))
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, nil)

	id, err := uc.CreateVenta(context.Background(), ventaDe(
		dto.VentaItemRequest{ProductoID: 1, Cantidad: 4, PrecioUnitario: precio("1500.00")},
	))
	require.NoError(t, err)
	require.NotZero(t, id)

	// Stock 10 - 4 = 6
	assert.Equal(t, 6, store.productos[1].Stock)

	// Cabecera persistida con total recalculado
	require.Len(t, store.ventas, 1)
	assert.True(t, store.ventas[0].Total.Equal(precio("6000.00")))
	assert.Equal(t, entity.VentaCompletada, store.ventas[0].Estado)

	// Un detalle y un movimiento de salida referenciando la venta
	require.Len(t, store.detalles, 1)
	assert.Equal(t, id, store.detalles[0].VentaID)
	require.Len(t, store.movimientos, 1)
	mov := store.movimientos[0]
	assert.Equal(t, entity.TipoSalida, mov.Tipo)
	assert.Equal(t, 4, mov.Cantidad)
	assert.Equal(t, fmt.Sprintf("Venta #%d", id), mov.Descripcion)
	assert.NotEmpty(t, mov.GrupoID)
}

func TestCreateVenta_MultiplesLineasUnMovimientoPorLinea(t *testing.T) {
	store := newMemStore(producto(1, 10, 0), producto(2, 5, 0))
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, nil)

	id, err := uc.CreateVenta(context.Background(), ventaDe(
		dto.VentaItemRequest{ProductoID: 1, Cantidad: 3, PrecioUnitario: precio("100.00")},
		dto.VentaItemRequest{ProductoID: 2, Cantidad: 2, PrecioUnitario: precio("250.50")},
	))
	require.NoError(t, err)

	assert.Equal(t, 7, store.productos[1].Stock)
	assert.Equal(t, 3, store.productos[2].Stock)
	require.Len(t, store.movimientos, 2)
	// Todos los movimientos de la venta comparten grupo
	assert.Equal(t, store.movimientos[0].GrupoID, store.movimientos[1].GrupoID)
	for _, m := range store.movimientos {
		assert.Equal(t, fmt.Sprintf("Venta #%d", id), m.Descripcion)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock insuficiente y atomicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateVenta_StockInsuficienteNoMutaNada(t *testing.T) {
	store := newMemStore(producto(1, 2, 0))
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, nil)

	_, err := uc.CreateVenta(context.Background(), ventaDe(
		dto.VentaItemRequest{ProductoID: 1, Cantidad: 5, PrecioUnitario: precio("100.00")},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada cambió: ni stock, ni ventas, ni movimientos
	assert.Equal(t, 2, store.productos[1].Stock)
	assert.Empty(t, store.ventas)
	assert.Empty(t, store.detalles)
	assert.Empty(t, store.movimientos)
}

func TestCreateVenta_ProductoInexistenteRevierteTodo(t *testing.T) {
	store := newMemStore(producto(1, 10, 0))
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, nil)

	// El producto 99 no existe; el producto 1 sí y va primero
	_, err := uc.CreateVenta(context.Background(), ventaDe(
		dto.VentaItemRequest{ProductoID: 1, Cantidad: 2, PrecioUnitario: precio("100.00")},
		dto.VentaItemRequest{ProductoID: 99, Cantidad: 1, PrecioUnitario: precio("50.00")},
	))
	require.ErrorIs(t, err, domain.ErrProductoNotFound)

	assert.Equal(t, 10, store.productos[1].Stock, "el stock del producto existente no debe cambiar")
	assert.Empty(t, store.ventas)
	assert.Empty(t, store.movimientos)
}

func TestCreateVenta_ProductoRepetidoSumaCantidades(t *testing.T) {
	store := newMemStore(producto(1, 5, 0))
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, nil)

	// 3 + 3 = 6 > 5: insuficiente aunque cada línea por separado alcance
	_, err := uc.CreateVenta(context.Background(), ventaDe(
		dto.VentaItemRequest{ProductoID: 1, Cantidad: 3, PrecioUnitario: precio("100.00")},
		dto.VentaItemRequest{ProductoID: 1, Cantidad: 3, PrecioUnitario: precio("100.00")},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, store.productos[1].Stock)
}

func TestCreateVenta_VentasConcurrentesSoloUnaDescuenta(t *testing.T) {
	store := newMemStore(producto(1, 5, 0))
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, nil)

	// Dos ventas simultáneas de 3 unidades sobre stock 5: la primera en tomar
	// el bloqueo descuenta, la segunda ve stock 2 y debe fallar
	venderTres := func() error {
		_, err := uc.CreateVenta(context.Background(), ventaDe(
			dto.VentaItemRequest{ProductoID: 1, Cantidad: 3, PrecioUnitario: precio("100.00")},
		))
		return err
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- venderTres()
		}()
	}
	wg.Wait()
	close(errs)

	var exitos, insuficientes int
	for err := range errs {
		switch {
		case err == nil:
			exitos++
		case errors.Is(err, domain.ErrInsufficientStock):
			insuficientes++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, exitos)
	assert.Equal(t, 1, insuficientes)

	// Solo la venta ganadora quedó persistida
	assert.Equal(t, 2, store.productos[1].Stock)
	assert.Len(t, store.ventas, 1)
	assert.Len(t, store.movimientos, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateVenta_Validaciones(t *testing.T) {
	store := newMemStore(producto(1, 10, 0))
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, nil)
	ctx := context.Background()

	t.Run("sin items", func(t *testing.T) {
		_, err := uc.CreateVenta(ctx, dto.CreateVentaRequest{Total: decimal.Zero})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cantidad cero", func(t *testing.T) {
		in := ventaDe(dto.VentaItemRequest{ProductoID: 1, Cantidad: 0, PrecioUnitario: precio("100.00")})
		_, err := uc.CreateVenta(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("precio negativo", func(t *testing.T) {
		in := ventaDe(dto.VentaItemRequest{ProductoID: 1, Cantidad: 1, PrecioUnitario: precio("-10.00")})
		_, err := uc.CreateVenta(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("precio con mas de dos decimales", func(t *testing.T) {
		in := ventaDe(dto.VentaItemRequest{ProductoID: 1, Cantidad: 1, PrecioUnitario: precio("10.999")})
		_, err := uc.CreateVenta(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("total que no cuadra", func(t *testing.T) {
		in := ventaDe(dto.VentaItemRequest{ProductoID: 1, Cantidad: 2, PrecioUnitario: precio("100.00")})
		in.Total = precio("150.00")
		_, err := uc.CreateVenta(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("metodo de pago desconocido", func(t *testing.T) {
		in := ventaDe(dto.VentaItemRequest{ProductoID: 1, Cantidad: 1, PrecioUnitario: precio("100.00")})
		in.MetodoPago = "cheque"
		_, err := uc.CreateVenta(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	// Nada de lo anterior debe haber tocado el almacén
	assert.Equal(t, 10, store.productos[1].Stock)
	assert.Empty(t, store.ventas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateVenta_NotificaBajoStockDespuesDeCommit(t *testing.T) {
	store := newMemStore(producto(1, 5, 3))
	notif := &capturaNotificador{}
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, notif)

	// 5 - 3 = 2 <= minimo 3: debe alertar
	_, err := uc.CreateVenta(context.Background(), ventaDe(
		dto.VentaItemRequest{ProductoID: 1, Cantidad: 3, PrecioUnitario: precio("100.00")},
	))
	require.NoError(t, err)
	require.Equal(t, 1, notif.llamadas)
	require.Len(t, notif.productos, 1)
	assert.Equal(t, int64(1), notif.productos[0].ID)
	assert.Equal(t, 2, notif.productos[0].Stock)
}

func TestCreateVenta_NoNotificaSiLaVentaFalla(t *testing.T) {
	store := newMemStore(producto(1, 2, 5))
	notif := &capturaNotificador{}
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, notif)

	_, err := uc.CreateVenta(context.Background(), ventaDe(
		dto.VentaItemRequest{ProductoID: 1, Cantidad: 10, PrecioUnitario: precio("100.00")},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Zero(t, notif.llamadas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura después de escribir
// ──────────────────────────────────────────────────────────────────────────────

func TestGetVenta_DevuelveVentaConDetallesEnOrden(t *testing.T) {
	store := newMemStore(producto(1, 10, 0), producto(2, 10, 0))
	uc := ventas.NewCreateVentaUseCase(&memTxRunner{s: store}, nil)

	id, err := uc.CreateVenta(context.Background(), ventaDe(
		dto.VentaItemRequest{ProductoID: 1, Cantidad: 1, PrecioUnitario: precio("100.00")},
		dto.VentaItemRequest{ProductoID: 2, Cantidad: 2, PrecioUnitario: precio("200.00")},
	))
	require.NoError(t, err)

	getUC := ventas.NewGetVentaUseCase(&memVentaRepo{s: store})
	resp, err := getUC.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(1), resp.Items[0].ProductoID)
	assert.Equal(t, int64(2), resp.Items[1].ProductoID)
	assert.True(t, resp.Total.Equal(precio("500.00")))
}

func TestGetVenta_NoExisteDevuelveErrNotFound(t *testing.T) {
	store := newMemStore()
	getUC := ventas.NewGetVentaUseCase(&memVentaRepo{s: store})

	_, err := getUC.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
