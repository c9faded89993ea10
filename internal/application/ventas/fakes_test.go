package ventas_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmanet/farmacia-api/internal/application/ventas"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un almacén compartido y repos que lo leen y mutan. El
// txRunner falso toma un snapshot antes de ejecutar el callback y lo restaura
// si hay error, imitando el rollback de una transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	productos   map[int64]*entity.Producto
	ventas      []*entity.Venta
	detalles    []*entity.DetalleVenta
	movimientos []*entity.MovimientoStock
	nextID      int64
}

func newMemStore(productos ...*entity.Producto) *memStore {
	s := &memStore{productos: make(map[int64]*entity.Producto), nextID: 1}
	for _, p := range productos {
		cp := *p
		s.productos[p.ID] = &cp
	}
	return s
}

func (s *memStore) siguienteID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *memStore) snapshot() *memStore {
	cp := &memStore{
		productos:   make(map[int64]*entity.Producto, len(s.productos)),
		ventas:      append([]*entity.Venta(nil), s.ventas...),
		detalles:    append([]*entity.DetalleVenta(nil), s.detalles...),
		movimientos: append([]*entity.MovimientoStock(nil), s.movimientos...),
		nextID:      s.nextID,
	}
	for id, p := range s.productos {
		c := *p
		cp.productos[id] = &c
	}
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.productos = from.productos
	s.ventas = from.ventas
	s.detalles = from.detalles
	s.movimientos = from.movimientos
	s.nextID = from.nextID
}

type memProductoRepo struct{ s *memStore }

func (r *memProductoRepo) Crear(p *entity.Producto) error {
	p.ID = r.s.siguienteID()
	cp := *p
	r.s.productos[p.ID] = &cp
	return nil
}

func (r *memProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.s.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *memProductoRepo) Actualizar(p *entity.Producto) error {
	cp := *p
	r.s.productos[p.ID] = &cp
	return nil
}

func (r *memProductoRepo) AjustarStock(id int64, delta int) (int64, error) {
	p, ok := r.s.productos[id]
	if !ok {
		return 0, nil
	}
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.Estado = entity.CalcularEstado(p.Stock, p.FechaVencimiento, time.Now())
	return 1, nil
}

func (r *memProductoRepo) Listar(limit, offset int) ([]*entity.Producto, error) { return nil, nil }
func (r *memProductoRepo) ListarBajoStock() ([]*entity.Producto, error)        { return nil, nil }
func (r *memProductoRepo) Eliminar(id int64) error {
	delete(r.s.productos, id)
	return nil
}

type memVentaRepo struct{ s *memStore }

func (r *memVentaRepo) Crear(v *entity.Venta) error {
	v.ID = r.s.siguienteID()
	cp := *v
	r.s.ventas = append(r.s.ventas, &cp)
	return nil
}

func (r *memVentaRepo) CrearDetalle(d *entity.DetalleVenta) error {
	d.ID = r.s.siguienteID()
	d.Subtotal = d.PrecioUnitario.Mul(decimalFromInt(d.Cantidad))
	cp := *d
	r.s.detalles = append(r.s.detalles, &cp)
	return nil
}

func (r *memVentaRepo) GetByID(id int64) (*entity.Venta, error) {
	for _, v := range r.s.ventas {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memVentaRepo) ListarDetalles(ventaID int64) ([]*entity.DetalleVenta, error) {
	var out []*entity.DetalleVenta
	for _, d := range r.s.detalles {
		if d.VentaID == ventaID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memVentaRepo) Listar(limit, offset int) ([]*entity.Venta, error) {
	out := make([]*entity.Venta, 0, len(r.s.ventas))
	for _, v := range r.s.ventas {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

type memMovimientoRepo struct{ s *memStore }

func (r *memMovimientoRepo) Crear(m *entity.MovimientoStock) error {
	m.ID = r.s.siguienteID()
	m.Fecha = time.Now()
	cp := *m
	r.s.movimientos = append(r.s.movimientos, &cp)
	return nil
}

func (r *memMovimientoRepo) ListarPorProducto(productoID int64, limit, offset int) ([]*entity.MovimientoStock, error) {
	var out []*entity.MovimientoStock
	for i := len(r.s.movimientos) - 1; i >= 0; i-- {
		if r.s.movimientos[i].ProductoID == productoID {
			cp := *r.s.movimientos[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMovimientoRepo) ListarTodos(limit, offset int) ([]*entity.MovimientoConProducto, error) {
	return nil, nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// memTxRunner ejecuta el callback sobre el almacén y revierte el estado
// completo si devuelve error. El mutex serializa transacciones concurrentes,
// como lo haría el FOR UPDATE sobre las filas bloqueadas.
type memTxRunner struct {
	s  *memStore
	mu sync.Mutex
}

var _ ventas.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.s.snapshot()
	err := fn(&memVentaRepo{s: r.s}, &memProductoRepo{s: r.s}, &memMovimientoRepo{s: r.s})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// capturaNotificador guarda lo notificado para inspección.
type capturaNotificador struct {
	llamadas  int
	productos []*entity.Producto
}

var _ ventas.Notificador = (*capturaNotificador)(nil)

func (n *capturaNotificador) NotificarBajoStock(ctx context.Context, productos []*entity.Producto) {
	n.llamadas++
	n.productos = append(n.productos, productos...)
}
