package notificacion

import (
	"context"
	"fmt"
	"strings"

	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/pkg/logger"
)

// EmailSender puerto hacia el transporte de correo.
type EmailSender interface {
	Enviar(destinatario, asunto, cuerpo string) error
}

// LowStockNotifier avisa por correo cuando una venta o un ajuste deja productos
// en o bajo su stock mínimo. Los fallos de envío se registran y no se propagan:
// la operación que disparó el aviso ya está confirmada.
type LowStockNotifier struct {
	sender       EmailSender
	destinatario string
	log          *logger.Logger
}

// NewLowStockNotifier construye el notificador.
func NewLowStockNotifier(sender EmailSender, destinatario string, log *logger.Logger) *LowStockNotifier {
	return &LowStockNotifier{sender: sender, destinatario: destinatario, log: log}
}

// NotificarBajoStock envía un único correo resumiendo los productos afectados.
func (n *LowStockNotifier) NotificarBajoStock(ctx context.Context, productos []*entity.Producto) {
	if len(productos) == 0 || n.sender == nil || n.destinatario == "" {
		return
	}
	var b strings.Builder
	b.WriteString("Los siguientes productos quedaron en o bajo su stock mínimo:\n\n")
	for _, p := range productos {
		fmt.Fprintf(&b, "- %s (ID %d): stock %d, mínimo %d\n", p.Nombre, p.ID, p.Stock, p.StockMinimo)
	}
	asunto := fmt.Sprintf("Alerta de stock bajo: %d producto(s)", len(productos))
	if err := n.sender.Enviar(n.destinatario, asunto, b.String()); err != nil {
		n.log.Error().Err(err).Msg("no se pudo enviar la alerta de stock bajo")
		return
	}
	n.log.Info().Int("productos", len(productos)).Msg("alerta de stock bajo enviada")
}
