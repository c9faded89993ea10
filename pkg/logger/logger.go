// Package logger arma el logger estructurado de la farmacia sobre zerolog.
// Toda la aplicación recibe un *Logger por inyección; nadie loguea con el
// logger global salvo las librerías de terceros, que quedan redirigidas aquí.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controla formato y nivel. En development la salida es consola
// coloreada para leer durante el desarrollo; cualquier otro Env emite JSON
// por stdout para el colector.
type Config struct {
	Env   string
	Level string // trace | debug | info | warn | error (default info)
}

// Logger envuelve un zerolog.Logger concreto.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger de la aplicación según cfg y redirige el logger
// global de zerolog al mismo destino.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// NewNop descarta todo lo que se loguee. Lo usan los tests y los componentes
// opcionales que arrancan sin logger configurado.
func NewNop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(s); err == nil && s != "" {
		return lvl
	}
	return zerolog.InfoLevel
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un contexto para derivar un sublogger con campos fijos, por
// ejemplo el nombre del componente.
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger interno para los adaptadores que piden la API
// de zerolog directamente.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
