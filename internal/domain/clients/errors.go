package clients

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBusy         = errors.New("write already in flight")
)

// Valores del campo "kind" en el canal de diagnóstico.
const (
	KindReadFailure  = "read_failure"
	KindWriteFailure = "write_failure"
)

// ReadFailure: falló la lectura remota de la tabla.
type ReadFailure struct {
	Err error
}

func (e *ReadFailure) Error() string { return fmt.Sprintf("read clients: %v", e.Err) }
func (e *ReadFailure) Unwrap() error { return e.Err }

// WriteFailure: falló el insert remoto.
type WriteFailure struct {
	Err error
}

func (e *WriteFailure) Error() string { return fmt.Sprintf("insert client: %v", e.Err) }
func (e *WriteFailure) Unwrap() error { return e.Err }
