package clients

import "context"

// Repository es el handle de conexión al servicio tabular remoto.
// Se inyecta en el Controller; no hay cliente global.
type Repository interface {
	// ListNewestFirst trae todas las filas ordenadas por created_at desc.
	ListNewestFirst(ctx context.Context) ([]Client, error)
	// Create inserta una fila; el servicio asigna id y created_at.
	Create(ctx context.Context, in NewClient) error
}
