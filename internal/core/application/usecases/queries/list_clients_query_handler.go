package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListClientsQueryHandler reads the client registry.
//
// Example:
//
//	handler := NewListClientsQueryHandler(db)
//	clients, err := handler.Handle(ctx, NewListClientsQuery())
type ListClientsQueryHandler struct {
	db *gorm.DB
}

// NewListClientsQueryHandler creates a handler over db.
func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db}
}

// Handle returns all clients, A00001 first. The slice is never nil.
func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT ` + clientColumns + ` FROM clients ` + clientOrder).Rows()
	if err != nil {
		return nil, err
	}

	return collect(rows, scanClient)
}
