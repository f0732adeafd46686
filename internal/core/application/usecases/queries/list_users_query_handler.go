package queries

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUsersQueryHandler reads operator accounts. Password hashes never
// leave the database.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler over db.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle returns accounts ordered by username.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT id, username, role FROM users ORDER BY username`).Rows()
	if err != nil {
		return nil, err
	}

	return collect(rows, func(row rowScanner) (UserView, error) {
		var id uuid.UUID
		var view UserView
		var role int

		if err := row.Scan(&id, &view.Username, &role); err != nil {
			return UserView{}, err
		}

		userID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return UserView{}, err
		}
		view.ID = userID
		view.Role = user.Role(role)

		return view, nil
	})
}
