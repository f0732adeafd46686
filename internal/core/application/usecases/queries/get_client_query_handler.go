package queries

import (
	"context"
	"database/sql"
	"errors"

	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetClientQueryHandler reads one client by ID or human code.
type GetClientQueryHandler struct {
	db *gorm.DB
}

// NewGetClientQueryHandler creates a handler over db.
func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when no client matches.
func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (ClientView, error) {
	if err := query.Validate(); err != nil {
		return ClientView{}, err
	}

	param, key, arg := "clientId", "id", any(nil)
	if query.clientID != nil {
		arg = query.clientID.Bytes()
	} else {
		param, key, arg = "humanCode", "human_code", query.humanCode.String()
	}

	row := h.db.WithContext(ctx).Raw(`SELECT `+clientColumns+` FROM clients WHERE `+key+` = ?`, arg).Row()
	view, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ClientView{}, errs.NewObjectNotFoundError(param, arg)
	}
	if err != nil {
		return ClientView{}, err
	}

	return view, nil
}
