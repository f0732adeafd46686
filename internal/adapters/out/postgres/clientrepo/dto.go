// Package clientrepo persists client aggregates with GORM.
package clientrepo

import (
	"time"

	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO is the row layout of the clients table.
type ClientDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	HumanCode  string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Phone      string    `gorm:"type:varchar(20);not null"`
	ChatHandle *string   `gorm:"type:varchar(100)"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	var chatHandle *string
	if aggregate.HasChatHandle() {
		handle := aggregate.ChatHandle()
		chatHandle = &handle
	}

	return ClientDTO{
		ID:         aggregate.ID().Bytes(),
		HumanCode:  aggregate.HumanCode().String(),
		Name:       aggregate.Name(),
		Phone:      aggregate.Phone(),
		ChatHandle: chatHandle,
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	chatHandle := ""
	if dto.ChatHandle != nil {
		chatHandle = *dto.ChatHandle
	}

	return client.RestoreClient(id, client.HumanCode(dto.HumanCode), dto.Name, dto.Phone, chatHandle, dto.CreatedAt)
}
