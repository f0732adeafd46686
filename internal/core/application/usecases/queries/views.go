// Package queries contains read-only operations over the cargo database.
// Handlers run plain SQL through GORM and return flat read models; they never
// load aggregates or open a unit of work.
package queries

import (
	"database/sql"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/model/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientView is the read model of a client.
type ClientView struct {
	ID         kernel.UUID
	HumanCode  string
	Name       string
	Phone      string
	ChatHandle string
	CreatedAt  time.Time
}

// ParcelView is the read model of a parcel together with its owner's
// human code and name.
type ParcelView struct {
	ID              kernel.UUID
	TrackingCode    string
	Weight          float64
	Volume          float64
	Price           decimal.Decimal
	Status          parcel.Status
	ClientID        kernel.UUID
	ClientHumanCode string
	ClientName      string
	ShipmentID      *kernel.UUID
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}

// ShipmentView is the read model of a shipment with its current members.
type ShipmentView struct {
	ID            kernel.UUID
	Name          string
	Status        shipment.Status
	TotalWeight   float64
	TotalVolume   float64
	DepartureDate *time.Time
	ArrivalDate   *time.Time
	CreatedAt     time.Time
	Parcels       []ParcelView
}

// UserView is the read model of an operator account. The password hash is
// never selected.
type UserView struct {
	ID       kernel.UUID
	Username string
	Role     user.Role
}

const clientColumns = `id, human_code, name, phone, chat_handle, created_at`

// Length first so that A100000 sorts after A99999.
const clientOrder = `ORDER BY length(human_code), human_code`

const parcelSelect = `
	SELECT
		p.id,
		p.tracking_code,
		p.weight,
		p.volume,
		p.price,
		p.status,
		p.client_id,
		c.human_code,
		c.name,
		p.shipment_id,
		p.created_at,
		p.delivered_at
	FROM parcels p
	JOIN clients c ON c.id = p.client_id`

const shipmentColumns = `id, name, status, total_weight, total_volume, departure_date, arrival_date, created_at`

// rowScanner is satisfied by *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (ClientView, error) {
	var view ClientView
	var id uuid.UUID
	var chatHandle sql.NullString

	if err := row.Scan(&id, &view.HumanCode, &view.Name, &view.Phone, &chatHandle, &view.CreatedAt); err != nil {
		return ClientView{}, err
	}

	clientID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ClientView{}, err
	}
	view.ID = clientID
	view.ChatHandle = chatHandle.String

	return view, nil
}

func scanParcel(row rowScanner) (ParcelView, error) {
	var view ParcelView
	var id, clientID uuid.UUID
	var shipmentID uuid.NullUUID
	var status int

	if err := row.Scan(
		&id,
		&view.TrackingCode,
		&view.Weight,
		&view.Volume,
		&view.Price,
		&status,
		&clientID,
		&view.ClientHumanCode,
		&view.ClientName,
		&shipmentID,
		&view.CreatedAt,
		&view.DeliveredAt,
	); err != nil {
		return ParcelView{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ParcelView{}, err
	}
	view.ID = parcelID

	owner, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return ParcelView{}, err
	}
	view.ClientID = owner

	if shipmentID.Valid {
		sID, shipmentErr := kernel.UUIDFromBytes(shipmentID.UUID[:])
		if shipmentErr != nil {
			return ParcelView{}, shipmentErr
		}
		view.ShipmentID = &sID
	}
	view.Status = parcel.Status(status)

	return view, nil
}

func scanShipment(row rowScanner) (ShipmentView, error) {
	var view ShipmentView
	var id uuid.UUID
	var status int

	if err := row.Scan(
		&id,
		&view.Name,
		&status,
		&view.TotalWeight,
		&view.TotalVolume,
		&view.DepartureDate,
		&view.ArrivalDate,
		&view.CreatedAt,
	); err != nil {
		return ShipmentView{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentView{}, err
	}
	view.ID = shipmentID
	view.Status = shipment.Status(status)
	view.Parcels = make([]ParcelView, 0)

	return view, nil
}

// collect drains rows through scan, closing them afterwards.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
