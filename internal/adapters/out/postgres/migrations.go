package postgres

import (
	"fmt"

	"cargo/internal/adapters/out/postgres/clientrepo"
	"cargo/internal/adapters/out/postgres/parcelrepo"
	"cargo/internal/adapters/out/postgres/shipmentrepo"
	"cargo/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	name string
	sql  string
}

// Parcels must not outlive their client; a deleted shipment releases its
// members instead of taking them with it.
var foreignKeys = []foreignKey{
	{
		name: "fk_parcels_client",
		sql: `ALTER TABLE parcels ADD CONSTRAINT fk_parcels_client
			FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE RESTRICT`,
	},
	{
		name: "fk_parcels_shipment",
		sql: `ALTER TABLE parcels ADD CONSTRAINT fk_parcels_shipment
			FOREIGN KEY (shipment_id) REFERENCES shipments(id) ON DELETE SET NULL`,
	},
}

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&clientrepo.ClientDTO{},
		&shipmentrepo.ShipmentDTO{},
		&parcelrepo.ParcelDTO{},
		&userrepo.UserDTO{},
	}
}

// Migrate creates or updates the schema. It is safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, fk := range foreignKeys {
		if db.Migrator().HasConstraint(&parcelrepo.ParcelDTO{}, fk.name) {
			continue
		}
		if err := db.Exec(fk.sql).Error; err != nil {
			return fmt.Errorf("create constraint %s: %w", fk.name, err)
		}
	}

	return nil
}
