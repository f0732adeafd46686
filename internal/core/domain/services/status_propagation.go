package services

import (
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
)

// parcelStatusByShipmentStatus maps a shipment status to the status its member
// parcels take. Statuses missing from the table map to InWarehouse.
//
//	Shipment    Parcel
//	EnRoute  -> EnRoute
//	Arrived  -> Arrived
//	Completed-> Arrived   (Delivered is reached per parcel, not per shipment)
//	other    -> InWarehouse
var parcelStatusByShipmentStatus = map[shipment.Status]parcel.Status{
	shipment.EnRoute:   parcel.EnRoute,
	shipment.Arrived:   parcel.Arrived,
	shipment.Completed: parcel.Arrived,
}

// ParcelStatusFor returns the parcel status that corresponds to a shipment status.
func ParcelStatusFor(status shipment.Status) parcel.Status {
	if s, ok := parcelStatusByShipmentStatus[status]; ok {
		return s
	}
	return parcel.InWarehouse
}
