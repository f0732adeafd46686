package http

import (
	"cargo/internal/api"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/user"
)

func clientFromDomain(c *client.Client) api.Client {
	return api.Client{
		Id:         c.ID().Bytes(),
		HumanCode:  c.HumanCode().String(),
		Name:       c.Name(),
		Phone:      c.Phone(),
		ChatHandle: optional(c.ChatHandle()),
		CreatedAt:  c.CreatedAt(),
	}
}

func clientFromView(v queries.ClientView) api.Client {
	return api.Client{
		Id:         v.ID.Bytes(),
		HumanCode:  v.HumanCode,
		Name:       v.Name,
		Phone:      v.Phone,
		ChatHandle: optional(v.ChatHandle),
		CreatedAt:  v.CreatedAt,
	}
}

func parcelFromDomain(p *parcel.Parcel) api.Parcel {
	out := api.Parcel{
		Id:           p.ID().Bytes(),
		TrackingCode: p.TrackingCode(),
		Weight:       p.Dimensions().Weight(),
		Volume:       p.Dimensions().Volume(),
		Price:        p.Price(),
		Status:       api.ParcelStatus(p.Status().String()),
		ClientId:     p.ClientID().Bytes(),
		CreatedAt:    p.CreatedAt(),
		DeliveredAt:  p.DeliveredAt(),
	}
	if sid := p.ShipmentID(); sid != nil {
		id := sid.Bytes()
		out.ShipmentId = &id
	}
	return out
}

func parcelFromView(v queries.ParcelView) api.Parcel {
	out := api.Parcel{
		Id:              v.ID.Bytes(),
		TrackingCode:    v.TrackingCode,
		Weight:          v.Weight,
		Volume:          v.Volume,
		Price:           v.Price,
		Status:          api.ParcelStatus(v.Status.String()),
		ClientId:        v.ClientID.Bytes(),
		ClientHumanCode: optional(v.ClientHumanCode),
		ClientName:      optional(v.ClientName),
		CreatedAt:       v.CreatedAt,
		DeliveredAt:     v.DeliveredAt,
	}
	if v.ShipmentID != nil {
		id := v.ShipmentID.Bytes()
		out.ShipmentId = &id
	}
	return out
}

func parcelsFromViews(views []queries.ParcelView) []api.Parcel {
	out := make([]api.Parcel, len(views))
	for i, v := range views {
		out[i] = parcelFromView(v)
	}
	return out
}

func shipmentFromView(v queries.ShipmentView) api.Shipment {
	members := parcelsFromViews(v.Parcels)
	return api.Shipment{
		Id:            v.ID.Bytes(),
		Name:          v.Name,
		Status:        api.ShipmentStatus(v.Status.String()),
		TotalWeight:   v.TotalWeight,
		TotalVolume:   v.TotalVolume,
		DepartureDate: v.DepartureDate,
		ArrivalDate:   v.ArrivalDate,
		CreatedAt:     v.CreatedAt,
		Parcels:       &members,
	}
}

func userFromDomain(u *user.User) api.User {
	return api.User{
		Id:       u.ID().Bytes(),
		Username: u.Username(),
		Role:     api.UserRole(u.Role().String()),
	}
}

func userFromView(v queries.UserView) api.User {
	return api.User{
		Id:       v.ID.Bytes(),
		Username: v.Username,
		Role:     api.UserRole(v.Role.String()),
	}
}
