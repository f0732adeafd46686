package commands_test

import (
	"context"
	"sort"
	"sync"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/model/user"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// memoryStore is an in-process stand-in for the database. Aggregates are
// stored as copies so that unsaved changes never leak into storage.
type memoryStore struct {
	mu        sync.Mutex
	clients   map[kernel.UUID]client.Client
	parcels   map[kernel.UUID]parcel.Parcel
	shipments map[kernel.UUID]shipment.Shipment
	users     map[kernel.UUID]user.User
	order     []kernel.UUID
	commits   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		clients:   map[kernel.UUID]client.Client{},
		parcels:   map[kernel.UUID]parcel.Parcel{},
		shipments: map[kernel.UUID]shipment.Shipment{},
		users:     map[kernel.UUID]user.User{},
	}
}

func (s *memoryStore) Create() commands.CargoUoW { return &memoryUoW{store: s} }

func (s *memoryStore) clientFactory() commands.ClientUoWFactory {
	return clientUoWFactoryFunc(func() commands.ClientUoW { return &memoryUoW{store: s} })
}

func (s *memoryStore) userFactory() commands.UserUoWFactory {
	return userUoWFactoryFunc(func() commands.UserUoW { return &memoryUoW{store: s} })
}

func (s *memoryStore) parcel(id kernel.UUID) parcel.Parcel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parcels[id]
}

func (s *memoryStore) shipment(id kernel.UUID) shipment.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipments[id]
}

type clientUoWFactoryFunc func() commands.ClientUoW

func (f clientUoWFactoryFunc) Create() commands.ClientUoW { return f() }

type userUoWFactoryFunc func() commands.UserUoW

func (f userUoWFactoryFunc) Create() commands.UserUoW { return f() }

type memoryUoW struct{ store *memoryStore }

func (u *memoryUoW) Begin(context.Context) error    { return nil }
func (u *memoryUoW) Rollback(context.Context) error { return nil }
func (u *memoryUoW) Commit(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.commits++
	return nil
}

func (u *memoryUoW) ClientRepository() ports.ClientRepository     { return memoryClients{u.store} }
func (u *memoryUoW) ParcelRepository() ports.ParcelRepository     { return memoryParcels{u.store} }
func (u *memoryUoW) ShipmentRepository() ports.ShipmentRepository { return memoryShipments{u.store} }
func (u *memoryUoW) UserRepository() ports.UserRepository         { return memoryUsers{u.store} }

type memoryClients struct{ s *memoryStore }

func (r memoryClients) Add(_ context.Context, c *client.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.clients {
		if existing.HumanCode() == c.HumanCode() {
			return errs.NewConflictError("humanCode", c.HumanCode())
		}
	}
	r.s.clients[c.ID()] = *c
	return nil
}

func (r memoryClients) Update(_ context.Context, c *client.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[c.ID()] = *c
	return nil
}

func (r memoryClients) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return errs.NewObjectNotFoundError("clientId", id)
	}
	delete(r.s.clients, id)
	return nil
}

func (r memoryClients) Get(_ context.Context, id kernel.UUID) (*client.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("clientId", id)
	}
	return &c, nil
}

func (r memoryClients) GetByHumanCode(_ context.Context, code client.HumanCode) (*client.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clients {
		if c.HumanCode() == code {
			return &c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("humanCode", code)
}

func (r memoryClients) LastHumanCode(context.Context) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	last := ""
	for _, c := range r.s.clients {
		if c.HumanCode().String() > last {
			last = c.HumanCode().String()
		}
	}
	return last, nil
}

type memoryParcels struct{ s *memoryStore }

func (r memoryParcels) Add(_ context.Context, p *parcel.Parcel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.parcels {
		if existing.TrackingCode() == p.TrackingCode() {
			return errs.NewConflictError("trackingCode", p.TrackingCode())
		}
	}
	r.s.parcels[p.ID()] = *p
	r.s.order = append(r.s.order, p.ID())
	return nil
}

func (r memoryParcels) Update(_ context.Context, p *parcel.Parcel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parcels[p.ID()]; !ok {
		return errs.NewObjectNotFoundError("parcelId", p.ID())
	}
	r.s.parcels[p.ID()] = *p
	return nil
}

func (r memoryParcels) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parcels[id]; !ok {
		return errs.NewObjectNotFoundError("parcelId", id)
	}
	delete(r.s.parcels, id)
	return nil
}

func (r memoryParcels) Get(_ context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.parcels[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcelId", id)
	}
	return &p, nil
}

func (r memoryParcels) GetByTrackingCode(_ context.Context, code string) (*parcel.Parcel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.parcels {
		if p.TrackingCode() == code {
			return &p, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("trackingCode", code)
}

func (r memoryParcels) GetMany(_ context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*parcel.Parcel, 0, len(ids))
	seen := make(map[kernel.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.s.parcels[id]; ok {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r memoryParcels) GetByShipment(_ context.Context, shipmentID kernel.UUID) ([]*parcel.Parcel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*parcel.Parcel
	for _, id := range r.s.order {
		p, ok := r.s.parcels[id]
		if ok && p.BelongsTo(shipmentID) {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r memoryParcels) CountByClient(_ context.Context, clientID kernel.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, p := range r.s.parcels {
		if p.ClientID().IsEqual(clientID) {
			n++
		}
	}
	return n, nil
}

type memoryShipments struct{ s *memoryStore }

func (r memoryShipments) Add(_ context.Context, sh *shipment.Shipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.shipments[sh.ID()] = *sh
	return nil
}

func (r memoryShipments) Update(_ context.Context, sh *shipment.Shipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shipments[sh.ID()]; !ok {
		return errs.NewObjectNotFoundError("shipmentId", sh.ID())
	}
	r.s.shipments[sh.ID()] = *sh
	return nil
}

// Delete releases members the way the foreign key's ON DELETE SET NULL does.
func (r memoryShipments) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shipments[id]; !ok {
		return errs.NewObjectNotFoundError("shipmentId", id)
	}
	delete(r.s.shipments, id)
	for pid, p := range r.s.parcels {
		if p.BelongsTo(id) {
			p.Unassign()
			r.s.parcels[pid] = p
		}
	}
	return nil
}

func (r memoryShipments) Get(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sh, ok := r.s.shipments[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipmentId", id)
	}
	return &sh, nil
}

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) Add(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username() == u.Username() {
			return errs.NewConflictError("username", u.Username())
		}
	}
	r.s.users[u.ID()] = *u
	return nil
}

func (r memoryUsers) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return errs.NewObjectNotFoundError("userId", id)
	}
	delete(r.s.users, id)
	return nil
}

func (r memoryUsers) GetByUsername(_ context.Context, username string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username() == username {
			return &u, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("username", username)
}

func (r memoryUsers) Count(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

func (s *memoryStore) usernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.users))
	for _, u := range s.users {
		names = append(names, u.Username())
	}
	sort.Strings(names)
	return names
}
