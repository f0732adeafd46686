package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"
)

// DefaultNotifyTimeout bounds a single notification when no timeout is configured.
const DefaultNotifyTimeout = 5 * time.Second

// FormatParcelStatusMessage renders the HTML message sent to a client when
// one of their parcels changes status.
func FormatParcelStatusMessage(trackingCode string, status parcel.Status) string {
	return fmt.Sprintf(
		"📦 <b>Package Update</b>\n\nTracking Code: <code>%s</code>\nNew Status: <b>%s</b>",
		trackingCode, status,
	)
}

type parcelNotification struct {
	recipient    string
	trackingCode string
	text         string
}

// AdvanceShipmentStatusCommandHandler changes shipment status, propagates it
// to member parcels and tells the owning clients.
//
// Business rules:
//   - Unknown shipment: ObjectNotFoundError
//   - The status is set unconditionally; repeats and jumps are allowed
//   - Members take the mapped parcel status (see services.ParcelStatusFor)
//   - Departure/arrival are stamped on first EnRoute/Arrived
//
// After the transaction commits, every member whose client has a chat handle
// is notified, one at a time, each send bounded by notifyTimeout. Failed
// sends are logged and counted and never fail the command. A
// ShipmentStatusChanged event is then published on a best-effort basis.
type AdvanceShipmentStatusCommandHandler struct {
	uowFactory    CargoUoWFactory
	coordinator   services.ShipmentCoordinator
	notifier      ports.Notifier
	publisher     ports.EventPublisher
	notifyTimeout time.Duration
	logger        *slog.Logger
}

// NewAdvanceShipmentStatusCommandHandler wires the handler. publisher may be
// nil when no event bus is configured; a non-positive notifyTimeout falls
// back to DefaultNotifyTimeout.
func NewAdvanceShipmentStatusCommandHandler(
	uowFactory CargoUoWFactory,
	notifier ports.Notifier,
	publisher ports.EventPublisher,
	notifyTimeout time.Duration,
	logger *slog.Logger,
) AdvanceShipmentStatusCommandHandler {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return AdvanceShipmentStatusCommandHandler{
		uowFactory:    uowFactory,
		coordinator:   services.NewShipmentCoordinator(),
		notifier:      notifier,
		publisher:     publisher,
		notifyTimeout: notifyTimeout,
		logger:        logger.With("component", "advance_shipment_status"),
	}
}

// Handle applies the status inside one transaction and only then notifies
// clients and publishes the event. Returns the updated shipment.
func (h *AdvanceShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceShipmentStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, members, applied, notifications, err := h.advance(ctx, cmd)
	if err != nil {
		return nil, err
	}

	// The change is durable from here on; nothing below may fail the command.
	afterCommit := context.WithoutCancel(ctx)
	h.notify(afterCommit, s, notifications)
	h.publish(afterCommit, s, members, applied)

	return s, nil
}

func (h *AdvanceShipmentStatusCommandHandler) advance(
	ctx context.Context,
	cmd AdvanceShipmentStatusCommand,
) (*shipment.Shipment, []*parcel.Parcel, parcel.Status, []parcelNotification, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, parcel.Unknown, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, nil, parcel.Unknown, nil, err
	}

	parcelRepo := uow.ParcelRepository()
	members, err := parcelRepo.GetByShipment(ctx, s.ID())
	if err != nil {
		return nil, nil, parcel.Unknown, nil, err
	}

	applied, err := h.coordinator.AdvanceStatus(s, members, cmd.Status(), time.Now())
	if err != nil {
		return nil, nil, parcel.Unknown, nil, err
	}

	for _, p := range members {
		if err = parcelRepo.Update(ctx, p); err != nil {
			return nil, nil, parcel.Unknown, nil, err
		}
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return nil, nil, parcel.Unknown, nil, err
	}

	notifications := h.collectNotifications(ctx, uow.ClientRepository(), members, applied)

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, parcel.Unknown, nil, err
	}

	return s, members, applied, notifications, nil
}

// collectNotifications resolves the recipients. An owner that cannot be
// loaded is logged and skipped so the status change still commits.
func (h *AdvanceShipmentStatusCommandHandler) collectNotifications(
	ctx context.Context,
	clientRepo ports.ClientRepository,
	members []*parcel.Parcel,
	status parcel.Status,
) []parcelNotification {
	owners := make(map[kernel.UUID]*client.Client)
	notifications := make([]parcelNotification, 0, len(members))

	for _, p := range members {
		owner, ok := owners[p.ClientID()]
		if !ok {
			c, err := clientRepo.Get(ctx, p.ClientID())
			if err != nil {
				h.logger.WarnContext(ctx, "Skipping notification, parcel owner not loaded",
					"tracking_code", p.TrackingCode(),
					"client_id", p.ClientID().String(),
					"error", err,
				)
			}
			owners[p.ClientID()] = c
			owner = c
		}

		if owner == nil || !owner.HasChatHandle() {
			continue
		}
		notifications = append(notifications, parcelNotification{
			recipient:    owner.ChatHandle(),
			trackingCode: p.TrackingCode(),
			text:         FormatParcelStatusMessage(p.TrackingCode(), status),
		})
	}

	return notifications
}

func (h *AdvanceShipmentStatusCommandHandler) notify(
	ctx context.Context,
	s *shipment.Shipment,
	notifications []parcelNotification,
) {
	if h.notifier == nil || len(notifications) == 0 {
		return
	}

	failed := 0
	for _, n := range notifications {
		sendCtx, cancel := context.WithTimeout(ctx, h.notifyTimeout)
		err := h.notifier.Send(sendCtx, n.recipient, n.text)
		cancel()

		if err != nil {
			failed++
			h.logger.WarnContext(ctx, "Parcel status notification failed",
				"shipment_id", s.ID().String(),
				"tracking_code", n.trackingCode,
				"recipient", n.recipient,
				"error", err,
			)
		}
	}

	h.logger.InfoContext(ctx, "Parcel status notifications sent",
		"shipment_id", s.ID().String(),
		"attempted", len(notifications),
		"failed", failed,
	)
}

func (h *AdvanceShipmentStatusCommandHandler) publish(
	ctx context.Context,
	s *shipment.Shipment,
	members []*parcel.Parcel,
	applied parcel.Status,
) {
	if h.publisher == nil {
		return
	}

	parcelIDs := make([]kernel.UUID, 0, len(members))
	for _, p := range members {
		parcelIDs = append(parcelIDs, p.ID())
	}

	event := ports.ShipmentStatusChanged{
		ShipmentID:   s.ID(),
		ShipmentName: s.Name(),
		Status:       s.Status().String(),
		ParcelStatus: applied.String(),
		ParcelIDs:    parcelIDs,
		OccurredAt:   time.Now().UTC(),
	}

	if err := h.publisher.PublishShipmentStatusChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish shipment status event",
			"shipment_id", s.ID().String(),
			"error", err,
		)
	}
}
