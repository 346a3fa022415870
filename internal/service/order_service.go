package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/customer-service/internal/domain"
	"github.com/spec-kit/customer-service/internal/events"
	"github.com/spec-kit/customer-service/internal/store"
	"github.com/spec-kit/customer-service/pkg/util"
)

// DefaultReason is used when a caller omits the cancellation or refund reason.
const DefaultReason = "Customer request"

// Refund classifications, derived from the refunded amount on the way out.
// Not stored on the order.
const (
	RefundFull    = "Full"
	RefundPartial = "Partial"
)

// OrderService enforces the order status state machine: which transitions are
// legal from the current status, and which fields each transition stamps.
// Every guarded operation either commits its full mutation or leaves the
// order untouched.
type OrderService struct {
	store      *store.Store
	dispatcher events.Dispatcher
	now        func() time.Time
}

// OrderDependencies bundles collaborators for the order service.
type OrderDependencies struct {
	Store      *store.Store
	Dispatcher events.Dispatcher
	Now        func() time.Time
}

// CancelResult is the outcome of a cancellation request. AlreadyCancelled
// marks the idempotent no-op case: the order was cancelled before the call
// and nothing was mutated.
type CancelResult struct {
	Order            domain.Order
	AlreadyCancelled bool
}

// RefundResult is the outcome of a refund. Classification is Full when the
// amount equals the order total, Partial otherwise.
type RefundResult struct {
	Order          domain.Order
	Amount         float64
	Classification string
}

// AddressUpdateResult carries the overwritten address back to the caller;
// the entity itself does not retain it.
type AddressUpdateResult struct {
	Order           domain.Order
	PreviousAddress string
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &OrderService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		now:        now,
	}
}

// GetOrderStatus returns the order as stored. Pure read, no guard.
func (s *OrderService) GetOrderStatus(ctx context.Context, orderID string) (*domain.Order, error) {
	order, ok := s.store.Order(orderID)
	if !ok {
		return nil, util.NewNotFound("order", map[string]any{"order_id": orderID})
	}
	return &order, nil
}

// CancelOrder cancels an order when its status allows it. Shipped and
// delivered orders are rejected; an already-cancelled order is a non-mutating
// success.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, reason string) (*CancelResult, error) {
	if reason == "" {
		reason = DefaultReason
	}

	alreadyCancelled := false
	order, err := s.store.UpdateOrder(orderID, func(o *domain.Order) error {
		switch o.Status {
		case domain.OrderStatusShipped, domain.OrderStatusDelivered:
			return util.NewIllegalTransition("order can no longer be cancelled", map[string]any{
				"order_id": orderID,
				"status":   o.Status,
			})
		case domain.OrderStatusCancelled:
			alreadyCancelled = true
			return nil
		}
		date := domain.FormatDate(s.now())
		o.Status = domain.OrderStatusCancelled
		o.CancellationReason = &reason
		o.CancellationDate = &date
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err, "order", orderID)
	}
	if alreadyCancelled {
		return &CancelResult{Order: order, AlreadyCancelled: true}, nil
	}

	s.publishEvent(ctx, events.Event{
		Type:       events.EventOrderCancelled,
		EntityID:   order.ID,
		CustomerID: order.CustomerID,
		Payload: events.OrderCancelledPayload{
			Reason:        reason,
			Total:         order.Total,
			CustomerEmail: order.CustomerEmail,
		},
	})
	return &CancelResult{Order: order}, nil
}

// ProcessRefund refunds a delivered or cancelled order. The amount defaults
// to the stored total and may not exceed it.
func (s *OrderService) ProcessRefund(ctx context.Context, orderID string, amount *float64, reason string) (*RefundResult, error) {
	if reason == "" {
		reason = DefaultReason
	}

	var refunded float64
	order, err := s.store.UpdateOrder(orderID, func(o *domain.Order) error {
		if o.Status != domain.OrderStatusDelivered && o.Status != domain.OrderStatusCancelled {
			return util.NewIllegalTransition("order must be delivered or cancelled to refund", map[string]any{
				"order_id": orderID,
				"status":   o.Status,
			})
		}
		refunded = o.Total
		if amount != nil {
			refunded = *amount
		}
		if refunded > o.Total {
			return util.NewValidationError("refund amount exceeds order total", map[string]any{
				"requested": refunded,
				"total":     o.Total,
			})
		}
		date := domain.FormatDate(s.now())
		o.Status = domain.OrderStatusRefunded
		o.RefundAmount = &refunded
		o.RefundReason = &reason
		o.RefundDate = &date
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err, "order", orderID)
	}

	classification := RefundPartial
	if refunded == order.Total {
		classification = RefundFull
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventOrderRefunded,
		EntityID:   order.ID,
		CustomerID: order.CustomerID,
		Payload: events.OrderRefundedPayload{
			Amount:         refunded,
			Classification: classification,
			Reason:         reason,
			CustomerEmail:  order.CustomerEmail,
		},
	})
	return &RefundResult{Order: order, Amount: refunded, Classification: classification}, nil
}

// UpdateShippingAddress overwrites the shipping address of an order that has
// not shipped yet and returns the previous address.
func (s *OrderService) UpdateShippingAddress(ctx context.Context, orderID, newAddress string) (*AddressUpdateResult, error) {
	var previous string
	order, err := s.store.UpdateOrder(orderID, func(o *domain.Order) error {
		if o.Status == domain.OrderStatusShipped || o.Status == domain.OrderStatusDelivered {
			return util.NewIllegalTransition("shipping address can no longer be changed", map[string]any{
				"order_id": orderID,
				"status":   o.Status,
			})
		}
		date := domain.FormatDate(s.now())
		previous = o.ShippingAddress
		o.ShippingAddress = newAddress
		o.AddressUpdatedDate = &date
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err, "order", orderID)
	}

	s.publishEvent(ctx, events.Event{
		Type:       events.EventShippingAddressUpdated,
		EntityID:   order.ID,
		CustomerID: order.CustomerID,
		Payload: events.ShippingAddressUpdatedPayload{
			PreviousAddress: previous,
			NewAddress:      newAddress,
			CustomerEmail:   order.CustomerEmail,
		},
	})
	return &AddressUpdateResult{Order: order, PreviousAddress: previous}, nil
}

func (s *OrderService) mapStoreErr(err error, resource, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return util.NewNotFound(resource, map[string]any{"order_id": id})
	}
	return err
}

func (s *OrderService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
