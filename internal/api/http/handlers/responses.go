package handlers

import (
	"github.com/spec-kit/customer-service/internal/api/dto"
	"github.com/spec-kit/customer-service/internal/domain"
)

func orderResponse(o *domain.Order) dto.OrderResponse {
	items := make([]dto.LineItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.LineItemResponse{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		CustomerName:       o.CustomerName,
		CustomerEmail:      o.CustomerEmail,
		Items:              items,
		Total:              o.Total,
		Status:             o.Status,
		OrderDate:          o.OrderDate,
		TrackingNumber:     o.TrackingNumber,
		EstimatedDelivery:  o.EstimatedDelivery,
		ShippingAddress:    o.ShippingAddress,
		CancellationReason: o.CancellationReason,
		CancellationDate:   o.CancellationDate,
		RefundAmount:       o.RefundAmount,
		RefundReason:       o.RefundReason,
		RefundDate:         o.RefundDate,
		AddressUpdatedDate: o.AddressUpdatedDate,
	}
}

func orderSummaries(orders []domain.Order) []dto.OrderSummary {
	out := make([]dto.OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderSummary{
			ID:        o.ID,
			OrderDate: o.OrderDate,
			Status:    o.Status,
			Total:     o.Total,
		})
	}
	return out
}

func ticketResponse(t *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:            t.ID,
		CustomerID:    t.CustomerID,
		CustomerName:  t.CustomerName,
		CustomerEmail: t.CustomerEmail,
		Subject:       t.Subject,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      t.Priority,
		CreatedDate:   t.CreatedDate,
		LastUpdated:   t.LastUpdated,
		AgentAssigned: t.AgentAssigned,
		OrderID:       t.OrderID,
	}
}

func customerResponse(c domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		RegistrationDate: c.RegistrationDate,
		LoyaltyTier:      c.LoyaltyTier,
		TotalOrders:      c.TotalOrders,
		TotalSpent:       c.TotalSpent,
	}
}
