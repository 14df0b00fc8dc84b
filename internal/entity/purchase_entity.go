package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestUrgency string
type RequestStatus string

const (
	UrgencyHigh   RequestUrgency = "alta"
	UrgencyMedium RequestUrgency = "media"
	UrgencyLow    RequestUrgency = "baixa"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// PurchaseRequest is a user-raised replenishment request awaiting approval.
type PurchaseRequest struct {
	Id              uuid.UUID
	RequesterId     uuid.UUID
	ItemCode        string
	ItemDescription string
	Quantity        float64
	Urgency         RequestUrgency
	Status          RequestStatus
	Notes           string
	CreatedAt       time.Time
	DecidedAt       *time.Time
}

type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PurchaseOrder is a historical order issued to a supplier.
type PurchaseOrder struct {
	Id          uuid.UUID
	OrderNumber string
	Supplier    string
	Status      OrderStatus
	Lines       []PurchaseOrderLine
	IssuedAt    time.Time
	DeliveredAt *time.Time
}

type PurchaseOrderLine struct {
	Id        uuid.UUID
	OrderId   uuid.UUID
	ItemCode  string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Total is the line value. Monetary math stays in decimal end to end.
func (l *PurchaseOrderLine) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Total sums all line values of the order.
func (o *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Lines {
		total = total.Add(o.Lines[i].Total())
	}
	return total
}
