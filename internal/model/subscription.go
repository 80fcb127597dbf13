package model

import (
	"time"

	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// Subscription is the per-tenant billing record. Pricing is per active
// student per month; the gateway owns the actual money movement, this row
// mirrors the latest state the webhook reported.
// swagger:model Subscription
type Subscription struct {
	TenantModel
	Status       SubscriptionStatus `gorm:"size:20;default:'trialing'" json:"status"`
	StudentCount int                `gorm:"default:0" json:"studentCount"`
	Amount       int64              `gorm:"default:0" json:"amount"` // gateway minor units
	OrderID      string             `gorm:"size:64;index" json:"orderId,omitempty"`
	PeriodEnd    time.Time          `json:"periodEnd"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// PaymentEvent is an audit row for every gateway notification received,
// processed or not. Raw payload kept for replay and support.
type PaymentEvent struct {
	BaseModel
	OrderID           string         `gorm:"size:64;index;not null" json:"orderId"`
	TransactionStatus string         `gorm:"size:30;not null" json:"transactionStatus"`
	FraudStatus       string         `gorm:"size:20" json:"fraudStatus,omitempty"`
	Payload           datatypes.JSON `json:"payload"`
	Processed         bool           `gorm:"default:false" json:"processed"`
}

func (PaymentEvent) TableName() string {
	return "payment_events"
}
