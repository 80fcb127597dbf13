package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.DB.Create(sub).Error
}

func (r *SubscriptionRepository) FindByTenant(tenantID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("tenant_id = ?", tenantID).First(&sub).Error
	return &sub, err
}

func (r *SubscriptionRepository) FindByOrderID(orderID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("order_id = ?", orderID).First(&sub).Error
	return &sub, err
}

func (r *SubscriptionRepository) Update(sub *model.Subscription) error {
	return r.DB.Save(sub).Error
}

// FindLapsed returns active or past-due subscriptions whose paid period
// ended before the cutoff; the expiry sweep marks them expired.
func (r *SubscriptionRepository) FindLapsed(cutoff time.Time) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.DB.Where("status IN ? AND period_end < ?",
		[]model.SubscriptionStatus{model.SubscriptionActive, model.SubscriptionPastDue},
		cutoff).
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) SaveEvent(event *model.PaymentEvent) error {
	return r.DB.Create(event).Error
}

func (r *SubscriptionRepository) MarkEventProcessed(id uint) error {
	return r.DB.Model(&model.PaymentEvent{}).
		Where("id = ?", id).
		Update("processed", true).
		Error
}
