package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"go.uber.org/zap"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/config"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/logger"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/monitoring"
)

type BillingService struct {
	SubscriptionRepo *repository.SubscriptionRepository
	StudentRepo      *repository.StudentRepository
	GuardianRepo     *repository.GuardianRepository
	Mailer           Mailer
	Redis            *redis.Client
	Cfg              *config.Config
	snapClient       snap.Client
}

func NewBillingService(
	subscriptionRepo *repository.SubscriptionRepository,
	studentRepo *repository.StudentRepository,
	guardianRepo *repository.GuardianRepository,
	mailer Mailer,
	rdb *redis.Client,
	cfg *config.Config,
) *BillingService {
	s := &BillingService{
		SubscriptionRepo: subscriptionRepo,
		StudentRepo:      studentRepo,
		GuardianRepo:     guardianRepo,
		Mailer:           mailer,
		Redis:            rdb,
		Cfg:              cfg,
	}

	env := midtrans.Sandbox
	if cfg.Billing.Production {
		env = midtrans.Production
	}
	s.snapClient.New(cfg.Billing.ServerKey, env)

	return s
}

// CheckoutResult is what the frontend needs to open the gateway's
// payment page.
type CheckoutResult struct {
	OrderID     string `json:"orderId"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
	Amount      int64  `json:"amount"`
}

// Checkout prices the tenant's subscription at price-per-student per
// month and creates a gateway Snap transaction for it. The subscription
// stays pending until the webhook confirms payment.
func (s *BillingService) Checkout(claims *util.Claims) (*CheckoutResult, error) {
	if claims.Role != model.PrimaryGuardian {
		return nil, util.ErrNotPrimaryGuardian
	}

	sub, err := s.SubscriptionRepo.FindByTenant(claims.TenantID)
	if err != nil {
		return nil, util.ErrSubscriptionNotFound
	}

	studentCount, err := s.StudentRepo.CountByTenant(claims.TenantID)
	if err != nil {
		return nil, err
	}
	if studentCount == 0 {
		studentCount = 1 // minimum one seat
	}

	amount := s.Cfg.Billing.PricePerStudent * studentCount
	orderID := "sub-" + uuid.New().String()

	guardian, err := s.GuardianRepo.FindByID(claims.GuardianID)
	if err != nil {
		return nil, err
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: guardian.Name,
			Email: guardian.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderID,
				Price: s.Cfg.Billing.PricePerStudent,
				Qty:   int32(studentCount),
				Name:  "Transcript Tracker monthly seat",
			},
		},
	}

	resp, snapErr := s.snapClient.CreateTransaction(req)
	if snapErr != nil {
		return nil, snapErr
	}

	sub.Status = model.SubscriptionPending
	sub.StudentCount = int(studentCount)
	sub.Amount = amount
	sub.OrderID = orderID
	if err := s.SubscriptionRepo.Update(sub); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		OrderID:     orderID,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
		Amount:      amount,
	}, nil
}

func (s *BillingService) Current(tenantID string) (*model.Subscription, error) {
	return s.SubscriptionRepo.FindByTenant(tenantID)
}

func (s *BillingService) Cancel(claims *util.Claims) (*model.Subscription, error) {
	if claims.Role != model.PrimaryGuardian {
		return nil, util.ErrNotPrimaryGuardian
	}
	sub, err := s.SubscriptionRepo.FindByTenant(claims.TenantID)
	if err != nil {
		return nil, err
	}
	sub.Status = model.SubscriptionCanceled
	if err := s.SubscriptionRepo.Update(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// GatewayNotification is the subset of the gateway's webhook payload the
// service acts on.
type GatewayNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount"`
	SettlementTime    string `json:"settlement_time"`
}

// SubscriptionStatusFor maps a gateway transaction status onto the
// subscription lifecycle. The second return is false for statuses that
// should be audited but not applied.
func SubscriptionStatusFor(transactionStatus, fraudStatus string) (model.SubscriptionStatus, bool) {
	switch strings.ToLower(transactionStatus) {
	case "capture":
		// card payments: capture+accept is paid, challenge stays pending
		if strings.ToLower(fraudStatus) == "challenge" {
			return model.SubscriptionPending, true
		}
		return model.SubscriptionActive, true
	case "settlement":
		return model.SubscriptionActive, true
	case "pending":
		return model.SubscriptionPending, true
	case "deny":
		return model.SubscriptionPastDue, true
	case "cancel", "refund", "partial_refund":
		return model.SubscriptionCanceled, true
	case "expire":
		return model.SubscriptionExpired, true
	default:
		return "", false
	}
}

// HandleNotification applies a gateway webhook. Every payload is audited
// into payment_events; duplicate (order, status) deliveries are dropped
// via a redis SETNX key so retries from the gateway stay idempotent.
func (s *BillingService) HandleNotification(ctx context.Context, raw []byte) error {
	var notif GatewayNotification
	if err := json.Unmarshal(raw, &notif); err != nil {
		return err
	}

	monitoring.WebhookEvents.WithLabelValues(notif.TransactionStatus).Inc()

	event := &model.PaymentEvent{
		OrderID:           notif.OrderID,
		TransactionStatus: notif.TransactionStatus,
		FraudStatus:       notif.FraudStatus,
		Payload:           raw,
	}
	if err := s.SubscriptionRepo.SaveEvent(event); err != nil {
		return err
	}

	dedupKey := fmt.Sprintf("billing:notif:%s:%s", notif.OrderID, notif.TransactionStatus)
	fresh, err := s.Redis.SetNX(ctx, dedupKey, 1, 24*time.Hour).Result()
	if err != nil {
		// redis being down should not drop a payment notification
		logger.Log.Warn("webhook dedup unavailable", zap.Error(err))
	} else if !fresh {
		logger.Log.Info("duplicate gateway notification dropped",
			zap.String("order_id", notif.OrderID),
			zap.String("status", notif.TransactionStatus))
		return nil
	}

	status, apply := SubscriptionStatusFor(notif.TransactionStatus, notif.FraudStatus)
	if !apply {
		logger.Log.Warn("unhandled gateway transaction status",
			zap.String("order_id", notif.OrderID),
			zap.String("status", notif.TransactionStatus))
		return nil
	}

	sub, err := s.SubscriptionRepo.FindByOrderID(notif.OrderID)
	if err != nil {
		logger.Log.Warn("gateway notification for unknown order",
			zap.String("order_id", notif.OrderID))
		return nil
	}

	previous := sub.Status
	sub.Status = status
	if status == model.SubscriptionActive && previous != model.SubscriptionActive {
		sub.PeriodEnd = time.Now().AddDate(0, 1, 0)
	}
	if err := s.SubscriptionRepo.Update(sub); err != nil {
		return err
	}

	if err := s.SubscriptionRepo.MarkEventProcessed(event.ID); err != nil {
		return err
	}

	if status == model.SubscriptionActive && previous != model.SubscriptionActive {
		s.sendReceipt(sub)
	}

	logger.Log.Info("subscription updated from gateway notification",
		zap.String("tenant_id", sub.TenantID),
		zap.String("order_id", notif.OrderID),
		zap.String("from", string(previous)),
		zap.String("to", string(status)))
	return nil
}

func (s *BillingService) sendReceipt(sub *model.Subscription) {
	guardians, err := s.GuardianRepo.FindByTenant(sub.TenantID)
	if err != nil {
		logger.Log.Error("receipt lookup failed", zap.Error(err))
		return
	}
	for _, g := range guardians {
		if g.Role == model.PrimaryGuardian {
			s.Mailer.SendPaymentReceipt(g.Email, sub.Amount, sub.OrderID)
			return
		}
	}
}

// ExpireLapsed marks subscriptions whose paid period plus grace has
// passed as expired. Run from a background ticker.
func (s *BillingService) ExpireLapsed() error {
	cutoff := time.Now().AddDate(0, 0, -s.Cfg.Billing.GracePeriodDays)
	lapsed, err := s.SubscriptionRepo.FindLapsed(cutoff)
	if err != nil {
		return err
	}

	for i := range lapsed {
		lapsed[i].Status = model.SubscriptionExpired
		if err := s.SubscriptionRepo.Update(&lapsed[i]); err != nil {
			return err
		}
		logger.Log.Info("subscription expired",
			zap.String("tenant_id", lapsed[i].TenantID))
	}
	return nil
}
