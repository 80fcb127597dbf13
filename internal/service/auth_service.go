package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/config"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type AuthService struct {
	GuardianRepo     *repository.GuardianRepository
	SubscriptionRepo *repository.SubscriptionRepository
	Mailer           Mailer
	Cfg              *config.Config
}

func NewAuthService(
	guardianRepo *repository.GuardianRepository,
	subscriptionRepo *repository.SubscriptionRepository,
	mailer Mailer,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		GuardianRepo:     guardianRepo,
		SubscriptionRepo: subscriptionRepo,
		Mailer:           mailer,
		Cfg:              cfg,
	}
}

// Register creates a new household: the account becomes the primary
// guardian of a fresh tenant and a trial subscription is opened.
func (s *AuthService) Register(guardian *model.GuardianAccount) error {
	_, err := s.GuardianRepo.FindByEmail(guardian.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(guardian.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	guardian.Password = string(hashedPassword)
	guardian.TenantID = model.GenerateTenantID()
	guardian.Role = model.PrimaryGuardian

	if err := s.GuardianRepo.Create(guardian); err != nil {
		return err
	}

	trial := &model.Subscription{
		TenantModel: model.TenantModel{TenantID: guardian.TenantID},
		Status:      model.SubscriptionTrialing,
		PeriodEnd:   time.Now().AddDate(0, 0, s.Cfg.Billing.TrialDays),
	}
	if err := s.SubscriptionRepo.Create(trial); err != nil {
		return err
	}

	s.Mailer.SendWelcome(guardian.Email, guardian.Name)
	return nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	guardian, err := s.GuardianRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(guardian.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := s.GuardianRepo.UpdateLastLogin(guardian.ID); err != nil {
		return "", err
	}

	return util.GenerateJWT(guardian, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// InviteGuardian adds another account to the inviter's tenant and emails
// the new guardian their temporary password. Primary guardian only.
func (s *AuthService) InviteGuardian(inviter *util.Claims, name, email, tempPassword string) (*model.GuardianAccount, error) {
	if inviter.Role != model.PrimaryGuardian {
		return nil, util.ErrNotPrimaryGuardian
	}

	_, err := s.GuardianRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	invited := &model.GuardianAccount{
		TenantID: inviter.TenantID,
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     model.Guardian,
	}
	if err := s.GuardianRepo.Create(invited); err != nil {
		return nil, err
	}

	s.Mailer.SendGuardianInvite(email, name, inviter.Email)
	return invited, nil
}

func (s *AuthService) GetProfile(guardianID uint) (*model.GuardianAccount, error) {
	return s.GuardianRepo.FindByID(guardianID)
}

func (s *AuthService) UpdateProfile(guardianID uint, name string) (*model.GuardianAccount, error) {
	guardian, err := s.GuardianRepo.FindByID(guardianID)
	if err != nil {
		return nil, err
	}
	guardian.Name = name
	if err := s.GuardianRepo.Update(guardian); err != nil {
		return nil, err
	}
	return guardian, nil
}
