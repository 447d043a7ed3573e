package admin

import (
	"context"
	"fmt"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/seller"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/user"
	"github.com/sirupsen/logrus"
)

// Service defines the admin dashboard business logic.
type Service interface {
	CarbonReport(ctx context.Context) (*CarbonReport, error)
	ListCustomers(ctx context.Context) ([]*CustomerOverview, error)
	ListSellers(ctx context.Context) ([]*user.User, error)

	// GetUser returns any account by id.
	GetUser(ctx context.Context, id string) (*user.User, error)

	// SellerDetails returns a seller account together with its storefront profile.
	SellerDetails(ctx context.Context, id string) (*SellerDetails, error)

	// ApproveSeller marks a seller account as verified.
	ApproveSeller(ctx context.Context, id string) error

	// DeleteAccount removes a customer or seller. Admin accounts cannot be deleted.
	DeleteAccount(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	users    user.Repository
	profiles seller.Service
	log      *logrus.Logger
}

// NewService creates a new admin service.
func NewService(repo Repository, users user.Repository, profiles seller.Service, log *logrus.Logger) Service {
	return &service{repo: repo, users: users, profiles: profiles, log: log}
}

func (s *service) CarbonReport(ctx context.Context) (*CarbonReport, error) {
	return s.repo.CarbonReport(ctx)
}

func (s *service) ListCustomers(ctx context.Context) ([]*CustomerOverview, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *service) ListSellers(ctx context.Context) ([]*user.User, error) {
	return s.users.ListByRole(ctx, user.RoleSeller)
}

func (s *service) GetUser(ctx context.Context, id string) (*user.User, error) {
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return u, nil
}

func (s *service) SellerDetails(ctx context.Context, id string) (*SellerDetails, error) {
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("seller not found: %w", err)
	}
	if u.Role != user.RoleSeller {
		return nil, fmt.Errorf("user %s is not a seller", id)
	}
	profile, err := s.profiles.Profile(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	return &SellerDetails{User: u, Profile: profile}, nil
}

func (s *service) ApproveSeller(ctx context.Context, id string) error {
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("seller not found: %w", err)
	}
	if u.Role != user.RoleSeller {
		return fmt.Errorf("user %s is not a seller", id)
	}
	if err := s.users.SetVerified(ctx, id, true); err != nil {
		return err
	}
	s.log.WithField("seller", u.Email).Info("seller approved")
	return nil
}

func (s *service) DeleteAccount(ctx context.Context, id string) error {
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	if u.Role == user.RoleAdmin {
		return fmt.Errorf("admin accounts cannot be deleted")
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"user": u.Email, "role": u.Role}).Info("account deleted")
	return nil
}
