package seller

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// Service defines seller stats and profile business logic.
type Service interface {
	StatsFor(ctx context.Context, sellerEmail string) (*Stats, error)

	// RecordSale credits a delivered order's share to the seller.
	RecordSale(ctx context.Context, sellerEmail string, amount float64, units int) error

	SettlePayouts(ctx context.Context, sellerEmail string) error

	// Profile returns the seller's profile, nil if not completed yet.
	Profile(ctx context.Context, sellerEmail string) (*Profile, error)

	// CompleteProfile creates the profile; it fails if one already exists.
	CompleteProfile(ctx context.Context, sellerEmail string, req ProfileRequest) (*Profile, error)

	// UpdateProfile creates or replaces the profile.
	UpdateProfile(ctx context.Context, sellerEmail string, req ProfileRequest) (*Profile, error)
}

type service struct {
	repo Repository
	log  *logrus.Logger
}

// NewService creates a new seller stats service.
func NewService(repo Repository, log *logrus.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) StatsFor(ctx context.Context, sellerEmail string) (*Stats, error) {
	return s.repo.GetBySeller(ctx, sellerEmail)
}

func (s *service) RecordSale(ctx context.Context, sellerEmail string, amount float64, units int) error {
	if err := s.repo.ApplySale(ctx, sellerEmail, amount, units); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"seller": sellerEmail, "amount": amount, "units": units}).
		Info("recorded seller sale")
	return nil
}

func (s *service) SettlePayouts(ctx context.Context, sellerEmail string) error {
	return s.repo.SettlePayouts(ctx, sellerEmail)
}

func (s *service) Profile(ctx context.Context, sellerEmail string) (*Profile, error) {
	return s.repo.GetProfile(ctx, sellerEmail)
}

func (s *service) CompleteProfile(ctx context.Context, sellerEmail string, req ProfileRequest) (*Profile, error) {
	existing, err := s.repo.GetProfile(ctx, sellerEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("profile already completed")
	}
	return s.saveProfile(ctx, sellerEmail, req)
}

func (s *service) UpdateProfile(ctx context.Context, sellerEmail string, req ProfileRequest) (*Profile, error) {
	return s.saveProfile(ctx, sellerEmail, req)
}

func (s *service) saveProfile(ctx context.Context, sellerEmail string, req ProfileRequest) (*Profile, error) {
	name := strings.TrimSpace(req.Name)
	storeName := strings.TrimSpace(req.StoreName)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if storeName == "" {
		return nil, errors.New("store name is required")
	}

	p := &Profile{
		SellerEmail:       sellerEmail,
		Name:              name,
		StoreName:         storeName,
		ProductCategories: req.ProductCategories,
		Description:       req.Description,
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		Website:           req.Website,
	}
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	s.log.WithField("seller", sellerEmail).Info("seller profile saved")
	return p, nil
}
