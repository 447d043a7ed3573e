package offer

import (
	"context"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/catalog"
	"github.com/sirupsen/logrus"
)

// Service defines offer business logic.
type Service interface {
	// CurrentOffers generates a fresh batch of limited-time offers over the
	// active catalog. Offers are not persisted; each fetch is a new draw.
	CurrentOffers(ctx context.Context) ([]Offer, error)
}

type service struct {
	generator *Generator
	products  catalog.Service
	log       *logrus.Logger
}

// NewService creates a new offer service.
func NewService(generator *Generator, products catalog.Service, log *logrus.Logger) Service {
	return &service{generator: generator, products: products, log: log}
}

func (s *service) CurrentOffers(ctx context.Context) ([]Offer, error) {
	products, err := s.products.Browse(ctx, catalog.BrowseQuery{})
	if err != nil {
		return nil, err
	}
	offers := s.generator.Generate(products)
	s.log.WithField("count", len(offers)).Debug("generated limited-time offers")
	return offers, nil
}
