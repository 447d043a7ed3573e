package offer

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/ecobazaar/ecobazaar-backend/internal/modules/catalog"
	"github.com/google/uuid"
)

const offerDescription = "Limited-time eco deal"

// DefaultPolicies is the stock discount table: three flat amounts and two
// percentage cuts, drawn uniformly per offer.
var DefaultPolicies = []Policy{
	{Type: DiscountAmount, Value: 100},
	{Type: DiscountAmount, Value: 200},
	{Type: DiscountAmount, Value: 500},
	{Type: DiscountPercent, Value: 10},
	{Type: DiscountPercent, Value: 20},
}

// GeneratorConfig tunes offer generation. Zero values fall back to the
// defaults: 3 offers, 24h duration, fallback price 1000, DefaultPolicies,
// time-seeded randomness.
type GeneratorConfig struct {
	Count         int
	Duration      time.Duration
	FallbackPrice float64
	Policies      []Policy
	Seed          int64
}

// Generator produces a bounded random selection of discounted products.
// One instance is shared across requests; mu serializes access to rng,
// which is not safe for concurrent use.
type Generator struct {
	count         int
	duration      time.Duration
	fallbackPrice float64
	policies      []Policy

	mu  sync.Mutex
	rng *rand.Rand

	now func() time.Time
}

// NewGenerator creates a generator from cfg, filling in defaults.
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.Count <= 0 {
		cfg.Count = 3
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 24 * time.Hour
	}
	if cfg.FallbackPrice <= 0 {
		cfg.FallbackPrice = 1000
	}
	if len(cfg.Policies) == 0 {
		cfg.Policies = DefaultPolicies
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		count:         cfg.Count,
		duration:      cfg.Duration,
		fallbackPrice: cfg.FallbackPrice,
		policies:      cfg.Policies,
		rng:           rand.New(rand.NewSource(seed)),
		now:           time.Now,
	}
}

// Generate picks up to Count distinct products from the catalog and prices
// each under one randomly drawn discount policy. The catalog is not mutated.
func (g *Generator) Generate(products []*catalog.Product) []Offer {
	if len(products) == 0 {
		return []Offer{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Fisher-Yates over an index slice keeps the input untouched.
	indexes := make([]int, len(products))
	for i := range indexes {
		indexes[i] = i
	}
	g.rng.Shuffle(len(indexes), func(i, j int) {
		indexes[i], indexes[j] = indexes[j], indexes[i]
	})

	n := g.count
	if n > len(products) {
		n = len(products)
	}

	createdAt := g.now()
	offers := make([]Offer, 0, n)
	for _, idx := range indexes[:n] {
		p := products[idx]
		policy := g.policies[g.rng.Intn(len(g.policies))]

		originalPrice := p.Price
		if originalPrice <= 0 {
			originalPrice = g.fallbackPrice
		}

		var discounted float64
		switch policy.Type {
		case DiscountPercent:
			discounted = originalPrice * (1 - policy.Value/100)
		default:
			discounted = originalPrice - policy.Value
			if discounted < 0 {
				discounted = 0
			}
		}

		offers = append(offers, Offer{
			ID:              uuid.New(),
			ProductID:       p.ID.String(),
			ProductName:     p.Name,
			Description:     offerDescription,
			OriginalPrice:   round2(originalPrice),
			DiscountType:    policy.Type,
			DiscountValue:   policy.Value,
			DiscountedPrice: round2(discounted),
			DurationMs:      g.duration.Milliseconds(),
			CreatedAt:       createdAt,
			ExpiresAt:       createdAt.Add(g.duration),
		})
	}
	return offers
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
