package cart

// Item is one product snapshot plus the quantity the customer intends to buy.
// Price and carbon footprint are captured at add time so later catalog edits
// do not shift an open cart.
type Item struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	ShopName        string  `json:"shop_name,omitempty"`
	Category        string  `json:"category,omitempty"`
	Price           float64 `json:"price"`
	CarbonFootprint float64 `json:"carbon_footprint"`
	EcoRating       string  `json:"eco_rating,omitempty"`
	Quantity        int     `json:"quantity"`
}

// Ledger holds the lines of one customer's cart and derives its aggregates.
// Every operation is total: absent ids are no-ops and bad quantities degrade
// to removal, never an error. No line is ever observable with quantity < 1.
type Ledger struct {
	Lines []Item `json:"lines"`

	// MergeDuplicates makes re-adding a product increment its quantity
	// instead of appending a second line.
	MergeDuplicates bool `json:"merge_duplicates"`
}

// NewLedger returns an empty ledger that merges duplicate products.
func NewLedger() *Ledger {
	return &Ledger{MergeDuplicates: true}
}

// AddItem puts one unit of the product into the cart.
func (l *Ledger) AddItem(item Item) {
	if l.MergeDuplicates {
		for i := range l.Lines {
			if l.Lines[i].ProductID == item.ProductID {
				l.Lines[i].Quantity++
				return
			}
		}
	}
	item.Quantity = 1
	l.Lines = append(l.Lines, item)
}

// RemoveItem drops every line matching productID. Absent ids are a no-op.
func (l *Ledger) RemoveItem(productID string) {
	kept := l.Lines[:0]
	for _, line := range l.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	l.Lines = kept
}

// SetQuantity updates the matching line in place. A quantity of zero or less
// removes the line.
func (l *Ledger) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(productID)
		return
	}
	for i := range l.Lines {
		if l.Lines[i].ProductID == productID {
			l.Lines[i].Quantity = quantity
		}
	}
}

// Total returns the unrounded monetary sum of the cart. Display formatting is
// the caller's concern.
func (l *Ledger) Total() float64 {
	var total float64
	for _, line := range l.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// CarbonSaved returns the summed carbon impact (kg CO2e) across all lines.
func (l *Ledger) CarbonSaved() float64 {
	var total float64
	for _, line := range l.Lines {
		total += line.CarbonFootprint * float64(line.Quantity)
	}
	return total
}

// LineCount is the number of distinct lines, not the total quantity.
func (l *Ledger) LineCount() int {
	return len(l.Lines)
}

// Items returns a copy of the cart lines.
func (l *Ledger) Items() []Item {
	items := make([]Item, len(l.Lines))
	copy(items, l.Lines)
	return items
}
