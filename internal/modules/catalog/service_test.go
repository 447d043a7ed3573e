package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEcoGradeRank(t *testing.T) {
	assert.Less(t, ecoGradeRank("A+"), ecoGradeRank("A"))
	assert.Less(t, ecoGradeRank("A"), ecoGradeRank("B"))
	assert.Less(t, ecoGradeRank("B"), ecoGradeRank("C"))
	assert.Less(t, ecoGradeRank("C"), ecoGradeRank("D"))
	assert.Equal(t, ecoGradeRank("a+"), ecoGradeRank("A+"))
	assert.Greater(t, ecoGradeRank(""), ecoGradeRank("D"))
	assert.Greater(t, ecoGradeRank("Z"), ecoGradeRank("D"))
}

func TestSortProducts(t *testing.T) {
	byName := func(products []*Product) []string {
		names := make([]string, len(products))
		for i, p := range products {
			names[i] = p.Name
		}
		return names
	}

	fixture := func() []*Product {
		return []*Product{
			{Name: "hemp bag", Price: 24.99, Rating: 4.2, CarbonFootprint: 3.2, EcoRating: "C"},
			{Name: "toothbrush", Price: 12.99, Rating: 4.9, CarbonFootprint: 0.8, EcoRating: "A+"},
			{Name: "solar charger", Price: 49.99, Rating: 4.6, CarbonFootprint: 2.1, EcoRating: "B"},
			{Name: "notebook", Price: 8.99, Rating: 4.5, CarbonFootprint: 0.5, EcoRating: "A"},
		}
	}

	tests := []struct {
		sortBy string
		want   []string
	}{
		{SortPrice, []string{"notebook", "toothbrush", "hemp bag", "solar charger"}},
		{SortRating, []string{"toothbrush", "solar charger", "notebook", "hemp bag"}},
		{SortCarbon, []string{"notebook", "toothbrush", "solar charger", "hemp bag"}},
		{SortEcoRating, []string{"toothbrush", "notebook", "solar charger", "hemp bag"}},
		{"", []string{"toothbrush", "notebook", "solar charger", "hemp bag"}},
	}
	for _, tt := range tests {
		products := fixture()
		sortProducts(products, tt.sortBy)
		assert.Equal(t, tt.want, byName(products), "sort=%q", tt.sortBy)
	}
}
