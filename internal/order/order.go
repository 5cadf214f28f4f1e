// Package order produces sorted views of gift collections.
package order

import (
	"sort"

	"github.com/telewish/telewish/internal/api"
)

// By selects the sort criterion for a gift collection.
type By string

const (
	ByDate     By = "date"
	ByPrice    By = "price"
	ByWishRate By = "wish_rate"
)

// Parse maps a stored string onto a criterion, defaulting to ByDate.
func Parse(value string) By {
	switch By(value) {
	case ByPrice:
		return ByPrice
	case ByWishRate:
		return ByWishRate
	default:
		return ByDate
	}
}

// Cycle returns the next criterion in a fixed rotation.
func (b By) Cycle() By {
	switch b {
	case ByDate:
		return ByPrice
	case ByPrice:
		return ByWishRate
	default:
		return ByDate
	}
}

// Label returns the criterion's display name.
func (b By) Label() string {
	switch b {
	case ByPrice:
		return "price"
	case ByWishRate:
		return "wish rate"
	default:
		return "date"
	}
}

// Gifts returns a sorted copy of the collection. The input is never
// mutated. Date sorts most recent first. Price and wish rate sort
// descending with entries missing the field strictly after all entries
// that have it; ties and missing-field runs keep their original order.
func Gifts(gifts []api.Gift, by By) []api.Gift {
	sorted := make([]api.Gift, len(gifts))
	copy(sorted, gifts)

	switch by {
	case ByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessDescNilLast(sorted[i].Price, sorted[j].Price)
		})
	case ByWishRate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessDescNilLast(sorted[i].WishRate, sorted[j].WishRate)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ParsedCreatedAt().After(sorted[j].ParsedCreatedAt())
		})
	}
	return sorted
}

func lessDescNilLast(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a > *b
}
