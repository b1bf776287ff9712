package sales

import (
	"fmt"

	"salesreport/pkg/contracts/domain"
)

// RevenuePolicy computes the realized revenue of one line item.
type RevenuePolicy interface {
	Revenue(item domain.LineItem) float64
}

// BonusPolicy computes a seller's bonus from its 0-based profit rank among total sellers.
type BonusPolicy interface {
	Bonus(index, total int, seller SellerView) float64
}

// RevenueFunc adapts a function to RevenuePolicy.
type RevenueFunc func(item domain.LineItem) float64

// Revenue calls f(item).
func (f RevenueFunc) Revenue(item domain.LineItem) float64 {
	return f(item)
}

// BonusFunc adapts a function to BonusPolicy.
type BonusFunc func(index, total int, seller SellerView) float64

// Bonus calls f(index, total, seller).
func (f BonusFunc) Bonus(index, total int, seller SellerView) float64 {
	return f(index, total, seller)
}

// SimpleRevenue prices a line item as sale_price * quantity reduced by the percentage discount.
var SimpleRevenue RevenuePolicy = RevenueFunc(simpleRevenue)

func simpleRevenue(item domain.LineItem) float64 {
	return item.SalePrice * float64(item.Quantity) * (1 - (item.Discount / 100))
}

// BonusSchedule is a rank based bonus policy expressed as percentages of profit.
//
// Rank bands are checked in the order first, second or third, last, otherwise and the
// first match wins: with a single seller, rank 0 is both first and last and is paid First.
type BonusSchedule struct {
	First   float64 `yaml:"first" json:"first"`
	Podium  float64 `yaml:"podium" json:"podium"`
	Default float64 `yaml:"default" json:"default"`
	Last    float64 `yaml:"last" json:"last"`
}

// DefaultBonusSchedule returns 15% for the leader, 10% for ranks 2 and 3, nothing for the
// lowest ranked seller and 5% for everyone else.
func DefaultBonusSchedule() BonusSchedule {
	return BonusSchedule{
		First:   15,
		Podium:  10,
		Default: 5,
		Last:    0,
	}
}

// BonusByProfit is the default rank based bonus policy.
var BonusByProfit BonusPolicy = DefaultBonusSchedule()

// Bonus implements BonusPolicy.
func (b BonusSchedule) Bonus(index, total int, seller SellerView) float64 {
	return seller.Profit * (b.percentFor(index, total) / 100)
}

func (b BonusSchedule) percentFor(index, total int) float64 {
	switch {
	case index == 0:
		return b.First
	case index == 1 || index == 2:
		return b.Podium
	case index == total-1:
		return b.Last
	default:
		return b.Default
	}
}

// Validate checks that every percentage lies within [0, 100].
func (b BonusSchedule) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"first", b.First},
		{"podium", b.Podium},
		{"default", b.Default},
		{"last", b.Last},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 100 {
			return fmt.Errorf("bonus rate %s must be between 0 and 100, got %.2f", r.name, r.value)
		}
	}
	return nil
}
