package sales

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesreport/pkg/contracts/domain"
)

func TestAnalyze_SingleSellerExample(t *testing.T) {
	data := &domain.Dataset{
		Sellers:  []domain.Seller{{ID: "S1", FirstName: "Ivan", LastName: "Petrov"}},
		Products: []domain.Product{{SKU: "P1", PurchasePrice: 50}},
		PurchaseRecords: []domain.PurchaseRecord{
			record("S1", 180, item("P1", 2, 100, 10)),
		},
	}

	reports, err := Analyze(context.Background(), data, defaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 1)

	assert.Equal(t, domain.SellerReport{
		SellerID:    "S1",
		Name:        "Ivan Petrov",
		Revenue:     180.00,
		Profit:      80.00,
		SalesCount:  1,
		TopProducts: []domain.ProductSales{{SKU: "P1", Quantity: 2}},
		Bonus:       12.00,
	}, reports[0])
}

func TestAnalyze_RankingAndBonuses(t *testing.T) {
	reports, err := Analyze(context.Background(), fiveSellerDataset(), defaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 5)

	tests := []struct {
		sellerID   string
		revenue    float64
		profit     float64
		salesCount int
		bonus      float64
	}{
		{"C", 180, 110, 2, 16.5},
		{"A", 60, 30, 1, 3},
		{"B", 50, 30, 1, 3},
		{"E", 60, 20, 1, 1},
		{"D", 10, 0, 1, 0},
	}

	for i, tt := range tests {
		got := reports[i]
		assert.Equal(t, tt.sellerID, got.SellerID, "rank %d", i)
		assert.Equal(t, tt.revenue, got.Revenue, "revenue of %s", tt.sellerID)
		assert.Equal(t, tt.profit, got.Profit, "profit of %s", tt.sellerID)
		assert.Equal(t, tt.salesCount, got.SalesCount, "sales count of %s", tt.sellerID)
		assert.Equal(t, tt.bonus, got.Bonus, "bonus of %s", tt.sellerID)
	}

	assert.Equal(t, []domain.ProductSales{
		{SKU: "P3", Quantity: 10},
		{SKU: "P1", Quantity: 2},
	}, reports[0].TopProducts)
}

func TestAnalyze_Properties(t *testing.T) {
	data := generatedDataset(7, 40, 300)

	reports, err := Analyze(context.Background(), data, defaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 7)

	totalSales := 0
	for i, r := range reports {
		totalSales += r.SalesCount

		if i > 0 {
			assert.GreaterOrEqual(t, reports[i-1].Profit, r.Profit, "profit must be non-increasing")
		}

		assert.LessOrEqual(t, len(r.TopProducts), MaxTopProducts)
		for j := 1; j < len(r.TopProducts); j++ {
			assert.GreaterOrEqual(t, r.TopProducts[j-1].Quantity, r.TopProducts[j].Quantity)
		}

		for _, v := range []float64{r.Revenue, r.Profit, r.Bonus} {
			assert.InDelta(t, math.Round(v*100), v*100, 1e-6, "value %v has more than 2 decimals", v)
		}
	}
	assert.Equal(t, len(data.PurchaseRecords), totalSales)
}

func TestAnalyze_RecordOrderDoesNotMatter(t *testing.T) {
	data := fiveSellerDataset()
	want, err := Analyze(context.Background(), data, defaultOptions())
	require.NoError(t, err)

	reversed := fiveSellerDataset()
	records := reversed.PurchaseRecords
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	got, err := Analyze(context.Background(), reversed, defaultOptions())
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].SellerID, got[i].SellerID)
		assert.Equal(t, want[i].Revenue, got[i].Revenue)
		assert.Equal(t, want[i].Profit, got[i].Profit)
		assert.Equal(t, want[i].SalesCount, got[i].SalesCount)
		assert.Equal(t, want[i].Bonus, got[i].Bonus)
		assert.ElementsMatch(t, want[i].TopProducts, got[i].TopProducts)
	}
}

func TestAnalyze_SingleSellerGetsFirstPlaceBonus(t *testing.T) {
	data := &domain.Dataset{
		Sellers:         []domain.Seller{{ID: "S1", FirstName: "Only", LastName: "One"}},
		Products:        []domain.Product{{SKU: "P1", PurchasePrice: 1}},
		PurchaseRecords: []domain.PurchaseRecord{record("S1", 11, item("P1", 1, 11, 0))},
	}

	reports, err := Analyze(context.Background(), data, defaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 10.0, reports[0].Profit)
	assert.Equal(t, 1.5, reports[0].Bonus)
}

func TestAnalyze_RevenueAndProfitAreIndependent(t *testing.T) {
	data := &domain.Dataset{
		Sellers:  []domain.Seller{{ID: "S1", FirstName: "A", LastName: "B"}},
		Products: []domain.Product{{SKU: "P1", PurchasePrice: 10}},
		// total_amount deliberately disagrees with the priced items
		PurchaseRecords: []domain.PurchaseRecord{record("S1", 999, item("P1", 1, 50, 0))},
	}

	reports, err := Analyze(context.Background(), data, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 999.0, reports[0].Revenue)
	assert.Equal(t, 40.0, reports[0].Profit)
}

func TestAnalyze_SellerWithoutSales(t *testing.T) {
	data := fiveSellerDataset()
	data.Sellers = append(data.Sellers, domain.Seller{ID: "F", FirstName: "Idle", LastName: "Seller"})

	reports, err := Analyze(context.Background(), data, defaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 6)

	// profit 0 ties with D, input order keeps D first, F is last
	last := reports[5]
	assert.Equal(t, "F", last.SellerID)
	assert.Equal(t, 0, last.SalesCount)
	assert.NotNil(t, last.TopProducts)
	assert.Empty(t, last.TopProducts)
	assert.Equal(t, 0.0, last.Bonus)
}

func TestAnalyze_DuplicateSellerLastWins(t *testing.T) {
	data := &domain.Dataset{
		Sellers: []domain.Seller{
			{ID: "S1", FirstName: "Old", LastName: "Entry"},
			{ID: "S1", FirstName: "New", LastName: "Entry"},
		},
		Products: []domain.Product{
			{SKU: "P1", PurchasePrice: 100},
			{SKU: "P1", PurchasePrice: 1},
		},
		PurchaseRecords: []domain.PurchaseRecord{record("S1", 10, item("P1", 1, 10, 0))},
	}

	reports, err := Analyze(context.Background(), data, defaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "New Entry", reports[0].Name)
	assert.Equal(t, 9.0, reports[0].Profit)
	assert.Equal(t, 1, reports[0].SalesCount)

	assert.Equal(t, "Old Entry", reports[1].Name)
	assert.Equal(t, 0, reports[1].SalesCount)
}

func TestAnalyze_UnknownSeller(t *testing.T) {
	data := fiveSellerDataset()
	data.PurchaseRecords = append(data.PurchaseRecords, record("ZZ", 1, item("P1", 1, 1, 0)))

	reports, err := Analyze(context.Background(), data, defaultOptions())
	require.Error(t, err)
	assert.Nil(t, reports)
	assert.True(t, errors.Is(err, ErrUnknownSeller))

	var unknown *UnknownSellerError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ZZ", unknown.SellerID)
	assert.Equal(t, 6, unknown.RecordIndex)
}

func TestAnalyze_UnknownProduct(t *testing.T) {
	data := fiveSellerDataset()
	data.PurchaseRecords[1].Items = append(data.PurchaseRecords[1].Items, item("NOPE", 1, 1, 0))

	reports, err := Analyze(context.Background(), data, defaultOptions())
	require.Error(t, err)
	assert.Nil(t, reports)
	assert.ErrorIs(t, err, ErrUnknownProduct)

	var unknown *UnknownProductError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "NOPE", unknown.SKU)
	assert.Equal(t, "B", unknown.SellerID)
	assert.Equal(t, 1, unknown.RecordIndex)
	assert.Equal(t, 1, unknown.ItemIndex)
}

func TestAnalyze_CustomPolicies(t *testing.T) {
	flat := RevenueFunc(func(item domain.LineItem) float64 {
		return item.SalePrice * float64(item.Quantity)
	})

	var calls []int
	byRank := BonusFunc(func(index, total int, seller SellerView) float64 {
		calls = append(calls, index)
		assert.Equal(t, 5, total)
		return float64(total - index)
	})

	reports, err := Analyze(context.Background(), fiveSellerDataset(), Options{Revenue: flat, Bonus: byRank})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, calls)
	for i, r := range reports {
		assert.Equal(t, float64(5-i), r.Bonus)
	}
}

func TestAnalyze_WorkersMatchSequential(t *testing.T) {
	data := generatedDataset(9, 60, 1000)

	want, err := Analyze(context.Background(), data, defaultOptions())
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 16} {
		opts := defaultOptions()
		opts.Workers = workers

		got, err := Analyze(context.Background(), data, opts)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestAnalyze_WorkersReportEarliestError(t *testing.T) {
	data := fiveSellerDataset()
	data.PurchaseRecords[4].Items[0].SKU = "MISSING"
	data.PurchaseRecords = append(data.PurchaseRecords, record("GHOST", 1, item("P1", 1, 1, 0)))

	_, seqErr := Analyze(context.Background(), data, defaultOptions())
	require.Error(t, seqErr)

	opts := defaultOptions()
	opts.Workers = 3
	reports, parErr := Analyze(context.Background(), data, opts)
	require.Error(t, parErr)
	assert.Nil(t, reports)

	assert.Equal(t, seqErr.Error(), parErr.Error())
	assert.ErrorIs(t, parErr, ErrUnknownProduct)
}

func TestAnalyzer_Reusable(t *testing.T) {
	analyzer := NewAnalyzer(defaultOptions())

	first, err := analyzer.Analyze(context.Background(), fiveSellerDataset())
	require.NoError(t, err)
	second, err := analyzer.Analyze(context.Background(), fiveSellerDataset())
	require.NoError(t, err)

	// no state leaks between runs
	assert.Equal(t, first, second)
}
