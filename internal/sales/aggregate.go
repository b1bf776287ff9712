package sales

import (
	"golang.org/x/sync/errgroup"

	"salesreport/pkg/contracts/domain"
)

// aggregate applies every purchase record in input order and stops at the first
// referential error.
func (idx *index) aggregate(records []domain.PurchaseRecord, revenue RevenuePolicy) error {
	for i, record := range records {
		if err := idx.apply(i, record, revenue); err != nil {
			return err
		}
	}
	return nil
}

// apply adds one purchase record to its seller's accumulator.
func (idx *index) apply(recordIndex int, record domain.PurchaseRecord, revenue RevenuePolicy) error {
	seller, ok := idx.sellers[record.SellerID]
	if !ok {
		return &UnknownSellerError{SellerID: record.SellerID, RecordIndex: recordIndex}
	}

	seller.SalesCount++
	// Checkout level figure, independent of the per item revenue policy
	seller.Revenue += record.TotalAmount

	for j, item := range record.Items {
		product, ok := idx.products[item.SKU]
		if !ok {
			return &UnknownProductError{
				SKU:         item.SKU,
				SellerID:    record.SellerID,
				RecordIndex: recordIndex,
				ItemIndex:   j,
			}
		}

		cost := product.PurchasePrice * float64(item.Quantity)
		seller.Profit += revenue.Revenue(item) - cost
		seller.addSold(item.SKU, item.Quantity)
	}

	return nil
}

// aggregatePartitioned partitions records by seller and aggregates partitions
// concurrently. Each accumulator is written by exactly one goroutine and record order
// within a seller is kept, so sums equal the sequential ones. When several records are
// invalid, the one with the lowest index is reported, as in the sequential path.
func (idx *index) aggregatePartitioned(records []domain.PurchaseRecord, revenue RevenuePolicy, workers int) error {
	var (
		partitions [][]int
		bySeller   = make(map[string]int)
		firstErr   error
	)

	for i, record := range records {
		if _, ok := idx.sellers[record.SellerID]; !ok {
			if firstErr == nil {
				firstErr = &UnknownSellerError{SellerID: record.SellerID, RecordIndex: i}
			}
			continue
		}
		p, ok := bySeller[record.SellerID]
		if !ok {
			p = len(partitions)
			bySeller[record.SellerID] = p
			partitions = append(partitions, nil)
		}
		partitions[p] = append(partitions[p], i)
	}

	errs := make([]error, len(partitions))

	var g errgroup.Group
	g.SetLimit(workers)
	for p, part := range partitions {
		g.Go(func() error {
			for _, i := range part {
				if err := idx.apply(i, records[i], revenue); err != nil {
					errs[p] = err
					return err
				}
			}
			return nil
		})
	}
	// Every partition runs to completion or to its own first error; the earliest
	// record wins below.
	_ = g.Wait()

	for _, err := range errs {
		if err == nil {
			continue
		}
		if firstErr == nil || recordIndexOf(err) < recordIndexOf(firstErr) {
			firstErr = err
		}
	}
	return firstErr
}
