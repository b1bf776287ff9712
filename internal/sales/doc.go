// Package sales computes per-seller sales performance reports.
//
// A report is derived from three already materialized collections (sellers, the product
// catalog and purchase records) and two caller supplied policies: a RevenuePolicy that
// prices a single line item and a BonusPolicy that assigns a bonus from a seller's profit
// rank.
//
// # Pipeline
//
// Analyze runs five stages strictly in order:
//
//  1. Validate: rejects a missing or empty collection and absent policies
//  2. Index: seller id to accumulator, sku to product
//  3. Aggregate: walks purchase records and accumulates revenue, profit, sales count and
//     sold quantities per seller
//  4. Rank: orders sellers by profit descending, assigns bonuses by rank and selects the
//     top 10 products per seller
//  5. Format: projects accumulators into domain.SellerReport with 2 decimal rounding
//
// Seller revenue is the sum of the records' TotalAmount while profit is derived from the
// per item revenue policy. The two figures come from different sources and are not
// reconciled.
//
// # Usage
//
//	reports, err := sales.Analyze(ctx, dataset, sales.Options{
//	    Revenue: sales.SimpleRevenue,
//	    Bonus:   sales.BonusByProfit,
//	})
//	if err != nil {
//	    var unknown *sales.UnknownProductError
//	    if errors.As(err, &unknown) {
//	        log.Printf("record %d references sku %s", unknown.RecordIndex, unknown.SKU)
//	    }
//	    return err
//	}
//
// # Concurrency
//
// Analyze is synchronous. With Options.Workers greater than one, records are partitioned
// by seller and aggregated concurrently; per seller record order is kept, so the result is
// identical to the sequential run. Policies must then be safe for concurrent use.
package sales
