package services

import (
	"sort"

	"cdms/internal/models"
)

// bucketSizes splits n rows into the given number of groups the way SQL
// NTILE does: sizes differ by at most one and the larger groups come first.
func bucketSizes(n, buckets int) []int {
	if buckets < 1 {
		return nil
	}
	sizes := make([]int, buckets)
	base, extra := n/buckets, n%buckets
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}

// RankCustomers orders customers by purchase amount, highest first with
// ties broken by id, and assigns each one a 1-based bucket. It is the
// in-memory counterpart of NTILE(buckets) OVER (ORDER BY purchase_amount
// DESC, customer_id ASC). The input slice is not modified.
func RankCustomers(customers []models.Customer, buckets int) []models.RankedCustomer {
	sorted := make([]models.Customer, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if cmp := sorted[i].PurchaseAmount.Cmp(sorted[j].PurchaseAmount); cmp != 0 {
			return cmp > 0
		}
		return sorted[i].ID < sorted[j].ID
	})

	ranked := make([]models.RankedCustomer, 0, len(sorted))
	pos := 0
	for i, size := range bucketSizes(len(sorted), buckets) {
		for _, c := range sorted[pos : pos+size] {
			ranked = append(ranked, models.RankedCustomer{
				ID:             c.ID,
				FirstName:      c.FirstName,
				LastName:       c.LastName,
				State:          c.State,
				PurchaseAmount: c.PurchaseAmount,
				Bucket:         i + 1,
			})
		}
		pos += size
	}
	return ranked
}

// toSegmentResults labels ranked rows, keeping their order
func toSegmentResults(ranked []models.RankedCustomer) []*models.SegmentResult {
	results := make([]*models.SegmentResult, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, &models.SegmentResult{
			ID:             r.ID,
			FullName:       r.FirstName + " " + r.LastName,
			State:          r.State,
			Category:       models.CategoryForBucket(r.Bucket),
			PurchaseAmount: r.PurchaseAmount,
		})
	}
	return results
}
