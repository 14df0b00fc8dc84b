package planning

import "sort"

// defaultAbcClass is applied to every critical item. The upstream product
// records carry their own ABC classification, but the plan payload has always
// shipped "A" here; flagged for product clarification before wiring through.
const defaultAbcClass = "A"

// OrderQuantity computes the replenishment need for a single record under the
// fixed reorder-point policy: target coverage is two months of average
// consumption, netted against stock on hand and quantities already ordered.
// Never negative.
func OrderQuantity(rec InventoryRecord) float64 {
	qty := rec.Cmm*2 - rec.OnHand - rec.InTransit
	if qty < 0 {
		return 0
	}
	return qty
}

// SelectCriticalItems runs the deterministic triage over a full inventory
// snapshot and returns the ranked, size-bounded critical set, highest
// priority first.
//
// An item is critical iff its computed order quantity is strictly positive.
// Ranking is by CMM descending; items with equal CMM keep their relative
// input order. The result never exceeds cap; cap <= 0 falls back to
// DefaultCriticalCap.
//
// Pure function of its input: no I/O, no mutation of the snapshot.
func SelectCriticalItems(inventory []InventoryRecord, cap int) []CriticalItem {
	if cap <= 0 {
		cap = DefaultCriticalCap
	}

	critical := make([]CriticalItem, 0, len(inventory))
	for _, rec := range inventory {
		qty := OrderQuantity(rec)
		if qty <= 0 {
			continue
		}
		critical = append(critical, CriticalItem{
			Code:          rec.Code,
			AbcClass:      defaultAbcClass,
			OnHand:        rec.OnHand,
			MaxStock:      rec.MaxStock,
			Cmm:           rec.Cmm,
			InTransit:     rec.InTransit,
			OrderQuantity: qty,
		})
	}

	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].Cmm > critical[j].Cmm
	})

	if len(critical) > cap {
		critical = critical[:cap]
	}
	return critical
}
