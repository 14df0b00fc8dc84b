package planning

import "testing"

func item(code string, onHand, inTransit, cmm float64) InventoryRecord {
	return InventoryRecord{
		Code:      code,
		OnHand:    onHand,
		InTransit: inTransit,
		Cmm:       cmm,
		MaxStock:  1000,
	}
}

func TestOrderQuantity(t *testing.T) {
	tests := []struct {
		name   string
		record InventoryRecord
		want   float64
	}{
		{
			name:   "fully stocked item is clamped to zero",
			record: item("A", 100, 0, 10), // target 20, current 100
			want:   0,
		},
		{
			name:   "understocked item",
			record: item("B", 10, 0, 50), // target 100, current 10
			want:   90,
		},
		{
			name:   "in-transit quantity nets against the target",
			record: item("C", 10, 80, 50), // target 100, current 90
			want:   10,
		},
		{
			name:   "exact coverage yields zero",
			record: item("D", 20, 0, 10),
			want:   0,
		},
		{
			name:   "zero consumption never orders",
			record: item("E", 0, 0, 0),
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderQuantity(tt.record); got != tt.want {
				t.Errorf("OrderQuantity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectCriticalItemsEmptyInventory(t *testing.T) {
	got := SelectCriticalItems(nil, DefaultCriticalCap)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

func TestSelectCriticalItemsAllStocked(t *testing.T) {
	inventory := []InventoryRecord{
		item("A", 100, 0, 10),
		item("B", 500, 50, 20),
	}
	got := SelectCriticalItems(inventory, DefaultCriticalCap)
	if len(got) != 0 {
		t.Fatalf("fully stocked inventory should select nothing, got %d items", len(got))
	}
}

func TestSelectCriticalItemsOnlyPositiveQuantities(t *testing.T) {
	inventory := []InventoryRecord{
		item("OK", 100, 0, 10),
		item("LOW", 10, 0, 50),
		item("EDGE", 20, 0, 10),
	}
	got := SelectCriticalItems(inventory, DefaultCriticalCap)

	if len(got) != 1 {
		t.Fatalf("expected 1 critical item, got %d", len(got))
	}
	if got[0].Code != "LOW" {
		t.Errorf("Code = %q, want LOW", got[0].Code)
	}
	if got[0].OrderQuantity != 90 {
		t.Errorf("OrderQuantity = %v, want 90", got[0].OrderQuantity)
	}
	for _, ci := range got {
		if ci.OrderQuantity <= 0 {
			t.Errorf("item %s has non-positive order quantity %v", ci.Code, ci.OrderQuantity)
		}
	}
}

func TestSelectCriticalItemsRankedByCmmAndCapped(t *testing.T) {
	// 7 qualifying items with distinct CMM, cap 5: the 5 highest survive,
	// in descending order.
	inventory := []InventoryRecord{
		item("C10", 0, 0, 10),
		item("C70", 0, 0, 70),
		item("C30", 0, 0, 30),
		item("C50", 0, 0, 50),
		item("C20", 0, 0, 20),
		item("C60", 0, 0, 60),
		item("C40", 0, 0, 40),
	}

	got := SelectCriticalItems(inventory, 5)
	if len(got) != 5 {
		t.Fatalf("expected exactly 5 items, got %d", len(got))
	}

	wantOrder := []string{"C70", "C60", "C50", "C40", "C30"}
	for i, want := range wantOrder {
		if got[i].Code != want {
			t.Errorf("position %d = %s, want %s", i, got[i].Code, want)
		}
	}
}

func TestSelectCriticalItemsStableOnEqualCmm(t *testing.T) {
	inventory := []InventoryRecord{
		item("FIRST", 0, 0, 25),
		item("SECOND", 0, 0, 25),
		item("THIRD", 0, 0, 25),
	}
	got := SelectCriticalItems(inventory, DefaultCriticalCap)
	wantOrder := []string{"FIRST", "SECOND", "THIRD"}
	for i, want := range wantOrder {
		if got[i].Code != want {
			t.Errorf("position %d = %s, want %s (ties must keep input order)", i, got[i].Code, want)
		}
	}
}

func TestSelectCriticalItemsDefaultsAbcClass(t *testing.T) {
	inventory := []InventoryRecord{item("X", 0, 0, 5)}
	got := SelectCriticalItems(inventory, 0) // cap <= 0 falls back to default
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].AbcClass != "A" {
		t.Errorf("AbcClass = %q, want defaulted A", got[0].AbcClass)
	}
}
