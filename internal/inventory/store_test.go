// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package inventory

import (
	"math/rand"
	"testing"
	"time"

	"github.com/panbord/signage/internal/catalog"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
}

func testStore(t *testing.T) Store {
	t.Helper()
	return NewStore(map[int]Item{
		102020: {ProductCode: 102020, Quantity: 10, MaxQuantity: 20, Status: StatusAvailable},
		101070: {ProductCode: 101070, Quantity: 3, MaxQuantity: 15, Status: StatusLow},
		103010: {ProductCode: 103010, Quantity: 0, MaxQuantity: 25, Status: StatusOut},
	}, fixedNow)
}

func TestStatusForQuantity(t *testing.T) {
	tests := []struct {
		quantity int
		want     Status
	}{
		{-1, StatusOut},
		{0, StatusOut},
		{1, StatusLow},
		{5, StatusLow},
		{6, StatusAvailable},
		{100, StatusAvailable},
	}
	for _, tt := range tests {
		if got := StatusForQuantity(tt.quantity); got != tt.want {
			t.Errorf("StatusForQuantity(%d) = %v, want %v", tt.quantity, got, tt.want)
		}
	}
}

func TestSetQuantityClamps(t *testing.T) {
	tests := []struct {
		name       string
		set        int
		wantQty    int
		wantStatus Status
	}{
		{"negative clamps to zero", -5, 0, StatusOut},
		{"over max clamps to max", 9999, 20, StatusAvailable},
		{"in range", 4, 4, StatusLow},
		{"exact max", 20, 20, StatusAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t).SetQuantity(102020, tt.set)
			it, ok := s.Item(102020)
			if !ok {
				t.Fatal("record missing after SetQuantity")
			}
			if it.Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", it.Quantity, tt.wantQty)
			}
			if it.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v", it.Status, tt.wantStatus)
			}
			if !it.LastUpdated.Equal(fixedNow()) {
				t.Errorf("LastUpdated not stamped: %v", it.LastUpdated)
			}
		})
	}
}

func TestSetQuantityUnknownCodeIsNoOp(t *testing.T) {
	s := testStore(t)
	after := s.SetQuantity(999999, 10)
	if after.Len() != s.Len() {
		t.Errorf("unknown code changed record count: %d -> %d", s.Len(), after.Len())
	}
	if _, ok := after.Item(999999); ok {
		t.Error("unknown code created a record")
	}
}

func TestMutationsDoNotAliasPriorSnapshot(t *testing.T) {
	before := testStore(t)
	after := before.SetQuantity(102020, 1)

	orig, _ := before.Item(102020)
	if orig.Quantity != 10 {
		t.Errorf("prior snapshot mutated: quantity = %d, want 10", orig.Quantity)
	}
	updated, _ := after.Item(102020)
	if updated.Quantity != 1 {
		t.Errorf("new snapshot quantity = %d, want 1", updated.Quantity)
	}
}

func TestSell(t *testing.T) {
	s := testStore(t)

	s = s.Sell(102020)
	if it, _ := s.Item(102020); it.Quantity != 9 {
		t.Errorf("after Sell quantity = %d, want 9", it.Quantity)
	}

	// Selling from an empty record is the identity.
	before := s
	s = s.Sell(103010)
	if it, _ := s.Item(103010); it.Quantity != 0 {
		t.Errorf("sold below zero: quantity = %d", it.Quantity)
	}
	if got, _ := s.Item(103010); got != mustItem(t, before, 103010) {
		t.Error("Sell on empty record changed the store")
	}
}

func TestSellTenTimesReachesOut(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 10; i++ {
		s = s.Sell(102020)
	}
	it, _ := s.Item(102020)
	if it.Quantity != 0 {
		t.Errorf("quantity = %d, want 0", it.Quantity)
	}
	if it.Status != StatusOut {
		t.Errorf("status = %v, want %v", it.Status, StatusOut)
	}
}

func TestRestockClampsToCapacity(t *testing.T) {
	s := testStore(t)

	s = s.Restock(101070, 4)
	if it, _ := s.Item(101070); it.Quantity != 7 || it.Status != StatusAvailable {
		t.Errorf("after restock: quantity=%d status=%v, want 7/available", it.Quantity, it.Status)
	}

	s = s.Restock(101070, 1000)
	if it, _ := s.Item(101070); it.Quantity != 15 {
		t.Errorf("restock past capacity: quantity = %d, want 15", it.Quantity)
	}

	s = s.Restock(101070, -1000)
	if it, _ := s.Item(101070); it.Quantity != 0 || it.Status != StatusOut {
		t.Errorf("negative restock: quantity=%d status=%v, want 0/out", it.Quantity, it.Status)
	}
}

func TestSummarize(t *testing.T) {
	sum := testStore(t).Summarize()
	want := Summary{Total: 3, Available: 1, Low: 1, Out: 1}
	if sum != want {
		t.Errorf("Summarize() = %+v, want %+v", sum, want)
	}
}

func TestStatusQuantityInvariantHoldsAcrossMutations(t *testing.T) {
	s := testStore(t)
	ops := []func(Store) Store{
		func(s Store) Store { return s.Sell(102020) },
		func(s Store) Store { return s.SetQuantity(101070, 0) },
		func(s Store) Store { return s.Restock(103010, 3) },
		func(s Store) Store { return s.SetQuantity(102020, 100) },
	}
	for i, op := range ops {
		s = op(s)
		for _, it := range s.Items() {
			if got := StatusForQuantity(it.Quantity); it.Status != got {
				t.Errorf("op %d: product %d status %v does not match quantity %d",
					i, it.ProductCode, it.Status, it.Quantity)
			}
			if it.Quantity < 0 || it.Quantity > it.MaxQuantity {
				t.Errorf("op %d: product %d quantity %d outside [0,%d]",
					i, it.ProductCode, it.Quantity, it.MaxQuantity)
			}
		}
	}
}

func TestLowStockSortedAscending(t *testing.T) {
	s := NewStore(map[int]Item{
		1: {ProductCode: 1, Quantity: 4, MaxQuantity: 10, Status: StatusLow},
		2: {ProductCode: 2, Quantity: 1, MaxQuantity: 10, Status: StatusLow},
		3: {ProductCode: 3, Quantity: 8, MaxQuantity: 10, Status: StatusAvailable},
		4: {ProductCode: 4, Quantity: 2, MaxQuantity: 10, Status: StatusLow},
	}, fixedNow)

	low := s.LowStock()
	if len(low) != 3 {
		t.Fatalf("LowStock() = %d items, want 3", len(low))
	}
	for i := 1; i < len(low); i++ {
		if low[i].Quantity < low[i-1].Quantity {
			t.Errorf("LowStock not ascending at %d: %d < %d", i, low[i].Quantity, low[i-1].Quantity)
		}
	}
}

func TestOverstockedSortedByFillRatio(t *testing.T) {
	s := NewStore(map[int]Item{
		1: {ProductCode: 1, Quantity: 10, MaxQuantity: 10, Status: StatusAvailable}, // 1.0
		2: {ProductCode: 2, Quantity: 8, MaxQuantity: 10, Status: StatusAvailable},  // 0.8
		3: {ProductCode: 3, Quantity: 5, MaxQuantity: 10, Status: StatusLow},        // 0.5
	}, fixedNow)

	over := s.Overstocked(0)
	if len(over) != 2 {
		t.Fatalf("Overstocked() = %d items, want 2", len(over))
	}
	if over[0].ProductCode != 1 || over[1].ProductCode != 2 {
		t.Errorf("Overstocked order = [%d %d], want [1 2]", over[0].ProductCode, over[1].ProductCode)
	}
}

func TestSeedCoversCatalog(t *testing.T) {
	cat := catalog.MustLoad()
	rng := rand.New(rand.NewSource(42))
	s := Seed(cat, rng, fixedNow)

	if s.Len() != cat.Len() {
		t.Fatalf("seeded %d records for %d products", s.Len(), cat.Len())
	}
	for _, p := range cat.Products() {
		it, ok := s.Item(p.Code)
		if !ok {
			t.Errorf("product %d has no inventory record", p.Code)
			continue
		}
		if it.MaxQuantity <= 0 {
			t.Errorf("product %d max quantity %d, want > 0", p.Code, it.MaxQuantity)
		}
		if it.Quantity < 0 || it.Quantity > it.MaxQuantity {
			t.Errorf("product %d quantity %d outside [0,%d]", p.Code, it.Quantity, it.MaxQuantity)
		}
		if it.Status != StatusForQuantity(it.Quantity) {
			t.Errorf("product %d seeded status %v does not match quantity %d", p.Code, it.Status, it.Quantity)
		}
	}

	sum := s.Summarize()
	if sum.Total != cat.Len() {
		t.Errorf("summary total %d != catalog size %d", sum.Total, cat.Len())
	}
	if sum.Available+sum.Low+sum.Out != sum.Total {
		t.Errorf("summary counts %d+%d+%d do not sum to total %d",
			sum.Available, sum.Low, sum.Out, sum.Total)
	}
	// Demo seed pins one product out of stock.
	if it, _ := s.Item(102020); it.Status != StatusOut {
		t.Errorf("demo seed: product 102020 status %v, want out", it.Status)
	}
}

func TestSeedDeterministicWithSameRNGSeed(t *testing.T) {
	cat := catalog.MustLoad()
	a := Seed(cat, rand.New(rand.NewSource(7)), fixedNow)
	b := Seed(cat, rand.New(rand.NewSource(7)), fixedNow)
	for _, p := range cat.Products() {
		ia, _ := a.Item(p.Code)
		ib, _ := b.Item(p.Code)
		if ia.Quantity != ib.Quantity {
			t.Errorf("product %d: quantities differ across identical seeds: %d vs %d",
				p.Code, ia.Quantity, ib.Quantity)
		}
	}
}

func mustItem(t *testing.T, s Store, code int) Item {
	t.Helper()
	it, ok := s.Item(code)
	if !ok {
		t.Fatalf("item %d missing", code)
	}
	return it
}
