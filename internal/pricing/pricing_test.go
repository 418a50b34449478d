package pricing

import (
	"testing"

	"chengxiang.org/chengxiang-web/internal/catalog"
)

func TestUnitPricePrefersVariantOverride(t *testing.T) {
	p := catalog.Product{Price: 1000}
	if got := UnitPrice(p, nil); got != 1000 {
		t.Fatalf("base price: got %d", got)
	}
	v := catalog.Variant{ID: "v1", Price: 18800}
	if got := UnitPrice(p, &v); got != 18800 {
		t.Fatalf("override price: got %d", got)
	}
	free := catalog.Variant{ID: "v0"} // no override
	if got := UnitPrice(p, &free); got != 1000 {
		t.Fatalf("zero override should fall back to base price, got %d", got)
	}
}

func TestDiscountBelowMinSpendIsZero(t *testing.T) {
	c := &Coupon{ID: "c1", Type: CouponFixed, Amount: 50, MinSpend: 500}
	if got := Discount(400, c); got != 0 {
		t.Fatalf("below min spend: got %d, want 0", got)
	}
	if got := Discount(500, c); got != 50 {
		t.Fatalf("at min spend: got %d, want 50", got)
	}
}

func TestDiscountPercent(t *testing.T) {
	c := &Coupon{ID: "c2", Type: CouponPercent, KeepBps: 9500}
	if got := Discount(10000, c); got != 500 {
		t.Fatalf("5%% of 10000: got %d, want 500", got)
	}
	// integer division truncates toward the customer paying more, never negative
	if got := Discount(99, c); got != 4 {
		t.Fatalf("5%% of 99: got %d, want 4", got)
	}
}

func TestDiscountClamp(t *testing.T) {
	c := &Coupon{ID: "big", Type: CouponFixed, Amount: 100000}
	subtotals := []int64{0, 1, 50, 99999}
	for _, s := range subtotals {
		d := Discount(s, c)
		if d < 0 || d > s {
			t.Fatalf("discount %d outside [0,%d]", d, s)
		}
		q := Compute([]Line{{UnitPrice: s, Quantity: 1}}, c)
		if q.Total < 0 {
			t.Fatalf("negative total %d for subtotal %d", q.Total, s)
		}
		if q.Total != q.Subtotal-q.Discount+q.Shipping {
			t.Fatalf("total identity broken: %+v", q)
		}
	}
}

func TestComputeScenario(t *testing.T) {
	// subtotal 400 with a min-spend-500 coupon keeps the full price
	q := Compute([]Line{{UnitPrice: 200, Quantity: 2}}, &Coupon{Type: CouponFixed, Amount: 50, MinSpend: 500})
	if q.Subtotal != 400 || q.Discount != 0 || q.Total != 400 {
		t.Fatalf("unexpected quote %+v", q)
	}
}
