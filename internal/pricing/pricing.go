// Package pricing computes cart money amounts. Everything is integer yuan;
// percentage coupons are expressed in basis points so no floating point ever
// touches a total.
package pricing

import "chengxiang.org/chengxiang-web/internal/catalog"

// Shipping is free storewide.
const ShippingFee int64 = 0

// CouponType distinguishes fixed-amount coupons from percentage coupons.
type CouponType string

const (
	CouponFixed   CouponType = "money"
	CouponPercent CouponType = "discount"
)

// Coupon is a discount definition. For CouponFixed, Amount is the discount in
// yuan. For CouponPercent, KeepBps is the fraction of the subtotal the buyer
// still pays, in basis points (9500 = pay 95%, i.e. 5% off).
type Coupon struct {
	ID       string
	Name     string
	Type     CouponType
	Amount   int64
	KeepBps  int64
	MinSpend int64
}

// Line is the priced view of one cart entry.
type Line struct {
	UnitPrice int64
	Quantity  int
}

// Quote is a fully computed order total.
type Quote struct {
	Subtotal int64
	Discount int64
	Shipping int64
	Total    int64
}

// UnitPrice resolves the price of a product given an optionally selected
// variant; a variant override supersedes the product base price.
func UnitPrice(p catalog.Product, v *catalog.Variant) int64 {
	if v != nil && v.Price > 0 {
		return v.Price
	}
	return p.Price
}

// Subtotal sums line totals.
func Subtotal(lines []Line) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.UnitPrice * int64(l.Quantity)
	}
	return sum
}

// Discount computes the coupon deduction for a subtotal. A coupon below its
// minimum spend contributes nothing. The result is clamped to the subtotal so
// totals can never go negative.
func Discount(subtotal int64, c *Coupon) int64 {
	if c == nil || subtotal <= 0 || subtotal < c.MinSpend {
		return 0
	}
	var d int64
	switch c.Type {
	case CouponFixed:
		d = c.Amount
	case CouponPercent:
		if c.KeepBps >= 0 && c.KeepBps <= 10000 {
			d = subtotal * (10000 - c.KeepBps) / 10000
		}
	}
	if d < 0 {
		d = 0
	}
	if d > subtotal {
		d = subtotal
	}
	return d
}

// Compute builds the full quote for a set of lines and an optional coupon.
func Compute(lines []Line, c *Coupon) Quote {
	sub := Subtotal(lines)
	disc := Discount(sub, c)
	return Quote{
		Subtotal: sub,
		Discount: disc,
		Shipping: ShippingFee,
		Total:    sub - disc + ShippingFee,
	}
}
