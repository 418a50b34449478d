package main

import (
	"chengxiang.org/chengxiang-web/internal/member"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/pricing"
	"chengxiang.org/chengxiang-web/internal/store"
)

// CartView is the cart page payload: lines, the coupon picker, and the
// computed totals.
type CartView struct {
	Lines     []store.CartLine
	Coupons   []pricing.Coupon
	Selected  string
	Quote     pricing.Quote
	Addresses []member.Address
	Empty     bool
}

func buildCartView(c *store.Controller, s *mw.SessionData) *CartView {
	snap := c.Snapshot()
	lines := make([]pricing.Line, 0, len(snap.Cart))
	for _, l := range snap.Cart {
		lines = append(lines, pricing.Line{UnitPrice: l.UnitPrice(), Quantity: l.Quantity})
	}
	var coupon *pricing.Coupon
	if s.CouponID != "" {
		if cp, ok := member.CartCoupon(s.CouponID); ok {
			coupon = &cp
		}
	}
	return &CartView{
		Lines:     snap.Cart,
		Coupons:   member.CartCoupons(),
		Selected:  s.CouponID,
		Quote:     pricing.Compute(lines, coupon),
		Addresses: member.Demo().Addresses,
		Empty:     len(snap.Cart) == 0,
	}
}
