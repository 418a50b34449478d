package member

import "chengxiang.org/chengxiang-web/internal/pricing"

// CouponStatus classifies a wallet coupon for the coupon manager tabs.
type CouponStatus string

const (
	CouponAvailable CouponStatus = "available"
	CouponUsed      CouponStatus = "used"
	CouponExpired   CouponStatus = "expired"
)

// WalletCoupon is a coupon as it appears in the member's wallet, carrying
// lifecycle metadata on top of the pricing definition.
type WalletCoupon struct {
	pricing.Coupon
	ValidUntil string
	Status     CouponStatus
}

// WalletCoupons returns the full coupon wallet.
func WalletCoupons() []WalletCoupon {
	return []WalletCoupon{
		{
			Coupon:     pricing.Coupon{ID: "1", Name: "新客专享礼金", Type: pricing.CouponFixed, Amount: 50, MinSpend: 500},
			ValidUntil: "2024-12-31",
			Status:     CouponAvailable,
		},
		{
			Coupon:     pricing.Coupon{ID: "2", Name: "沉香手串品类券", Type: pricing.CouponFixed, Amount: 200, MinSpend: 2000},
			ValidUntil: "2024-06-30",
			Status:     CouponAvailable,
		},
		{
			Coupon:     pricing.Coupon{ID: "3", Name: "全场通用95折", Type: pricing.CouponPercent, KeepBps: 9500},
			ValidUntil: "2024-05-20",
			Status:     CouponUsed,
		},
		{
			Coupon:     pricing.Coupon{ID: "4", Name: "限时活动抵扣券", Type: pricing.CouponFixed, Amount: 100, MinSpend: 1000},
			ValidUntil: "2023-12-31",
			Status:     CouponExpired,
		},
	}
}

// CouponsByStatus filters the wallet for one manager tab.
func CouponsByStatus(status CouponStatus) []WalletCoupon {
	var out []WalletCoupon
	for _, c := range WalletCoupons() {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// CouponCounts returns per-status totals for the tab headers.
func CouponCounts() map[CouponStatus]int {
	counts := map[CouponStatus]int{}
	for _, c := range WalletCoupons() {
		counts[c.Status]++
	}
	return counts
}

// CartCoupons is the subset selectable at checkout.
func CartCoupons() []pricing.Coupon {
	return []pricing.Coupon{
		{ID: "c1", Name: "新客专享礼金", Type: pricing.CouponFixed, Amount: 50, MinSpend: 500},
		{ID: "c2", Name: "全场通用95折", Type: pricing.CouponPercent, KeepBps: 9500},
	}
}

// CartCoupon looks up a checkout coupon by id.
func CartCoupon(id string) (pricing.Coupon, bool) {
	for _, c := range CartCoupons() {
		if c.ID == id {
			return c, true
		}
	}
	return pricing.Coupon{}, false
}
