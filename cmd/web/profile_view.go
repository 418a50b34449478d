package main

import (
	"net/url"

	"chengxiang.org/chengxiang-web/internal/member"
	"chengxiang.org/chengxiang-web/internal/store"
)

// ProfileView is the member area payload. Screen mirrors the top-level tab
// (profile, agent-application, team-members, coupon-manager,
// withdrawal-request); Route holds the in-profile sub-navigation.
type ProfileView struct {
	Screen string
	Route  store.ProfileRoute
	Member *member.Member

	Orders     []member.Order
	Order      *member.Order
	AfterSales []member.AfterSalesStep

	CouponTab    member.CouponStatus
	Coupons      []member.WalletCoupon
	CouponCounts map[string]int

	Withdrawals   []member.Withdrawal
	WithdrawalMin int64
	WithdrawalMax int64

	Team             []member.TeamMember
	TeamContribution int64
}

// parseProfileRoute reads the member sub-navigation from the query string.
func parseProfileRoute(q url.Values) store.ProfileRoute {
	route := store.DefaultProfileRoute()
	if t := q.Get("ptab"); t != "" {
		route.Tab = t
	}
	if t := q.Get("stab"); t != "" {
		route.SettingsTab = t
	}
	return route
}

func buildProfileView(c *store.Controller, q url.Values) *ProfileView {
	snap := c.Snapshot()
	m := member.Demo()
	view := &ProfileView{
		Screen:        snap.ActiveTab,
		Route:         snap.Profile,
		Member:        m,
		WithdrawalMin: member.WithdrawalMin,
		WithdrawalMax: member.WithdrawalMax,
	}

	switch snap.ActiveTab {
	case store.TabCoupons:
		tab := member.CouponStatus(q.Get("ctab"))
		switch tab {
		case member.CouponUsed, member.CouponExpired:
		default:
			tab = member.CouponAvailable
		}
		view.CouponTab = tab
		view.Coupons = member.CouponsByStatus(tab)
		view.CouponCounts = map[string]int{}
		for status, n := range member.CouponCounts() {
			view.CouponCounts[string(status)] = n
		}
	case store.TabWithdraw:
		view.Withdrawals = member.WithdrawalHistory()
	case store.TabTeam:
		view.Team = member.Team()
		view.TeamContribution = member.TeamContribution()
	default:
		view.Orders = member.Orders()
		if id := q.Get("order"); id != "" {
			if o, ok := member.OrderByID(id); ok {
				view.Order = &o
				if q.Get("as") == "1" {
					view.AfterSales = member.AfterSalesSteps(q.Get("logistics") == "1")
				}
			}
		}
	}
	return view
}
