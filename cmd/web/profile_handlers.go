package main

import (
	"net/http"
	"strconv"
	"time"

	"chengxiang.org/chengxiang-web/internal/member"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// ProfileHandler renders the member area and its workflow screens.
func ProfileHandler(w http.ResponseWriter, r *http.Request, c *store.Controller) {
	lang := mw.Lang(r)
	if route := parseProfileRoute(r.URL.Query()); route != store.DefaultProfileRoute() {
		c.SetProfileRoute(route)
	}
	vm := basePage(r, c, i18nOrDefault(lang, "profile.title", "个人中心"))
	vm.Profile = buildProfileView(c, r.URL.Query())
	renderPage(w, r, vm)
}

// WithdrawHandler processes a payout request and flashes the outcome. The
// demo account must pass the identity and account checks first, so the form
// posts those toggles along for the walkthrough.
func WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	m := member.Demo()
	if r.PostFormValue("verified") == "1" {
		m.IdentityVerified = true
	}
	if r.PostFormValue("account_bound") == "1" {
		m.Payout = member.PayoutAccount{
			BankName:        "招商银行",
			AccountNumber:   "6225****8888",
			BeneficiaryName: m.Name,
		}
	}
	amount, _ := strconv.ParseInt(r.PostFormValue("amount"), 10, 64)

	s := mw.GetSession(r)
	_, err := m.RequestWithdrawal(amount, time.Now().Format("2006-01-02 15:04"))
	switch err {
	case nil:
		s.PushNotice("提现申请已提交，将打款至您绑定的账户")
	case member.ErrIdentityUnverified:
		s.PushNotice("请先完成实名认证")
	case member.ErrNoPayoutAccount:
		s.PushNotice("请先绑定提现账户")
	case member.ErrInvalidAmount:
		s.PushNotice("请输入有效的提现金额")
	case member.ErrBelowMinimum:
		s.PushNotice("最低提现金额为 ¥100")
	case member.ErrAboveMaximum:
		s.PushNotice("单笔提现最高限额 ¥50,000")
	case member.ErrInsufficientBalance:
		s.PushNotice("余额不足")
	default:
		s.PushNotice("提现失败，请稍后再试")
	}

	_, loc := newController(r)
	loc.Write(store.TabWithdraw, "")
	redirectTo(w, r, loc)
}

// AgentApplyHandler processes a partner program application.
func AgentApplyHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	m := member.Demo()
	if r.PostFormValue("verified") == "1" {
		m.IdentityVerified = true
	}
	app := member.AgentApplication{
		Name:    r.PostFormValue("name"),
		Phone:   r.PostFormValue("phone"),
		Region:  r.PostFormValue("region"),
		Message: r.PostFormValue("message"),
	}
	s := mw.GetSession(r)
	switch err := m.ApplyForAgent(app); err {
	case nil:
		s.PushNotice("申请已提交，审核通过后您将获得专属推广码")
	case member.ErrAgentNeedsIdentity:
		s.PushNotice("请先完成实名认证后再提交申请")
	default:
		s.PushNotice("请填写姓名与联系电话")
	}

	_, loc := newController(r)
	loc.Write(store.TabAgent, "")
	redirectTo(w, r, loc)
}

// ViewportHandler stores the reported viewport width so later requests pick
// the right layout.
func ViewportHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	px, err := strconv.Atoi(r.PostFormValue("vw"))
	if err != nil || px <= 0 {
		http.Error(w, "invalid width", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:  viewportCookieName,
		Value: strconv.Itoa(px),
		Path:  "/",
	})
	w.WriteHeader(http.StatusNoContent)
}
