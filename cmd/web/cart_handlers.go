package main

import (
	"net/http"
	"strconv"

	"chengxiang.org/chengxiang-web/internal/catalog"
	"chengxiang.org/chengxiang-web/internal/member"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// CartHandler renders the cart page.
func CartHandler(w http.ResponseWriter, r *http.Request, c *store.Controller) {
	lang := mw.Lang(r)
	vm := basePage(r, c, i18nOrDefault(lang, "cart.title", "购物车"))
	vm.Cart = buildCartView(c, mw.GetSession(r))
	renderPage(w, r, vm)
}

// CartAddHandler adds a product (optionally a specific variant) to the cart
// and returns to the page the form was on.
func CartAddHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	p, ok := siteCatalog.Lookup(r.PostFormValue("product"))
	if !ok {
		http.Error(w, "unknown product", http.StatusNotFound)
		return
	}
	var variant *catalog.Variant
	if vid := r.PostFormValue("variant"); vid != "" {
		v, ok := p.Variant(vid)
		if !ok {
			http.Error(w, "unknown variant", http.StatusNotFound)
			return
		}
		variant = &v
	}
	qty, _ := strconv.Atoi(r.PostFormValue("qty"))

	c, loc := newController(r)
	c.AddToCart(p, variant, qty)
	persistState(mw.GetSession(r), c.Snapshot())

	if back := r.PostFormValue("back"); back != "" && store.KnownTab(back) {
		loc.Write(back, r.PostFormValue("id"))
	}
	redirectTo(w, r, loc)
}

// CartQuantityHandler sets a line quantity. Values below one leave the line
// untouched.
func CartQuantityHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	qty, err := strconv.Atoi(r.PostFormValue("qty"))
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}
	c, loc := newController(r)
	c.UpdateCartQuantity(r.PostFormValue("line"), qty)
	persistState(mw.GetSession(r), c.Snapshot())
	loc.Write(store.TabCart, "")
	redirectTo(w, r, loc)
}

// CartRemoveHandler drops a line from the cart.
func CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	c, loc := newController(r)
	c.RemoveFromCart(r.PostFormValue("line"))
	persistState(mw.GetSession(r), c.Snapshot())
	loc.Write(store.TabCart, "")
	redirectTo(w, r, loc)
}

// CartCouponHandler stores the selected checkout coupon on the session. An
// empty selection clears it.
func CartCouponHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	s := mw.GetSession(r)
	id := r.PostFormValue("coupon")
	if id != "" {
		if _, ok := member.CartCoupon(id); !ok {
			http.Error(w, "unknown coupon", http.StatusNotFound)
			return
		}
	}
	s.CouponID = id
	s.MarkDirty()

	_, loc := newController(r)
	loc.Write(store.TabCart, "")
	redirectTo(w, r, loc)
}

// CartCheckoutHandler completes the demo checkout: empty the cart, clear the
// coupon, flash a confirmation, and land on home.
func CartCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	c, loc := newController(r)
	if len(c.Snapshot().Cart) == 0 {
		loc.Write(store.TabCart, "")
		redirectTo(w, r, loc)
		return
	}
	s := mw.GetSession(r)
	c.ClearCart()
	c.NavigateTo(store.TabHome, false)
	persistState(s, c.Snapshot())
	s.CouponID = ""
	s.PushNotice("支付成功，感谢您的惠顾！")
	redirectTo(w, r, loc)
}
