package main

import (
	"net/http"

	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// RootHandler is the single page entry point. The tab and id query
// parameters select the view; everything else renders around them.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	c, _ := newController(r)

	// An open product detail wins over whatever tab is in the address.
	if snap := c.Snapshot(); snap.SelectedProduct != nil {
		ProductHandler(w, r, c, *snap.SelectedProduct)
		return
	}

	// Academy posts are addressed by their own parameter; they are not part
	// of the shareable tab+id pair.
	if postID := r.URL.Query().Get("post"); postID != "" {
		if post, ok := siteCatalog.LookupPost(postID); ok {
			c.SelectPost(post)
			PostHandler(w, r, c, post)
			return
		}
	}

	switch c.Snapshot().ActiveTab {
	case store.TabHome:
		HomeHandler(w, r, c)
	case store.TabMall:
		MallHandler(w, r, c)
	case store.TabAcademy:
		AcademyHandler(w, r, c)
	case store.TabCart:
		CartHandler(w, r, c)
	case store.TabWishlist:
		WishlistHandler(w, r, c)
	case store.TabProfile, store.TabAgent, store.TabTeam, store.TabCoupons, store.TabWithdraw:
		ProfileHandler(w, r, c)
	case store.TabAbout:
		AboutHandler(w, r, c)
	case store.TabLogin, store.TabRegister, store.TabForgot:
		AuthHandler(w, r, c)
	default:
		HomeHandler(w, r, c)
	}
}

// SearchHandler is a stub: full-text search isn't built yet, so it flashes
// the query back and lands the visitor on the catalog.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		mw.GetSession(r).PushNotice("搜索功能: " + q)
	}
	c, loc := newController(r)
	c.NavigateTo(store.TabMall, false)
	loc.Values.Del("q")
	redirectTo(w, r, loc)
}

// NoticesFrag drains and renders the flash queue for htmx toast swaps.
func NoticesFrag(w http.ResponseWriter, r *http.Request) {
	c, _ := newController(r)
	vm := basePage(r, c, "")
	renderTemplate(w, r, "frag_notices", vm)
}
