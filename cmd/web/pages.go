package main

import (
	"net/http"

	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/nav"
	"chengxiang.org/chengxiang-web/internal/store"
)

// PageData is the view model every page shares: layout chrome plus one
// view-specific payload.
type PageData struct {
	Title     string
	Lang      string
	Tab       string
	Mobile    bool
	CartCount int
	Notices   []string
	CSRFToken string
	Nav       []nav.RenderedItem
	BottomNav []nav.RenderedItem

	ShowFooter    bool
	FooterSection string

	// Per-view payloads; exactly one is populated per render.
	Home     *HomeView
	Mall     *MallView
	Product  *ProductView
	Cart     *CartView
	Wishlist *WishlistView
	Profile  *ProfileView
	Academy  *AcademyView
	Post     *PostView
	About    *AboutView
	Auth     *AuthView
}

// basePage fills the layout chrome from a snapshot.
func basePage(r *http.Request, c *store.Controller, title string) PageData {
	s := mw.GetSession(r)
	// the mobile footer accordion encodes its open section in the URL
	if fs := r.URL.Query().Get("fs"); fs != "" {
		c.ToggleFooterSection(fs)
	}
	snap := c.Snapshot()
	return PageData{
		Title:         title,
		Lang:          mw.Lang(r),
		Tab:           snap.ActiveTab,
		Mobile:        snap.Mobile,
		CartCount:     c.CartCount(),
		Notices:       s.TakeNotices(),
		CSRFToken:     s.CSRFToken,
		Nav:           nav.Build(nav.Main, snap.ActiveTab),
		BottomNav:     nav.Build(nav.Bottom, snap.ActiveTab),
		ShowFooter:    c.ShowFooter(),
		FooterSection: snap.FooterSection,
	}
}
