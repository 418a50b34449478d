package main

import (
	"net/http"
	"strconv"

	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// WishlistView is the wishlist page payload.
type WishlistView struct {
	Items      []CardView
	Page       int
	TotalPages int
	Total      int
	Empty      bool
}

// WishlistHandler renders the paginated wishlist. The page cursor rides on
// the `wp` parameter; an out-of-range cursor is clamped.
func WishlistHandler(w http.ResponseWriter, r *http.Request, c *store.Controller) {
	lang := mw.Lang(r)
	if wp, err := strconv.Atoi(r.URL.Query().Get("wp")); err == nil && wp > 1 {
		c.SetWishlistPage(wp)
	}
	snap := c.Snapshot()
	vm := basePage(r, c, i18nOrDefault(lang, "wishlist.title", "心愿单"))
	vm.Wishlist = &WishlistView{
		Items:      cardViews(c, c.WishlistPageItems()),
		Page:       snap.WishlistPage,
		TotalPages: c.WishlistTotalPages(),
		Total:      len(snap.Wishlist),
		Empty:      len(snap.Wishlist) == 0,
	}
	renderPage(w, r, vm)
}
