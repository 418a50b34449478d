package main

import (
	"net/http"
	"strconv"

	"chengxiang.org/chengxiang-web/internal/catalog"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// ProductHandler renders the product detail page.
func ProductHandler(w http.ResponseWriter, r *http.Request, c *store.Controller, p catalog.Product) {
	vm := basePage(r, c, p.Name)
	vm.Tab = store.TabProduct
	vm.Product = buildProductView(c, p)
	renderPage(w, r, vm)
}

// WishlistToggleHandler flips a product's wishlist membership, then returns
// to wherever the toggle was pressed.
func WishlistToggleHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	p, ok := siteCatalog.Lookup(r.PostFormValue("product"))
	if !ok {
		http.Error(w, "unknown product", http.StatusNotFound)
		return
	}
	c, loc := newController(r)
	c.ToggleWishlist(p)
	snap := c.Snapshot()
	persistState(mw.GetSession(r), snap)

	if back := r.PostFormValue("back"); back != "" && store.KnownTab(back) {
		loc.Write(back, r.PostFormValue("id"))
	}
	if snap.ActiveTab == store.TabWishlist && snap.WishlistPage > 1 {
		loc.Values.Set("wp", strconv.Itoa(snap.WishlistPage))
	}
	redirectTo(w, r, loc)
}
