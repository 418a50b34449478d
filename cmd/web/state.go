package main

import (
	"net/http"
	"strconv"

	"chengxiang.org/chengxiang-web/internal/catalog"
	"chengxiang.org/chengxiang-web/internal/layout"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// viewportCookieName remembers the reported viewport width between requests.
const viewportCookieName = "vw"

// requestMobile decides the layout mode for this request. A `vw` query
// parameter (posted by a tiny resize listener) wins over the remembered
// cookie; with neither present the desktop layout is assumed.
func requestMobile(r *http.Request) bool {
	if q := r.URL.Query().Get("vw"); q != "" {
		if px, err := strconv.Atoi(q); err == nil {
			return layout.IsMobile(px)
		}
	}
	if c, err := r.Cookie(viewportCookieName); err == nil {
		if px, err := strconv.Atoi(c.Value); err == nil {
			return layout.IsMobile(px)
		}
	}
	return false
}

// sessionCart rebuilds cart lines from the cookie records, re-resolving every
// product and price from the catalog. Records pointing at products that no
// longer exist are dropped.
func sessionCart(s *mw.SessionData) []store.CartLine {
	var lines []store.CartLine
	for _, rec := range s.Cart {
		p, ok := siteCatalog.Lookup(rec.ProductID)
		if !ok {
			continue
		}
		var variant *catalog.Variant
		if rec.VariantID != "" {
			v, ok := p.Variant(rec.VariantID)
			if !ok {
				continue
			}
			variant = &v
		}
		qty := rec.Quantity
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, store.CartLine{Product: p, Variant: variant, Quantity: qty})
	}
	return lines
}

func sessionWishlist(s *mw.SessionData) []catalog.Product {
	var out []catalog.Product
	for _, id := range s.Wishlist {
		if p, ok := siteCatalog.Lookup(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// newController builds the per-request controller: navigation state seeded
// from the query string, cart and wishlist restored from the session.
func newController(r *http.Request) (*store.Controller, *store.ValuesLocation) {
	loc := &store.ValuesLocation{Values: r.URL.Query()}
	s := mw.GetSession(r)
	c := store.New(siteCatalog, loc, store.NotifierFunc(func(msg string) {
		s.PushNotice(msg)
	}))
	c.Restore(sessionCart(s), sessionWishlist(s))
	c.SetMobile(requestMobile(r))
	return c, loc
}

// persistState writes the session-backed slices of a snapshot back into the
// cookie session.
func persistState(s *mw.SessionData, snap store.State) {
	recs := make([]mw.CartRecord, 0, len(snap.Cart))
	for _, l := range snap.Cart {
		rec := mw.CartRecord{ProductID: l.Product.ID, Quantity: l.Quantity}
		if l.Variant != nil {
			rec.VariantID = l.Variant.ID
		}
		recs = append(recs, rec)
	}
	ids := make([]string, 0, len(snap.Wishlist))
	for _, p := range snap.Wishlist {
		ids = append(ids, p.ID)
	}
	s.Cart = recs
	s.Wishlist = ids
	s.MarkDirty()
}

// redirectTo sends the browser back into the dispatcher at the controller's
// current location.
func redirectTo(w http.ResponseWriter, r *http.Request, loc *store.ValuesLocation) {
	http.Redirect(w, r, loc.Encode(), http.StatusSeeOther)
}
