package main

import (
	"net/http"

	"chengxiang.org/chengxiang-web/internal/catalog"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// MallHandler renders the shop listing for the active category.
func MallHandler(w http.ResponseWriter, r *http.Request, c *store.Controller) {
	lang := mw.Lang(r)
	applyMallQuery(c, r.URL.Query())
	vm := basePage(r, c, i18nOrDefault(lang, "mall.title", "香品商城"))
	vm.Mall = buildMallView(c)
	vm.Mall.Lang = vm.Lang
	vm.Mall.CSRFToken = vm.CSRFToken
	renderPage(w, r, vm)
}

// MallListFrag serves the next infinite-scroll chunk for the mobile listing.
// The response carries only the new cards plus the next sentinel, and pushes
// the canonical mall URL so a reload lands on the listing, not the fragment.
func MallListFrag(w http.ResponseWriter, r *http.Request) {
	c, _ := newController(r)
	applyMallQuery(c, r.URL.Query())
	snap := c.Snapshot()

	items := c.MobileItems()
	start := (snap.MobilePage - 1) * store.PageSize
	if start > len(items) {
		start = len(items)
	}
	chunk := items[start:]

	s := mw.GetSession(r)
	w.Header().Set("HX-Push-Url", "/?tab="+store.TabMall+"&cat="+snap.SelectedCategoryID)
	renderTemplate(w, r, "frag_mall_list", &MallView{
		Lang:      mw.Lang(r),
		CSRFToken: s.CSRFToken,
		Selected:  mustCategory(snap.SelectedCategoryID),
		Items:     cardViews(c, chunk),
		Page:      snap.MobilePage,
		HasMore:   c.MobileHasMore(),
		NextPage:  snap.MobilePage + 1,
	})
}

func mustCategory(id string) catalog.Category {
	c, _ := siteCatalog.Category(id)
	return c
}
