package main

import (
	"net/http"

	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request, c *store.Controller) {
	lang := mw.Lang(r)
	vm := basePage(r, c, i18nOrDefault(lang, "brand.name", "承香"))
	vm.Home = buildHomeView(c)
	renderPage(w, r, vm)
}
