package main

import (
	"log"
	"net/http"

	"chengxiang.org/chengxiang-web/internal/cms"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// AboutView is the brand story page payload.
type AboutView struct {
	Page cms.Page
}

// AboutHandler renders the brand story from the content directory.
func AboutHandler(w http.ResponseWriter, r *http.Request, c *store.Controller) {
	lang := mw.Lang(r)
	page, err := pages.Page("about", lang)
	if err != nil {
		log.Printf("about page: %v", err)
		page.Title = i18nOrDefault(lang, "about.title", "品牌故事")
	}
	vm := basePage(r, c, page.Title)
	vm.About = &AboutView{Page: page}
	renderPage(w, r, vm)
}
