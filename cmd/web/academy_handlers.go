package main

import (
	"html/template"
	"log"
	"net/http"

	"chengxiang.org/chengxiang-web/internal/catalog"
	"chengxiang.org/chengxiang-web/internal/cms"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// AcademyView lists courses and articles with short teasers.
type AcademyView struct {
	Courses  []PostTeaser
	Articles []PostTeaser
}

// PostTeaser is one list entry with a rendered excerpt.
type PostTeaser struct {
	Post    catalog.Post
	Excerpt string
}

// PostView is the course/article detail payload.
type PostView struct {
	Post    catalog.Post
	Body    template.HTML
	Related *catalog.Product
}

func teasers(posts []catalog.Post) []PostTeaser {
	out := make([]PostTeaser, 0, len(posts))
	for _, p := range posts {
		excerpt := p.Excerpt
		if excerpt == "" {
			body, err := renderer.Render("post:"+p.ID, p.Body)
			if err != nil {
				log.Printf("render post %s: %v", p.ID, err)
			}
			excerpt = cms.Excerpt(body, 60)
		}
		out = append(out, PostTeaser{Post: p, Excerpt: excerpt})
	}
	return out
}

// AcademyHandler renders the course and article listings.
func AcademyHandler(w http.ResponseWriter, r *http.Request, c *store.Controller) {
	lang := mw.Lang(r)
	vm := basePage(r, c, i18nOrDefault(lang, "academy.title", "香学院"))
	vm.Academy = &AcademyView{
		Courses:  teasers(siteCatalog.Courses),
		Articles: teasers(siteCatalog.Articles),
	}
	renderPage(w, r, vm)
}

// PostHandler renders one course or article.
func PostHandler(w http.ResponseWriter, r *http.Request, c *store.Controller, post catalog.Post) {
	body, err := renderer.Render("post:"+post.ID+":body", post.Body)
	if err != nil {
		log.Printf("render post %s: %v", post.ID, err)
	}
	view := &PostView{Post: post, Body: body}
	if post.RelatedProductID != "" {
		if p, ok := siteCatalog.Lookup(post.RelatedProductID); ok {
			view.Related = &p
		}
	}
	vm := basePage(r, c, post.Title)
	vm.Post = view
	renderPage(w, r, vm)
}
