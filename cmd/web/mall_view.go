package main

import (
	"net/url"
	"strconv"
	"strings"

	"chengxiang.org/chengxiang-web/internal/catalog"
	"chengxiang.org/chengxiang-web/internal/store"
)

// MallView is the shop listing payload for both layouts. Desktop renders
// Items with the sidebar and numbered pagination; mobile renders Items as the
// cumulative infinite-scroll window with the category rail.
type MallView struct {
	// layout context repeated here so fragments can render standalone
	Lang      string
	CSRFToken string

	Categories []catalog.Category
	Selected   catalog.Category
	Brands     []string
	Origins    []string
	Filters    store.Filters

	Items      []CardView
	Page       int
	TotalPages int
	HasMore    bool
	NextPage   int
	Total      int
}

// parseFilters reads the desktop sidebar criteria from the query string.
func parseFilters(q url.Values) store.Filters {
	f := store.Filters{
		InStockOnly: q.Get("stock") == "1",
	}
	// checkboxes submit repeated keys; links may pass a comma list
	if vs := q["brand"]; len(vs) > 0 {
		f.Brands = vs
	} else if v := q.Get("brands"); v != "" {
		f.Brands = strings.Split(v, ",")
	}
	if vs := q["origin"]; len(vs) > 0 {
		f.Origins = vs
	} else if v := q.Get("origins"); v != "" {
		f.Origins = strings.Split(v, ",")
	}
	if v, err := strconv.ParseInt(q.Get("min"), 10, 64); err == nil && v > 0 {
		f.MinPrice = v
	}
	if v, err := strconv.ParseInt(q.Get("max"), 10, 64); err == nil && v > 0 {
		f.MaxPrice = v
	}
	return f
}

// applyMallQuery feeds category, filters, and cursors from the query string
// into the controller, in that order so the cursor set last survives the
// resets the earlier operations trigger.
func applyMallQuery(c *store.Controller, q url.Values) {
	if cat := q.Get("cat"); cat != "" {
		c.SelectCategory(cat)
	}
	if f := parseFilters(q); !emptyFilters(f) {
		c.SetFilters(f)
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 1 {
		c.SetDesktopPage(page)
	}
	if mp, err := strconv.Atoi(q.Get("mp")); err == nil && mp > 1 {
		for i := 1; i < mp; i++ {
			c.AdvanceMobilePage()
		}
	}
}

func emptyFilters(f store.Filters) bool {
	return len(f.Brands) == 0 && len(f.Origins) == 0 &&
		f.MinPrice == 0 && f.MaxPrice == 0 && !f.InStockOnly
}

func buildMallView(c *store.Controller) *MallView {
	snap := c.Snapshot()
	selected, _ := siteCatalog.Category(snap.SelectedCategoryID)
	view := &MallView{
		Categories: siteCatalog.Categories,
		Selected:   selected,
		Brands:     siteCatalog.Brands(),
		Origins:    siteCatalog.Origins(),
		Filters:    snap.Filters,
		TotalPages: c.TotalPages(),
		Total:      len(c.FilteredProducts()),
	}
	if snap.Mobile {
		view.Items = cardViews(c, c.MobileItems())
		view.Page = snap.MobilePage
		view.HasMore = c.MobileHasMore()
		view.NextPage = snap.MobilePage + 1
	} else {
		view.Items = cardViews(c, c.CatalogPage())
		view.Page = snap.DesktopPage
	}
	return view
}
