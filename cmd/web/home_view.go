package main

import (
	"chengxiang.org/chengxiang-web/internal/catalog"
	"chengxiang.org/chengxiang-web/internal/store"
)

// CardView is one product tile: the product plus its wishlist state for the
// heart toggle.
type CardView struct {
	Product    catalog.Product
	Wishlisted bool
}

func cardViews(c *store.Controller, products []catalog.Product) []CardView {
	out := make([]CardView, 0, len(products))
	for _, p := range products {
		out = append(out, CardView{Product: p, Wishlisted: c.IsWishlisted(p.ID)})
	}
	return out
}

// HomeView is the landing page payload.
type HomeView struct {
	Banners     []catalog.Banner
	Hot         []CardView
	BestSellers []CardView
	NewArrivals []CardView
	Courses     []catalog.Post
	Articles    []catalog.Post
}

func buildHomeView(c *store.Controller) *HomeView {
	return &HomeView{
		Banners:     catalog.HeroBanners,
		Hot:         cardViews(c, siteCatalog.Hot),
		BestSellers: cardViews(c, siteCatalog.BestSellers),
		NewArrivals: cardViews(c, siteCatalog.NewArrivals),
		Courses:     siteCatalog.Courses,
		Articles:    siteCatalog.Articles,
	}
}
