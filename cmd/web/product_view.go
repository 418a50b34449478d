package main

import (
	"html/template"
	"log"

	"chengxiang.org/chengxiang-web/internal/catalog"
	"chengxiang.org/chengxiang-web/internal/pricing"
	"chengxiang.org/chengxiang-web/internal/store"
)

// ProductView is the detail page payload.
type ProductView struct {
	Product    catalog.Product
	Body       template.HTML
	Wishlisted bool
	Related    []CardView
	BackTab    string
}

func buildProductView(c *store.Controller, p catalog.Product) *ProductView {
	body, err := renderer.Render("product:"+p.ID, p.DetailBody)
	if err != nil {
		log.Printf("render product body %s: %v", p.ID, err)
	}
	// related: same category, excluding the product itself
	var related []catalog.Product
	if cat, ok := siteCatalog.Category(c.Snapshot().SelectedCategoryID); ok {
		for _, other := range siteCatalog.ByCategory(cat) {
			if other.ID != p.ID && len(related) < 4 {
				related = append(related, other)
			}
		}
	}
	return &ProductView{
		Product:    p,
		Body:       body,
		Wishlisted: c.IsWishlisted(p.ID),
		Related:    cardViews(c, related),
		BackTab:    store.TabMall,
	}
}

// VariantPrice resolves the display price for a variant row.
func (v *ProductView) VariantPrice(variant catalog.Variant) int64 {
	return pricing.UnitPrice(v.Product, &variant)
}
