package catalog

import "strings"

// Catalog holds the in-memory product collections and the lookup structures
// derived from them. Build it once at startup and share it read-only.
type Catalog struct {
	Hot         []Product
	BestSellers []Product
	NewArrivals []Product
	Categories  []Category
	Courses     []Post
	Articles    []Post

	all     []Product
	byID    map[string]Product
	postsBy map[string]Post
	brands  []string
	origins []string
}

// New assembles the full demo catalog: curated headliners plus the generated
// long tail, deduplicated by id.
func New() *Catalog {
	genHot, genBest, genNew := generateExtras()
	return Build(
		append(append([]Product{}, curatedHot...), genHot...),
		append(append([]Product{}, curatedBest...), genBest...),
		append(append([]Product{}, curatedNew...), genNew...),
	)
}

// Build constructs a catalog from explicit collections. Used directly by tests
// that need a small, fully-known product set.
func Build(hot, best, newArrivals []Product) *Catalog {
	c := &Catalog{
		Hot:         hot,
		BestSellers: best,
		NewArrivals: newArrivals,
		Categories:  Categories,
		Courses:     Courses,
		Articles:    Articles,
		byID:        map[string]Product{},
		postsBy:     map[string]Post{},
	}
	seenBrand := map[string]bool{}
	seenOrigin := map[string]bool{}
	for _, list := range [][]Product{hot, best, newArrivals} {
		for _, p := range list {
			if _, dup := c.byID[p.ID]; dup {
				continue
			}
			c.byID[p.ID] = p
			c.all = append(c.all, p)
			if !seenBrand[p.Brand] {
				seenBrand[p.Brand] = true
				c.brands = append(c.brands, p.Brand)
			}
			if !seenOrigin[p.Origin] {
				seenOrigin[p.Origin] = true
				c.origins = append(c.origins, p.Origin)
			}
		}
	}
	for _, post := range c.Courses {
		c.postsBy[post.ID] = post
	}
	for _, post := range c.Articles {
		c.postsBy[post.ID] = post
	}
	return c
}

// All returns the deduplicated union of the three collections, in first-seen order.
func (c *Catalog) All() []Product { return c.all }

// Lookup resolves a product id, as used by ?id= deep links.
func (c *Catalog) Lookup(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// LookupPost resolves a course or article id.
func (c *Catalog) LookupPost(id string) (Post, bool) {
	p, ok := c.postsBy[id]
	return p, ok
}

// Brands lists the distinct product brands in catalog order.
func (c *Catalog) Brands() []string { return c.brands }

// Origins lists the distinct product origins in catalog order.
func (c *Catalog) Origins() []string { return c.origins }

// Category returns the category record for an id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// DefaultCategory is the selection used when entering the mall view.
func (c *Catalog) DefaultCategory() Category { return c.Categories[0] }

// MatchesCategory reproduces the storefront's category membership rule: the
// product tag contains the category name as a substring, or the product name
// does, or the tag equals the category id verbatim. This is a loose heuristic,
// not a foreign key; name collisions can place a product in several categories,
// and that behavior is kept intact.
func MatchesCategory(p Product, cat Category) bool {
	if cat.Name != "" && (strings.Contains(p.Tag, cat.Name) || strings.Contains(p.Name, cat.Name)) {
		return true
	}
	return p.Tag == cat.ID
}

// ByCategory filters the deduplicated catalog with MatchesCategory.
func (c *Catalog) ByCategory(cat Category) []Product {
	var out []Product
	for _, p := range c.all {
		if MatchesCategory(p, cat) {
			out = append(out, p)
		}
	}
	return out
}
