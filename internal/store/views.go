package store

import "chengxiang.org/chengxiang-web/internal/catalog"

// Derived, read-only projections of the state. These never mutate and never
// emit; views call them while rendering a snapshot.

// FilteredProducts returns the mall listing for the current category. On
// desktop the sidebar criteria apply on top; in the mobile layout the
// category is the only filter; desktop criteria are carried in state but
// deliberately ignored.
func (c *Controller) FilteredProducts() []catalog.Product {
	cat, _ := c.catalog.Category(c.state.SelectedCategoryID)
	pool := c.catalog.ByCategory(cat)
	if c.state.Mobile {
		return pool
	}
	out := make([]catalog.Product, 0, len(pool))
	for _, p := range pool {
		if c.state.Filters.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// TotalPages is the desktop page count over the filtered listing, never below
// one so an empty result still renders page 1 of 1.
func (c *Controller) TotalPages() int {
	return pageCount(len(c.FilteredProducts()))
}

// CatalogPage is the desktop page slice at the current cursor.
func (c *Controller) CatalogPage() []catalog.Product {
	return pageSlice(c.FilteredProducts(), c.state.DesktopPage)
}

// MobileItems is the cumulative infinite-scroll window: every page up to and
// including the mobile cursor.
func (c *Controller) MobileItems() []catalog.Product {
	all := c.FilteredProducts()
	end := c.state.MobilePage * PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[:end]
}

// MobileHasMore reports whether another page remains beyond the window.
func (c *Controller) MobileHasMore() bool {
	return c.state.MobilePage*PageSize < len(c.FilteredProducts())
}

// WishlistTotalPages is the wishlist page count, never below one.
func (c *Controller) WishlistTotalPages() int {
	return pageCount(len(c.state.Wishlist))
}

// WishlistPageItems is the wishlist slice at the current cursor.
func (c *Controller) WishlistPageItems() []catalog.Product {
	return pageSlice(c.state.Wishlist, c.state.WishlistPage)
}

// ShowFooter reports whether the current view carries the site footer. Detail
// views and workflow screens (cart, auth, member area) suppress it.
func (c *Controller) ShowFooter() bool {
	if c.state.SelectedProduct != nil || c.state.SelectedPost != nil {
		return false
	}
	switch c.state.ActiveTab {
	case TabHome, TabMall, TabAcademy, TabAbout:
		return true
	}
	return false
}

func pageCount(n int) int {
	pages := (n + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

func pageSlice(all []catalog.Product, page int) []catalog.Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(all) {
		return nil
	}
	end := start + PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
