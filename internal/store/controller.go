package store

import (
	"chengxiang.org/chengxiang-web/internal/catalog"
)

// Notifier receives transient user-facing notices ("added to cart" toasts).
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(string)

func (f NotifierFunc) Notify(message string) { f(message) }

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// Controller owns the navigation state and is the only writer of it. Every
// operation mutates the state, synchronizes the Location when the operation
// is shareable, and emits exactly one snapshot to subscribers.
type Controller struct {
	catalog  *catalog.Catalog
	loc      Location
	notifier Notifier
	state    State
	subs     []func(State)
}

// New builds a controller seeded from the Location. An unrecognized tab falls
// back to the home view; an unknown product id is ignored and the tab alone
// decides the view.
func New(cat *catalog.Catalog, loc Location, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	c := &Controller{
		catalog:  cat,
		loc:      loc,
		notifier: notifier,
		state: State{
			ActiveTab:          TabHome,
			SelectedCategoryID: cat.DefaultCategory().ID,
			Profile:            DefaultProfileRoute(),
			DesktopPage:        1,
			MobilePage:         1,
			WishlistPage:       1,
		},
	}
	tab, id := loc.Read()
	tab = ResolveTab(tab)
	if KnownTab(tab) {
		c.state.ActiveTab = tab
	}
	if id != "" {
		if p, ok := cat.Lookup(id); ok {
			c.state.SelectedProduct = &p
		}
	}
	return c
}

// Restore replaces the session-backed portions of the state (cart, wishlist)
// before the first emit. It is called once by the web layer after New.
func (c *Controller) Restore(cart []CartLine, wishlist []catalog.Product) {
	c.state.Cart = cart
	c.state.Wishlist = wishlist
}

// Subscribe registers a render callback. Each operation delivers one snapshot.
func (c *Controller) Subscribe(fn func(State)) {
	c.subs = append(c.subs, fn)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State { return c.state.clone() }

func (c *Controller) emit() {
	if len(c.subs) == 0 {
		return
	}
	snap := c.state.clone()
	for _, fn := range c.subs {
		fn(snap)
	}
}

func (c *Controller) resetPages() {
	c.state.DesktopPage = 1
	c.state.MobilePage = 1
}

// NavigateTo switches the top-level view. Any open product or post detail is
// closed, the mall category resets to the first category unless
// preserveCategory is set, and entering the profile view lands on the member
// home sub-tab. The address is rewritten with the new tab and no product id.
func (c *Controller) NavigateTo(view string, preserveCategory bool) {
	view = ResolveTab(view)
	c.state.ActiveTab = view
	c.state.SelectedProduct = nil
	c.state.SelectedPost = nil
	if view == TabMall && !preserveCategory {
		c.state.SelectedCategoryID = c.catalog.DefaultCategory().ID
	}
	if view == TabProfile {
		c.state.Profile = DefaultProfileRoute()
	}
	c.resetPages()
	c.loc.Write(view, "")
	c.emit()
}

// NavigateToSettings jumps straight to a settings sub-tab inside the profile
// view. This is an internal shortcut (from the account menu), so the address
// is left untouched.
func (c *Controller) NavigateToSettings(settingsTab string) {
	c.state.ActiveTab = TabProfile
	c.state.SelectedProduct = nil
	c.state.SelectedPost = nil
	c.state.Profile = ProfileRoute{Tab: "settings", SettingsTab: settingsTab}
	c.emit()
}

// SetProfileRoute moves within the member area.
func (c *Controller) SetProfileRoute(r ProfileRoute) {
	c.state.Profile = r
	c.emit()
}

// SelectProduct opens the product detail view. The product id becomes part of
// the shareable address. Selecting a product closes any open post.
func (c *Controller) SelectProduct(p catalog.Product) {
	c.state.SelectedProduct = &p
	c.state.SelectedPost = nil
	c.loc.Write(TabProduct, p.ID)
	c.emit()
}

// CloseProduct returns from the detail view to the tab that is in state.
func (c *Controller) CloseProduct() {
	c.state.SelectedProduct = nil
	c.loc.Write(c.state.ActiveTab, "")
	c.emit()
}

// SelectPost opens an academy article or course. Posts are not shareable, so
// the address is untouched. Selecting a post closes any open product.
func (c *Controller) SelectPost(p catalog.Post) {
	c.state.SelectedPost = &p
	c.state.SelectedProduct = nil
	c.emit()
}

// ClosePost returns from the post detail view.
func (c *Controller) ClosePost() {
	c.state.SelectedPost = nil
	c.emit()
}

// SelectCategory changes the mall category and rewinds both pagination
// cursors to the first page.
func (c *Controller) SelectCategory(id string) {
	if _, ok := c.catalog.Category(id); !ok {
		return
	}
	c.state.SelectedCategoryID = id
	c.resetPages()
	c.emit()
}

// SetFilters replaces the desktop filter criteria and rewinds pagination.
func (c *Controller) SetFilters(f Filters) {
	c.state.Filters = f
	c.resetPages()
	c.emit()
}

// SetMobile switches the layout mode. Crossing the cutover in either
// direction rewinds pagination so the two paging models never inherit each
// other's cursor.
func (c *Controller) SetMobile(mobile bool) {
	if c.state.Mobile == mobile {
		return
	}
	c.state.Mobile = mobile
	c.resetPages()
	c.emit()
}

// SetDesktopPage moves the desktop pagination cursor. Out-of-range values are
// clamped.
func (c *Controller) SetDesktopPage(n int) {
	total := c.TotalPages()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	c.state.DesktopPage = n
	c.emit()
}

// AdvanceMobilePage extends the mobile infinite-scroll window by one page.
// Past the last page it is a no-op.
func (c *Controller) AdvanceMobilePage() {
	if c.state.MobilePage < c.TotalPages() {
		c.state.MobilePage++
	}
	c.emit()
}

// SetMobileFilterOpen toggles the mobile category drawer.
func (c *Controller) SetMobileFilterOpen(open bool) {
	c.state.MobileFilterOpen = open
	c.emit()
}

// ToggleFooterSection expands one mobile footer accordion section at a time;
// tapping the open section collapses it.
func (c *Controller) ToggleFooterSection(section string) {
	if c.state.FooterSection == section {
		c.state.FooterSection = ""
	} else {
		c.state.FooterSection = section
	}
	c.emit()
}

// AddToCart merges into an existing line when the (product, variant) pair
// matches, otherwise appends a new line. A non-positive quantity is treated
// as one.
func (c *Controller) AddToCart(p catalog.Product, variant *catalog.Variant, qty int) {
	if qty < 1 {
		qty = 1
	}
	vid := ""
	if variant != nil {
		vid = variant.ID
	}
	merged := false
	for i := range c.state.Cart {
		if c.state.Cart[i].sameIdentity(p.ID, vid) {
			c.state.Cart[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		c.state.Cart = append(c.state.Cart, CartLine{Product: p, Variant: variant, Quantity: qty})
	}
	c.notifier.Notify(p.Name + " 已加入购物车")
	c.emit()
}

// UpdateCartQuantity sets the quantity of a line. Values below one are
// silently rejected; removal is an explicit separate operation.
func (c *Controller) UpdateCartQuantity(lineID string, qty int) {
	if qty < 1 {
		return
	}
	for i := range c.state.Cart {
		if c.state.Cart[i].ID() == lineID {
			c.state.Cart[i].Quantity = qty
			break
		}
	}
	c.emit()
}

// RemoveFromCart drops a line. Removing an absent line is a no-op.
func (c *Controller) RemoveFromCart(lineID string) {
	out := c.state.Cart[:0]
	for _, l := range c.state.Cart {
		if l.ID() != lineID {
			out = append(out, l)
		}
	}
	c.state.Cart = out
	c.emit()
}

// ClearCart empties the cart, as after a completed checkout.
func (c *Controller) ClearCart() {
	c.state.Cart = nil
	c.emit()
}

// CartCount is the total quantity across all lines, for the header badge.
func (c *Controller) CartCount() int {
	n := 0
	for _, l := range c.state.Cart {
		n += l.Quantity
	}
	return n
}

// IsWishlisted reports membership by product id.
func (c *Controller) IsWishlisted(productID string) bool {
	for _, p := range c.state.Wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// ToggleWishlist adds the product if absent and removes it if present.
// Removal may empty the current wishlist page, in which case the cursor
// steps back to the last non-empty page.
func (c *Controller) ToggleWishlist(p catalog.Product) {
	if c.IsWishlisted(p.ID) {
		out := c.state.Wishlist[:0]
		for _, w := range c.state.Wishlist {
			if w.ID != p.ID {
				out = append(out, w)
			}
		}
		c.state.Wishlist = out
		c.clampWishlistPage()
		c.notifier.Notify(p.Name + " 已移出心愿单")
	} else {
		c.state.Wishlist = append(c.state.Wishlist, p)
		c.notifier.Notify(p.Name + " 已加入心愿单")
	}
	c.emit()
}

// SetWishlistPage moves the wishlist cursor, clamped to the valid range.
func (c *Controller) SetWishlistPage(n int) {
	if n < 1 {
		n = 1
	}
	c.state.WishlistPage = n
	c.clampWishlistPage()
	c.emit()
}

func (c *Controller) clampWishlistPage() {
	total := c.WishlistTotalPages()
	if c.state.WishlistPage > total {
		c.state.WishlistPage = total
	}
	if c.state.WishlistPage < 1 {
		c.state.WishlistPage = 1
	}
}
