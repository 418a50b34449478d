package store

import (
	"strings"

	"chengxiang.org/chengxiang-web/internal/catalog"
	"chengxiang.org/chengxiang-web/internal/pricing"
)

// PageSize is the number of products per page in paginated views.
const PageSize = 20

// Top-level view names. The tab value is what the URL carries, so these are
// wire-stable strings rather than iota constants.
const (
	TabHome     = "home"
	TabMall     = "categories"
	TabAcademy  = "academy"
	TabCart     = "cart"
	TabWishlist = "wishlist"
	TabProfile  = "profile"
	TabAbout    = "about"
	TabProduct  = "product"
	TabAgent    = "agent-application"
	TabTeam     = "team-members"
	TabCoupons  = "coupon-manager"
	TabWithdraw = "withdrawal-request"
	TabLogin    = "login"
	TabRegister = "register"
	TabForgot   = "forgot-password"
)

var knownTabs = map[string]bool{
	TabHome: true, TabMall: true, TabAcademy: true, TabCart: true,
	TabWishlist: true, TabProfile: true, TabAbout: true, TabProduct: true,
	TabAgent: true, TabTeam: true, TabCoupons: true, TabWithdraw: true,
	TabLogin: true, TabRegister: true, TabForgot: true,
}

// KnownTab reports whether a tab value is one of the recognized views.
func KnownTab(tab string) bool { return knownTabs[tab] }

// ResolveTab applies view-name aliases. "deals" is the marketing entry point
// for the coupon manager.
func ResolveTab(tab string) string {
	if tab == "deals" {
		return TabCoupons
	}
	return tab
}

// CartLine is one cart entry. Identity for merge purposes is the
// (product id, variant id) pair: the same product with a different variant is
// a distinct line.
type CartLine struct {
	Product  catalog.Product
	Variant  *catalog.Variant
	Quantity int
}

// ID is the line identity string used by quantity/remove requests.
func (l CartLine) ID() string {
	if l.Variant != nil {
		return l.Product.ID + "@" + l.Variant.ID
	}
	return l.Product.ID
}

// UnitPrice resolves the effective line price.
func (l CartLine) UnitPrice() int64 { return pricing.UnitPrice(l.Product, l.Variant) }

// LineTotal is unit price times quantity.
func (l CartLine) LineTotal() int64 { return l.UnitPrice() * int64(l.Quantity) }

func (l CartLine) sameIdentity(productID, variantID string) bool {
	if l.Product.ID != productID {
		return false
	}
	lv := ""
	if l.Variant != nil {
		lv = l.Variant.ID
	}
	return lv == variantID
}

// ParseLineID splits a line identity string back into its parts.
func ParseLineID(id string) (productID, variantID string) {
	if at := strings.IndexByte(id, '@'); at != -1 {
		return id[:at], id[at+1:]
	}
	return id, ""
}

// Filters is the desktop sidebar criteria. Zero values mean "unset".
type Filters struct {
	Brands      []string
	Origins     []string
	MinPrice    int64
	MaxPrice    int64
	InStockOnly bool
}

// Matches applies every set criterion to a product.
func (f Filters) Matches(p catalog.Product) bool {
	if f.InStockOnly && !p.InStock() {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if len(f.Origins) > 0 && !contains(f.Origins, p.Origin) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Profile settings sub-tabs.
const (
	SettingsInfo         = "info"
	SettingsSecurity     = "security"
	SettingsAddress      = "address"
	SettingsVerification = "verification"
	SettingsAccount      = "account"
)

// ProfileRoute is the member area sub-navigation: which profile tab is open,
// and which settings sub-tab when the settings tab is.
type ProfileRoute struct {
	Tab         string
	SettingsTab string
}

// DefaultProfileRoute is applied whenever the profile view is entered fresh.
func DefaultProfileRoute() ProfileRoute {
	return ProfileRoute{Tab: "home", SettingsTab: SettingsInfo}
}

// State is the whole navigation and cross-view state bag. It is owned by the
// Controller; views receive copies and must mutate only through controller
// operations.
type State struct {
	ActiveTab          string
	SelectedProduct    *catalog.Product
	SelectedPost       *catalog.Post
	SelectedCategoryID string
	Profile            ProfileRoute
	Filters            Filters

	DesktopPage  int
	MobilePage   int
	WishlistPage int

	Mobile           bool
	MobileFilterOpen bool
	FooterSection    string // expanded mobile footer accordion, "" = collapsed

	Cart     []CartLine
	Wishlist []catalog.Product
}

// clone returns a snapshot-safe copy: slices are duplicated so a subscriber
// can never observe a later in-place mutation.
func (s State) clone() State {
	out := s
	out.Cart = append([]CartLine(nil), s.Cart...)
	out.Wishlist = append([]catalog.Product(nil), s.Wishlist...)
	out.Filters.Brands = append([]string(nil), s.Filters.Brands...)
	out.Filters.Origins = append([]string(nil), s.Filters.Origins...)
	if s.SelectedProduct != nil {
		p := *s.SelectedProduct
		out.SelectedProduct = &p
	}
	if s.SelectedPost != nil {
		p := *s.SelectedPost
		out.SelectedPost = &p
	}
	return out
}
