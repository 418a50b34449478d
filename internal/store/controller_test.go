package store

import (
	"fmt"
	"net/url"
	"testing"

	"chengxiang.org/chengxiang-web/internal/catalog"
)

func testProduct(id string, price int64) catalog.Product {
	return catalog.Product{
		ID:     id,
		Name:   "测试沉香 " + id,
		Brand:  "承香堂",
		Price:  price,
		Tag:    "c1",
		Origin: "越南芽庄",
	}
}

func testVariant(id string, price int64) *catalog.Variant {
	return &catalog.Variant{ID: id, Name: "规格 " + id, Price: price}
}

func manyProducts(n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, testProduct(fmt.Sprintf("tp-%d", i), int64(100+i)))
	}
	return out
}

func newTestController(loc Location) *Controller {
	cat := catalog.Build(manyProducts(45), nil, nil)
	if loc == nil {
		loc = &MemoryLocation{}
	}
	return New(cat, loc, nil)
}

func TestNavigateToClearsSelections(t *testing.T) {
	loc := &MemoryLocation{}
	c := newTestController(loc)

	p, _ := c.catalog.Lookup("tp-0")
	c.SelectProduct(p)
	c.SelectPost(catalog.Articles[0])
	c.NavigateTo(TabAcademy, false)

	s := c.Snapshot()
	if s.SelectedProduct != nil || s.SelectedPost != nil {
		t.Fatalf("selections survived navigation: %+v", s)
	}
	if s.ActiveTab != TabAcademy {
		t.Fatalf("ActiveTab = %q, want %q", s.ActiveTab, TabAcademy)
	}
	if loc.Tab != TabAcademy || loc.ProductID != "" {
		t.Fatalf("address = (%q, %q), want (%q, \"\")", loc.Tab, loc.ProductID, TabAcademy)
	}
}

func TestNavigateToDealsAlias(t *testing.T) {
	c := newTestController(nil)
	c.NavigateTo("deals", false)
	if got := c.Snapshot().ActiveTab; got != TabCoupons {
		t.Fatalf("ActiveTab = %q, want %q", got, TabCoupons)
	}
}

func TestNavigateToMallResetsCategory(t *testing.T) {
	c := newTestController(nil)
	c.SelectCategory("c3")

	c.NavigateTo(TabMall, true)
	if got := c.Snapshot().SelectedCategoryID; got != "c3" {
		t.Fatalf("preserved navigation lost category: got %q", got)
	}

	c.NavigateTo(TabMall, false)
	if got := c.Snapshot().SelectedCategoryID; got != "c1" {
		t.Fatalf("category = %q after fresh mall entry, want c1", got)
	}
}

func TestNavigateToProfileResetsSubRoute(t *testing.T) {
	c := newTestController(nil)
	c.NavigateToSettings(SettingsSecurity)
	if r := c.Snapshot().Profile; r.Tab != "settings" || r.SettingsTab != SettingsSecurity {
		t.Fatalf("Profile = %+v after settings jump", r)
	}
	c.NavigateTo(TabProfile, false)
	if r := c.Snapshot().Profile; r != DefaultProfileRoute() {
		t.Fatalf("Profile = %+v, want default", r)
	}
}

func TestSelectionsAreMutuallyExclusive(t *testing.T) {
	c := newTestController(nil)
	p, _ := c.catalog.Lookup("tp-1")

	c.SelectPost(catalog.Courses[0])
	c.SelectProduct(p)
	s := c.Snapshot()
	if s.SelectedPost != nil {
		t.Fatal("post still selected after product selection")
	}
	if s.SelectedProduct == nil || s.SelectedProduct.ID != "tp-1" {
		t.Fatalf("SelectedProduct = %+v", s.SelectedProduct)
	}

	c.SelectPost(catalog.Courses[0])
	s = c.Snapshot()
	if s.SelectedProduct != nil {
		t.Fatal("product still selected after post selection")
	}
	if s.SelectedPost == nil || s.SelectedPost.ID != catalog.Courses[0].ID {
		t.Fatalf("SelectedPost = %+v", s.SelectedPost)
	}
}

func TestAddToCartMergesByProductAndVariant(t *testing.T) {
	c := newTestController(nil)
	p := testProduct("p1", 1000)
	v1 := testVariant("v1", 1200)
	v2 := testVariant("v2", 1500)

	c.AddToCart(p, nil, 1)
	c.AddToCart(p, v1, 2)
	c.AddToCart(p, v1, 3)
	c.AddToCart(p, v2, 1)
	c.AddToCart(p, nil, 4)

	cart := c.Snapshot().Cart
	if len(cart) != 3 {
		t.Fatalf("len(cart) = %d, want 3 distinct lines", len(cart))
	}
	want := map[string]int{"p1": 5, "p1@v1": 5, "p1@v2": 1}
	for _, l := range cart {
		if l.Quantity != want[l.ID()] {
			t.Errorf("line %s quantity = %d, want %d", l.ID(), l.Quantity, want[l.ID()])
		}
	}
}

func TestAddToCartNonPositiveQuantity(t *testing.T) {
	c := newTestController(nil)
	c.AddToCart(testProduct("p1", 1000), nil, 0)
	c.AddToCart(testProduct("p2", 2000), nil, -3)
	for _, l := range c.Snapshot().Cart {
		if l.Quantity != 1 {
			t.Errorf("line %s quantity = %d, want 1", l.ID(), l.Quantity)
		}
	}
}

func TestUpdateCartQuantityFloor(t *testing.T) {
	c := newTestController(nil)
	c.AddToCart(testProduct("p1", 1000), nil, 2)

	c.UpdateCartQuantity("p1", 5)
	if q := c.Snapshot().Cart[0].Quantity; q != 5 {
		t.Fatalf("quantity = %d, want 5", q)
	}

	c.UpdateCartQuantity("p1", 0)
	if q := c.Snapshot().Cart[0].Quantity; q != 5 {
		t.Fatalf("quantity = %d after rejected update, want 5", q)
	}
	if n := len(c.Snapshot().Cart); n != 1 {
		t.Fatalf("len(cart) = %d, line must not be removed by a quantity update", n)
	}
}

func TestRemoveFromCartIdempotent(t *testing.T) {
	c := newTestController(nil)
	c.AddToCart(testProduct("p1", 1000), nil, 1)
	c.RemoveFromCart("p1")
	c.RemoveFromCart("p1")
	c.RemoveFromCart("never-there")
	if n := len(c.Snapshot().Cart); n != 0 {
		t.Fatalf("len(cart) = %d, want 0", n)
	}
}

func TestToggleWishlist(t *testing.T) {
	c := newTestController(nil)
	p := testProduct("p1", 1000)

	c.ToggleWishlist(p)
	if !c.IsWishlisted("p1") {
		t.Fatal("product missing after first toggle")
	}
	c.ToggleWishlist(p)
	if c.IsWishlisted("p1") {
		t.Fatal("product present after second toggle")
	}
}

func TestWishlistPageUnderflow(t *testing.T) {
	c := newTestController(nil)
	items := manyProducts(PageSize + 1)
	c.Restore(nil, items)

	c.SetWishlistPage(2)
	if got := c.Snapshot().WishlistPage; got != 2 {
		t.Fatalf("WishlistPage = %d, want 2", got)
	}
	if n := len(c.WishlistPageItems()); n != 1 {
		t.Fatalf("page 2 has %d items, want 1", n)
	}

	c.ToggleWishlist(items[len(items)-1])
	if got := c.Snapshot().WishlistPage; got != 1 {
		t.Fatalf("WishlistPage = %d after emptying page 2, want 1", got)
	}
}

func TestPaginationResets(t *testing.T) {
	c := newTestController(nil)
	c.NavigateTo(TabMall, false)

	advance := func() {
		c.SetDesktopPage(2)
		c.AdvanceMobilePage()
	}
	check := func(op string) {
		t.Helper()
		s := c.Snapshot()
		if s.DesktopPage != 1 || s.MobilePage != 1 {
			t.Fatalf("%s: pages = (%d, %d), want (1, 1)", op, s.DesktopPage, s.MobilePage)
		}
	}

	advance()
	c.SelectCategory("c1")
	check("SelectCategory")

	advance()
	c.SetFilters(Filters{InStockOnly: true})
	check("SetFilters")

	advance()
	c.NavigateTo(TabHome, false)
	check("NavigateTo")
}

func TestMobileCutoverResetsPagination(t *testing.T) {
	c := newTestController(nil)
	c.SetDesktopPage(2)
	c.AdvanceMobilePage()

	c.SetMobile(true)
	s := c.Snapshot()
	if s.DesktopPage != 1 || s.MobilePage != 1 {
		t.Fatalf("pages = (%d, %d) after cutover, want (1, 1)", s.DesktopPage, s.MobilePage)
	}

	// Same-mode set is a no-op and must not emit.
	emits := 0
	c.Subscribe(func(State) { emits++ })
	c.SetMobile(true)
	if emits != 0 {
		t.Fatalf("emits = %d for no-op mode set, want 0", emits)
	}
}

func TestMobileIgnoresDesktopFilters(t *testing.T) {
	c := newTestController(nil)
	c.SetFilters(Filters{MinPrice: 1 << 40}) // excludes everything

	if n := len(c.FilteredProducts()); n != 0 {
		t.Fatalf("desktop listing = %d products, want 0", n)
	}
	c.SetMobile(true)
	if n := len(c.FilteredProducts()); n != 45 {
		t.Fatalf("mobile listing = %d products, want full category of 45", n)
	}
}

func TestMobileInfiniteWindow(t *testing.T) {
	c := newTestController(nil)
	c.SetMobile(true)

	if n := len(c.MobileItems()); n != PageSize {
		t.Fatalf("initial window = %d, want %d", n, PageSize)
	}
	c.AdvanceMobilePage()
	if n := len(c.MobileItems()); n != 2*PageSize {
		t.Fatalf("window = %d after one advance, want %d", n, 2*PageSize)
	}
	c.AdvanceMobilePage()
	if n := len(c.MobileItems()); n != 45 {
		t.Fatalf("window = %d at tail, want 45", n)
	}
	if c.MobileHasMore() {
		t.Fatal("MobileHasMore() = true past the last page")
	}
	c.AdvanceMobilePage()
	if got := c.Snapshot().MobilePage; got != 3 {
		t.Fatalf("MobilePage = %d after tail advance, want 3", got)
	}
}

func TestLocationRoundTrip(t *testing.T) {
	// Writing the address after an operation and rebuilding a controller from
	// it must reproduce the same view and selection.
	loc := &MemoryLocation{}
	c := newTestController(loc)
	p, _ := c.catalog.Lookup("tp-7")
	c.SelectProduct(p)

	c2 := newTestController(loc)
	s := c2.Snapshot()
	if s.SelectedProduct == nil || s.SelectedProduct.ID != "tp-7" {
		t.Fatalf("SelectedProduct = %+v after round trip", s.SelectedProduct)
	}

	c2.NavigateTo(TabAcademy, false)
	c3 := newTestController(loc)
	if got := c3.Snapshot().ActiveTab; got != TabAcademy {
		t.Fatalf("ActiveTab = %q after round trip, want %q", got, TabAcademy)
	}
}

func TestSeedFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		tab, id string
		wantTab string
		wantSel string
	}{
		{"empty address", "", "", TabHome, ""},
		{"unknown tab", "no-such-view", "", TabHome, ""},
		{"deals alias", "deals", "", TabCoupons, ""},
		{"unknown id ignored", TabProduct, "ghost", TabProduct, ""},
		{"known id", TabProduct, "tp-3", TabProduct, "tp-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(&MemoryLocation{Tab: tt.tab, ProductID: tt.id})
			s := c.Snapshot()
			if s.ActiveTab != tt.wantTab {
				t.Errorf("ActiveTab = %q, want %q", s.ActiveTab, tt.wantTab)
			}
			sel := ""
			if s.SelectedProduct != nil {
				sel = s.SelectedProduct.ID
			}
			if sel != tt.wantSel {
				t.Errorf("SelectedProduct = %q, want %q", sel, tt.wantSel)
			}
		})
	}
}

func TestValuesLocation(t *testing.T) {
	v := &ValuesLocation{Values: url.Values{}}
	v.Write(TabProduct, "p9")
	if got := v.Encode(); got != "/?id=p9&tab=product" {
		t.Fatalf("Encode() = %q", got)
	}
	v.Write(TabHome, "")
	tab, id := v.Read()
	if tab != TabHome || id != "" {
		t.Fatalf("Read() = (%q, %q)", tab, id)
	}
}

func TestEmitOncePerOperation(t *testing.T) {
	c := newTestController(nil)
	emits := 0
	c.Subscribe(func(State) { emits++ })

	c.NavigateTo(TabMall, false)
	c.SelectCategory("c2")
	c.AddToCart(testProduct("p1", 1000), nil, 1)
	if emits != 3 {
		t.Fatalf("emits = %d for 3 operations, want 3", emits)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	c := newTestController(nil)
	c.AddToCart(testProduct("p1", 1000), nil, 1)

	snap := c.Snapshot()
	snap.Cart[0].Quantity = 99
	if q := c.Snapshot().Cart[0].Quantity; q != 1 {
		t.Fatalf("quantity = %d, snapshot mutation leaked into controller", q)
	}
}
