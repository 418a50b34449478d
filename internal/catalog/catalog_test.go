package catalog

import (
	"strings"
	"testing"
)

func TestNewHasGloballyUniqueIDs(t *testing.T) {
	c := New()
	seen := map[string]bool{}
	for _, list := range [][]Product{c.Hot, c.BestSellers, c.NewArrivals} {
		for _, p := range list {
			if seen[p.ID] {
				t.Fatalf("duplicate product id %q across collections", p.ID)
			}
			seen[p.ID] = true
		}
	}
	if len(c.All()) != len(seen) {
		t.Fatalf("All() has %d products, want %d", len(c.All()), len(seen))
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	a := New()
	b := New()
	if len(a.All()) != len(b.All()) {
		t.Fatalf("catalog sizes differ: %d vs %d", len(a.All()), len(b.All()))
	}
	for i, p := range a.All() {
		q := b.All()[i]
		if p.ID != q.ID || p.Price != q.Price || p.Name != q.Name {
			t.Fatalf("product %d differs between builds: %+v vs %+v", i, p, q)
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	c := New()
	p, ok := c.Lookup("2")
	if !ok {
		t.Fatal("expected curated product id 2 to resolve")
	}
	if p.Name != "芽庄白奇楠沉香手串" {
		t.Fatalf("unexpected product for id 2: %q", p.Name)
	}
	if _, ok := c.Lookup("no-such-id"); ok {
		t.Fatal("expected unknown id miss")
	}
}

func TestMatchesCategoryHeuristic(t *testing.T) {
	cat := Category{ID: "c2", Name: "香道线香"}
	cases := []struct {
		p    Product
		want bool
	}{
		{Product{Name: "某某手串", Tag: "香道线香"}, true},          // tag contains name
		{Product{Name: "古法香道线香礼盒", Tag: ""}, true},          // name contains name
		{Product{Name: "某某手串", Tag: "c2"}, true},            // tag equals category id
		{Product{Name: "某某手串", Tag: "顶级收藏"}, false},
		{Product{Name: "某某手串", Tag: ""}, false},
	}
	for i, tc := range cases {
		if got := MatchesCategory(tc.p, cat); got != tc.want {
			t.Errorf("case %d: MatchesCategory=%v, want %v", i, got, tc.want)
		}
	}
}

// Name-substring collisions are intentional: a product whose name mentions
// another category's display name belongs to both. The rule is kept verbatim.
func TestMatchesCategoryNameCollision(t *testing.T) {
	lineCat := Category{ID: "c2", Name: "香道线香"}
	p := Product{Name: "香道线香伴侣香插", Tag: "精选香器"}
	if !MatchesCategory(p, lineCat) {
		t.Fatal("expected collision product to match by name substring")
	}
	toolCat := Category{ID: "c5", Name: "精选香器"}
	if !MatchesCategory(p, toolCat) {
		t.Fatal("expected collision product to match its tag category too")
	}
}

func TestGeneratedProductsCarryCategoryTag(t *testing.T) {
	c := New()
	var generated int
	for _, p := range c.All() {
		if !strings.HasPrefix(p.ID, "gen-") {
			continue
		}
		generated++
		var matched bool
		for _, cat := range c.Categories {
			if p.Tag == cat.Name {
				matched = true
				break
			}
		}
		if !matched {
			t.Fatalf("generated product %s tag %q is not a category name", p.ID, p.Tag)
		}
	}
	if generated != perCategoryCount*len(Categories) {
		t.Fatalf("generated %d products, want %d", generated, perCategoryCount*len(Categories))
	}
}

func TestVariantLookup(t *testing.T) {
	c := New()
	p, _ := c.Lookup("1")
	v, ok := p.Variant("v2")
	if !ok || v.Price != 18800 {
		t.Fatalf("expected v2 override price 18800, got %+v ok=%v", v, ok)
	}
	if _, ok := p.Variant("vX"); ok {
		t.Fatal("expected unknown variant miss")
	}
}
