package nav

import (
	"testing"

	"chengxiang.org/chengxiang-web/internal/store"
)

func TestBuildActiveState(t *testing.T) {
	items := Build(Main, store.TabAcademy)
	if len(items) != len(Main) {
		t.Fatalf("len(items) = %d", len(items))
	}
	for _, it := range items {
		want := it.Tab == store.TabAcademy
		if it.Active != want {
			t.Errorf("tab %s active = %v, want %v", it.Tab, it.Active, want)
		}
	}
}

func TestBuildProductKeepsMallActive(t *testing.T) {
	for _, it := range Build(Main, store.TabProduct) {
		if it.Tab == store.TabMall && !it.Active {
			t.Fatal("mall tab not active on product detail")
		}
	}
}

func TestBuildHrefs(t *testing.T) {
	items := Build(Bottom, store.TabHome)
	if items[2].Href != "/?tab=cart" {
		t.Fatalf("cart href = %q", items[2].Href)
	}
}
