package nav

import "chengxiang.org/chengxiang-web/internal/store"

// Item represents a top-level navigation tab.
type Item struct {
	Tab      string // store tab value, e.g. store.TabMall
	LabelKey string // i18n key, e.g. "nav.mall"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	Tab      string
	LabelKey string
	Active   bool
}

// Main is the desktop header navigation definition.
var Main = []Item{
	{Tab: store.TabHome, LabelKey: "nav.home"},
	{Tab: store.TabMall, LabelKey: "nav.mall"},
	{Tab: store.TabAcademy, LabelKey: "nav.academy"},
	{Tab: store.TabAbout, LabelKey: "nav.about"},
}

// Bottom is the mobile bottom bar definition.
var Bottom = []Item{
	{Tab: store.TabHome, LabelKey: "nav.home"},
	{Tab: store.TabMall, LabelKey: "nav.mall"},
	{Tab: store.TabCart, LabelKey: "nav.cart"},
	{Tab: store.TabProfile, LabelKey: "nav.profile"},
}

// Build renders a navigation set with active state for the current tab. A
// selected product keeps the mall tab highlighted, matching where the visitor
// came from.
func Build(items []Item, activeTab string) []RenderedItem {
	if activeTab == store.TabProduct {
		activeTab = store.TabMall
	}
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		out = append(out, RenderedItem{
			Href:     "/?tab=" + it.Tab,
			Tab:      it.Tab,
			LabelKey: it.LabelKey,
			Active:   it.Tab == activeTab,
		})
	}
	return out
}
