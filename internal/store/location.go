package store

import "net/url"

// Location is the address-bar abstraction the controller synchronizes with.
// Only the active tab and the selected product id are shareable; everything
// else (cart, filters, pagination) stays out of the address.
//
// In the web server a Location is realized over the request query string; in
// tests a MemoryLocation stands in.
type Location interface {
	// Read returns the tab and product id currently in the address.
	Read() (tab, productID string)
	// Write replaces the address with the given tab and optional product id.
	Write(tab, productID string)
}

// MemoryLocation is an in-process Location for tests and non-HTTP embeddings.
// It records every Write so round trips can be asserted.
type MemoryLocation struct {
	Tab       string
	ProductID string
	Writes    int
}

func (m *MemoryLocation) Read() (string, string) { return m.Tab, m.ProductID }

func (m *MemoryLocation) Write(tab, productID string) {
	m.Tab = tab
	m.ProductID = productID
	m.Writes++
}

// ValuesLocation adapts url.Values to Location. The web layer reads the
// incoming query through it and serializes Writes back into redirect targets
// and HX-Push-Url headers.
type ValuesLocation struct {
	Values url.Values
}

func (v *ValuesLocation) Read() (string, string) {
	return v.Values.Get("tab"), v.Values.Get("id")
}

func (v *ValuesLocation) Write(tab, productID string) {
	v.Values.Set("tab", tab)
	if productID == "" {
		v.Values.Del("id")
	} else {
		v.Values.Set("id", productID)
	}
}

// Encode renders the location as a root-relative URL.
func (v *ValuesLocation) Encode() string {
	if len(v.Values) == 0 {
		return "/"
	}
	return "/?" + v.Values.Encode()
}
