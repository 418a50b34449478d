package catalog

// Review is a customer review attached to a product.
type Review struct {
	ID         string
	UserName   string
	UserAvatar string
	Rating     float64
	Content    string
	Images     []string
	Date       string
}

// Variant is a purchasable option of a product (size, packaging). A variant
// may override the product price; a zero Price means the product price applies.
type Variant struct {
	ID    string
	Name  string
	Price int64
}

// Product is a catalog entry. ID is unique across the whole catalog and is the
// key used for deep links, cart lines, and wishlist membership.
type Product struct {
	ID               string
	Name             string
	Brand            string
	Price            int64 // integer yuan
	Image            string
	Tag              string
	Rating           float64
	Origin           string
	OutOfStock       bool
	ShortDescription string
	DetailBody       string // markdown, rendered by cms
	Variants         []Variant
	Reviews          []Review
}

// InStock reports whether the product can be added to a stock-filtered view.
// Products default to in stock unless flagged otherwise.
func (p Product) InStock() bool { return !p.OutOfStock }

// Variant returns the variant with the given id, if any.
func (p Product) Variant(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Category is one of the fixed storefront sections. The first category is the
// default selection when entering the mall view.
type Category struct {
	ID          string
	Name        string
	Image       string
	Description string
}

// Post is an academy entry: either a bookable course or a knowledge article.
type Post struct {
	ID               string
	Title            string
	Excerpt          string
	Date             string
	Image            string
	Category         string
	Body             string // markdown, rendered by cms
	Lecturer         string
	CourseTime       string
	Location         string
	ContactPhone     string
	ContactEmail     string
	RelatedProductID string
	Tips             []string
}

// IsCourse reports whether the post carries course registration details.
func (p Post) IsCourse() bool { return p.Lecturer != "" }

// Banner is a hero banner slot on the home page.
type Banner struct {
	Image    string
	Title    string
	Subtitle string
}
