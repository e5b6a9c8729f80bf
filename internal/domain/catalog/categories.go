// internal/domain/catalog/categories.go
package catalog

// DefaultCategories is the storefront's browsing grid metadata. Images point
// at representative product shots served by the CDN/static layer.
func DefaultCategories() []CategoryMeta {
	return []CategoryMeta{
		{Name: "Kick for Women", Image: "/products/p1.jpg"},
		{Name: "Kick for Men", Image: "/products/p11.jpg"},
		{Name: "Wallet", Image: "/products/p21.jpg"},
		{Name: "Belt", Image: "/products/p31.jpg"},
		{Name: "Hand Bag", Image: "/products/p41.jpg"},
		{Name: "Backpacks", Image: "/products/p51.jpg"},
		{Name: "Jackets", Image: "/products/p71.jpg"},
		{Name: "Pants", Image: "/products/p81.jpg"},
		{Name: "Perfume for Women", Image: "/products/p91.jpg"},
		{Name: "Perfume for Men", Image: "/products/p115.jpg"},
		{Name: "Watch for Men", Image: "/products/p125.jpg"},
		{Name: "Watch for Women", Image: "/products/p271.jpg"},
		{Name: "Sunglasses for Men", Image: "/products/p301.jpg"},
		{Name: "Ladies Sunglasses", Image: "/products/p371.jpg"},
		{Name: "Frames", Image: "/products/p401.jpg"},
	}
}
