package models

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Categories is the static storefront category list.
var Categories = []Category{
	{ID: "feeding", Name: "Feeding & Nursing", Slug: "feeding-nursing"},
	{ID: "diapering", Name: "Diapering", Slug: "diapering"},
	{ID: "clothing", Name: "Baby Clothing", Slug: "baby-clothing"},
	{ID: "toys", Name: "Toys & Learning", Slug: "toys-learning"},
	{ID: "bath", Name: "Bath & Skin Care", Slug: "bath-skin-care"},
	{ID: "gear", Name: "Strollers & Gear", Slug: "strollers-gear"},
	{ID: "health", Name: "Health & Safety", Slug: "health-safety"},
}

func CategoryByID(id string) (Category, bool) {
	for _, cat := range Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}
