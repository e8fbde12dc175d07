package enums

// MenuCategory groups menu items for listing and reporting.
type MenuCategory string

const (
	MenuCategorySalad   MenuCategory = "salad"
	MenuCategoryPizza   MenuCategory = "pizza"
	MenuCategorySoup    MenuCategory = "soup"
	MenuCategoryDessert MenuCategory = "dessert"
	MenuCategoryDrinks  MenuCategory = "drinks"
	MenuCategoryPopular MenuCategory = "popular"
	MenuCategoryOffered MenuCategory = "offered"
)

func (c MenuCategory) IsValid() bool {
	switch c {
	case MenuCategorySalad, MenuCategoryPizza, MenuCategorySoup,
		MenuCategoryDessert, MenuCategoryDrinks, MenuCategoryPopular, MenuCategoryOffered:
		return true
	default:
		return false
	}
}
