package models

// Category is a spending category from the fixed catalog shared by all users.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// UncategorizedColor is the neutral color used for expenses whose category id
// cannot be resolved against the catalog.
const UncategorizedColor = "#CCCCCC"

// The fixed catalog. Immutable at runtime; every aggregate gets a snapshot.
var defaultCategories = []Category{
	{ID: "cat_1", Name: "Housing", Color: "#4A6FFF"},
	{ID: "cat_2", Name: "Food", Color: "#FF6B6B"},
	{ID: "cat_3", Name: "Transportation", Color: "#FFD166"},
	{ID: "cat_4", Name: "Entertainment", Color: "#118AB2"},
	{ID: "cat_5", Name: "Shopping", Color: "#06D6A0"},
	{ID: "cat_6", Name: "Utilities", Color: "#4D6CFA"},
	{ID: "cat_7", Name: "Healthcare", Color: "#EF476F"},
	{ID: "cat_8", Name: "Personal", Color: "#073B4C"},
	{ID: "cat_9", Name: "Travel", Color: "#9370DB"},
	{ID: "cat_10", Name: "Salary", Color: "#2EC4B6"},
	{ID: "cat_11", Name: "Investments", Color: "#2EC4B6"},
	{ID: "cat_12", Name: "Gifts", Color: "#FF9F1C"},
}

// DefaultCategories returns a copy of the fixed category catalog.
func DefaultCategories() []Category {
	catalog := make([]Category, len(defaultCategories))
	copy(catalog, defaultCategories)
	return catalog
}

// CategoryByID looks a category up in the fixed catalog.
func CategoryByID(id string) (Category, bool) {
	for _, c := range defaultCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
