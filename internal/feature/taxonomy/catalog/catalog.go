// Package catalog defines the fixed category/subcategory catalog that the
// provisioner seeds for new users.
package catalog

// Entry is one category and its ordered subcategories.
type Entry struct {
	Category      string
	Subcategories []string
}

// Catalog is an ordered list of categories to provision. It is built once at
// startup and injected into the provisioner; nothing mutates it afterwards.
type Catalog []Entry

// Default returns the standard household catalog. The slice is freshly
// allocated on every call so callers cannot alias the package's data.
func Default() Catalog {
	return Catalog{
		{"Pantry Staples", []string{"Grains", "Canned goods", "Baking", "Oils & vinegars", "Condiments", "Spices & herbs"}},
		{"Snacks & Sweets", []string{"Chips and crackers", "Granola bars", "Cookies", "Candy", "Nuts and dried fruit"}},
		{"Frozen Foods", []string{"Frozen vegetables", "Frozen fruits", "Ready meals", "Desserts", "Meat", "Seafood"}},
		{"Beverages", []string{"Coffee", "Tea", "Juice", "Soda", "Bottled water", "Alcoholic drinks", "Seltzers"}},
		{"Breakfast Items", []string{"Cereal", "Pancake mix", "Syrup and honey", "Nut butters and jams"}},
		{"Cleaning Products", []string{"All-purpose cleaners", "Disinfectants", "Glass cleaner", "Floor cleaner", "Sponges and scrubbers"}},
		{"Laundry Supplies", []string{"Detergent", "Fabric softener", "Stain remover", "Dryer sheets"}},
		{"Paper Goods", []string{"Toilet paper", "Paper towels", "Tissues", "Napkins"}},
		{"Trash & Storage", []string{"Trash bags", "Recycling bags", "Ziplock bags", "Foil and plastic wrap"}},
		{"Miscellaneous", []string{"Batteries", "Light bulbs", "Air fresheners", "Pest control"}},
		{"Oral Care", []string{"Toothpaste", "Toothbrushes", "Mouthwash", "Floss"}},
		{"Skin Care", []string{"Cleanser", "Moisturizer", "Sunscreen", "Acne treatments"}},
		{"Bath & Body", []string{"Soap and body wash", "Shampoo", "Conditioner", "Lotions"}},
		{"Hair Care & Styling", []string{"Hair gel and spray", "Dry shampoo", "Combs and brushes"}},
		{"Feminine Hygiene", []string{"Pads and tampons", "Wipes"}},
		{"General Hygiene", []string{"Deodorant", "Hand soap and sanitizer", "Wet wipes", "Cotton swabs"}},
		{"Shaving & Grooming", []string{"Razors", "Shaving cream", "Aftershave", "Nail care"}},
		{"Fragrance & Scents", []string{"Perfume and cologne", "Body spray", "Essential oils"}},
		{"Baby & Sensitive Care", []string{"Diapers", "Baby wipes", "Baby shampoo", "Rash cream"}},
	}
}

// SubcategoryCount returns the total number of subcategories across all entries.
func (c Catalog) SubcategoryCount() int {
	n := 0
	for _, e := range c {
		n += len(e.Subcategories)
	}
	return n
}
