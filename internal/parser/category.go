package parser

import "strings"

// CategoryGeneral is used when no keyword matches.
const CategoryGeneral = "General"

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Food & Dining", []string{"dinner", "lunch", "breakfast", "food", "pizza", "burger", "restaurant", "cafe", "coffee", "snack", "meal", "grocery", "groceries", "drinks", "beer"}},
	{"Transportation", []string{"taxi", "cab", "uber", "ola", "bus", "train", "metro", "flight", "fuel", "petrol", "gas", "parking", "toll", "auto", "rickshaw"}},
	{"Accommodation", []string{"hotel", "hostel", "airbnb", "room", "stay", "rent", "lodge"}},
	{"Entertainment", []string{"movie", "tickets", "ticket", "concert", "show", "museum", "park", "game"}},
	{"Shopping", []string{"shopping", "clothes", "gift", "souvenir", "market", "mall"}},
}

// InferCategory picks a category from keywords in an expense description.
func InferCategory(desc string) string {
	words := strings.FieldsFunc(strings.ToLower(desc), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			for _, w := range words {
				if w == kw {
					return c.category
				}
			}
		}
	}
	return CategoryGeneral
}
