package model

// CurrentUser is the reserved person ID standing for "I" / "me" in parsed
// drafts. It never names a roster member; callers replace it with the real
// person ID before an expense is stored.
const CurrentUser = "current_user"

// Person represents a row in people.csv.
type Person struct {
	ID    string
	Name  string // display only, not guaranteed unique
	Phone string
	Email string
}

// FindPerson returns the roster entry with the given ID.
func FindPerson(roster []Person, id string) (Person, bool) {
	for _, p := range roster {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// PersonName returns the display name for id, or "Unknown".
func PersonName(roster []Person, id string) string {
	if id == CurrentUser {
		return "me"
	}
	if p, ok := FindPerson(roster, id); ok {
		return p.Name
	}
	return "Unknown"
}
