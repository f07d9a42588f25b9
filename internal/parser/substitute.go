package parser

import "github.com/splitledger/splitledger/internal/model"

// SubstituteCurrentUser returns copies of drafts with model.CurrentUser
// replaced by personID. Split members are deduplicated afterwards, so a
// roster that already contains personID does not count them twice.
func SubstituteCurrentUser(drafts []model.Draft, personID string) []model.Draft {
	out := make([]model.Draft, len(drafts))
	for i, d := range drafts {
		if d.PaidBy == model.CurrentUser {
			d.PaidBy = personID
		}
		split := make([]string, len(d.SplitBetween))
		for j, id := range d.SplitBetween {
			if id == model.CurrentUser {
				id = personID
			}
			split[j] = id
		}
		d.SplitBetween = model.UniqueMembers(split)
		out[i] = d
	}
	return out
}
