package specification

import (
	"notes-api-be/internal/criteria"
)

const ownerJoin = "LEFT JOIN users ON users.id = notes.user_id"

// ByNoteCriteria converts a NoteCriteria into the single conjunctive predicate
// described by its populated field filters. The owner filter constrains the
// joined user's id; the join is left-outer so that userId.specified=false keeps
// matching notes without an owner, and it is registered only when an owner
// filter is actually present.
func ByNoteCriteria(c *criteria.NoteCriteria) *Predicate {
	p := NewPredicate()
	if c == nil {
		return p
	}
	applyRangeFilter(p, "notes.id", c.ID)
	applyStringFilter(p, "notes.content", c.Content)
	if !c.UserID.IsZero() {
		p.Join("users", ownerJoin)
		applyRangeFilter(p, "users.id", c.UserID)
	}
	return p
}
