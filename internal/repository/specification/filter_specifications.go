package specification

import (
	"strings"

	"notes-api-be/internal/criteria"
)

// applyRangeFilter translates the equality-class and ordering operators of one
// field filter into conjuncts on column. Every set operator contributes its own
// condition; unset operators contribute nothing.
func applyRangeFilter[T comparable](p *Predicate, column string, f *criteria.RangeFilter[T]) {
	if f == nil {
		return
	}
	if f.Equals != nil {
		p.Where(column+" = ?", *f.Equals)
	}
	if f.NotEquals != nil {
		p.Where(column+" <> ?", *f.NotEquals)
	}
	if f.In != nil {
		if len(f.In) == 0 {
			// An explicitly empty set matches no row.
			p.Where("1 = 0")
		} else {
			p.Where(column+" IN ?", f.In)
		}
	}
	if len(f.NotIn) > 0 {
		p.Where(column+" NOT IN ?", f.NotIn)
	}
	if f.Specified != nil {
		if *f.Specified {
			p.Where(column + " IS NOT NULL")
		} else {
			p.Where(column + " IS NULL")
		}
	}
	if f.GreaterThan != nil {
		p.Where(column+" > ?", *f.GreaterThan)
	}
	if f.GreaterThanOrEqual != nil {
		p.Where(column+" >= ?", *f.GreaterThanOrEqual)
	}
	if f.LessThan != nil {
		p.Where(column+" < ?", *f.LessThan)
	}
	if f.LessThanOrEqual != nil {
		p.Where(column+" <= ?", *f.LessThanOrEqual)
	}
}

func applyStringFilter(p *Predicate, column string, f *criteria.StringFilter) {
	if f == nil {
		return
	}
	applyRangeFilter(p, column, &f.RangeFilter)
	if f.Contains != nil {
		// An empty substring matches every non-null value.
		p.Where(column+" LIKE ?", "%"+escapeLike(*f.Contains)+"%")
	}
	if f.DoesNotContain != nil {
		p.Where(column+" NOT LIKE ?", "%"+escapeLike(*f.DoesNotContain)+"%")
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
