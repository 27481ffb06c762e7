package specification

import "gorm.io/gorm"

// Predicate accumulates a conjunction of WHERE fragments plus the joins they
// depend on. An empty Predicate is the always-true predicate and applies
// nothing. Joins are registered under a key and applied at most once no matter
// how many conditions need them.
type Predicate struct {
	conds []condition
	joins []join
}

type condition struct {
	query string
	args  []interface{}
}

type join struct {
	key string
	sql string
}

func NewPredicate() *Predicate {
	return &Predicate{}
}

// Where ANDs one more condition into the predicate.
func (p *Predicate) Where(query string, args ...interface{}) *Predicate {
	p.conds = append(p.conds, condition{query: query, args: args})
	return p
}

// Join registers a join under key. Re-registering the same key is a no-op.
func (p *Predicate) Join(key, sql string) *Predicate {
	for _, j := range p.joins {
		if j.key == key {
			return p
		}
	}
	p.joins = append(p.joins, join{key: key, sql: sql})
	return p
}

// Empty reports whether the predicate constrains nothing.
func (p *Predicate) Empty() bool {
	return len(p.conds) == 0 && len(p.joins) == 0
}

func (p *Predicate) Apply(db *gorm.DB) *gorm.DB {
	for _, j := range p.joins {
		db = db.Joins(j.sql)
	}
	for _, c := range p.conds {
		db = db.Where(c.query, c.args...)
	}
	return db
}
