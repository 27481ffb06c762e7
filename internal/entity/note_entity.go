package entity

import "time"

// Note is the domain view of a stored note. Id is sequence-assigned on first
// save and immutable afterwards; UserId is nil only for rows persisted outside
// an authenticated context.
type Note struct {
	Id        int64
	Content   string
	UserId    *int64
	CreatedAt time.Time
}
