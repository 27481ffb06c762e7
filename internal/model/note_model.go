package model

import "time"

type Note struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"type:varchar(3000);not null"`
	UserId    *int64    `gorm:"index"`
	User      *User     `gorm:"foreignKey:UserId"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Note) TableName() string {
	return "notes"
}
