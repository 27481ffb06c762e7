package model

type User struct {
	Id    int64  `gorm:"primaryKey;autoIncrement"`
	Login string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (User) TableName() string {
	return "users"
}
