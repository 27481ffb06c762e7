package entity

type User struct {
	Id    int64
	Login string
}
