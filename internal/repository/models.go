package repository

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"type:varchar(255);unique;not null"`
	Email    string
	Password string
}
