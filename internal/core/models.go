package core

import "fmt"

type UserRecord struct {
	ID       uint
	Username string
	Email    string
	Password string
}

func (u UserRecord) String() string {
	return fmt.Sprintf("username='%s' email='%s' password='%s' id=%d", u.Username, u.Email, u.Password, u.ID)
}

type NewUserMessage struct {
	Username string
	Email    string
	Password string
}
