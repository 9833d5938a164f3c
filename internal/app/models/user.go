package models

import "clinic-service/internal/pkg/constvars"

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
	Role      string `bson:"role"`
	TimeModel `bson:",inline"`
}

func (u *User) IsAdmin() bool {
	return u.Role == constvars.RoleAdmin
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
