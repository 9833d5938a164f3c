package requests

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Register struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
	FirstName string `json:"first_name" validate:"required,max=100,person_name"`
	LastName  string `json:"last_name" validate:"required,max=100,person_name"`
}
