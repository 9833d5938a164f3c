package requests

type CreateUser struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
	FirstName string `json:"first_name" validate:"required,max=100,person_name"`
	LastName  string `json:"last_name" validate:"required,max=100,person_name"`
	Role      string `json:"role" validate:"required,role"`
}

type UpdateUser struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,password"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100,person_name"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100,person_name"`
	Role      *string `json:"role" validate:"omitempty,role"`
}

type UpdateProfile struct {
	CurrentPassword string  `json:"current_password" validate:"required"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password" validate:"omitempty,password"`
	FirstName       *string `json:"first_name" validate:"omitempty,max=100,person_name"`
	LastName        *string `json:"last_name" validate:"omitempty,max=100,person_name"`
}
