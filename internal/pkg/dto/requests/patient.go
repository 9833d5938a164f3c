package requests

type CreatePatient struct {
	FirstName        string `json:"first_name" validate:"required,max=100,person_name"`
	LastName         string `json:"last_name" validate:"required,max=100,person_name"`
	BirthDate        string `json:"birth_date" validate:"required,datetime=2006-01-02,not_future_date"`
	PhoneCountryCode string `json:"phone_country_code" validate:"required,country_code"`
	Phone            string `json:"phone" validate:"required,phone_digits"`
	Email            string `json:"email" validate:"required,email"`
}

type UpdatePatient struct {
	FirstName        *string `json:"first_name" validate:"omitempty,max=100,person_name"`
	LastName         *string `json:"last_name" validate:"omitempty,max=100,person_name"`
	BirthDate        *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02,not_future_date"`
	PhoneCountryCode *string `json:"phone_country_code" validate:"omitempty,country_code"`
	Phone            *string `json:"phone" validate:"omitempty,phone_digits"`
	Email            *string `json:"email" validate:"omitempty,email"`
}

type PatientQuery struct {
	Search string
	Pagination
}
