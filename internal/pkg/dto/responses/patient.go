package responses

import "time"

type Patient struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	BirthDate        string    `json:"birth_date"`
	PhoneCountryCode string    `json:"phone_country_code"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	OwnerID          string    `json:"owner_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
