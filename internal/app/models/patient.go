package models

type Patient struct {
	ID               string `bson:"_id,omitempty"`
	OwnerID          string `bson:"ownerId"`
	FirstName        string `bson:"firstName"`
	LastName         string `bson:"lastName"`
	BirthDate        string `bson:"birthDate"`
	PhoneCountryCode string `bson:"phoneCountryCode"`
	Phone            string `bson:"phone"`
	Email            string `bson:"email"`
	TimeModel        `bson:",inline"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Patient) FullPhone() string {
	return p.PhoneCountryCode + p.Phone
}

func (p *Patient) SetOwnerID(ownerID string) {
	p.OwnerID = ownerID
}
