package gateway

import (
	"github.com/go-playground/validator/v10"
)

// User is the record served under {baseURL}/users. ID is assigned by the
// backend and stays zero until the user is created.
type User struct {
	ID       int     `json:"id,omitempty" validate:"gte=0"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Address of a user.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo holds coordinates as the API renders them, in decimal strings.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company a user works for.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// Validate checks the well-formedness of u. It does not require any field.
func (u User) Validate(v *validator.Validate) error {
	return v.Struct(u)
}
