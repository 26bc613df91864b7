package dto

// UserCreateDTO is used for incoming registration requests. Field rules live
// in the registration ruleset, not in struct tags, so every violation can be
// collected and reported at once.
type UserCreateDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// UserResponseDTO is returned by the fetch-self endpoint.
type UserResponseDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
