package user

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64 `validate:"gt=0"`
}

// GetUserResponse represents the response payload for user details.
type GetUserResponse struct {
	ID           int64
	FirstName    string
	LastName     string
	Address      Address
	PhoneNumbers []string
}

// Address is the postal address part of a user DTO.
type Address struct {
	StreetAddress string
	City          string
	State         string
	PostalCode    int
}
