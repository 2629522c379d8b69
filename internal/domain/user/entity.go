package user

// RecordID is the identifier of the only user the service knows about.
const RecordID int64 = 12

// Address represents the postal address of a user.
type Address struct {
	StreetAddress string
	City          string
	State         string
	PostalCode    int
}

// User represents a user entity in the system.
type User struct {
	ID           int64    // ID is the unique identifier for the user
	FirstName    string   // FirstName is the given name of the user
	LastName     string   // LastName is the family name of the user
	Address      Address  // Address is where the user lives
	PhoneNumbers []string // PhoneNumbers keeps the order they were recorded in
}

// Record returns the fixed user record served by the API.
// Every call builds a new value, so callers can never alter the shared record.
func Record() User {
	return User{
		ID:        RecordID,
		FirstName: "John",
		LastName:  "Smith",
		Address: Address{
			StreetAddress: "21 2nd Street",
			City:          "New York",
			State:         "NY",
			PostalCode:    10021,
		},
		PhoneNumbers: []string{"212 555-1234", "646 555-4567"},
	}
}
