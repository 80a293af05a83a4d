package models

// User represents a registered account. Usernames are the natural key:
// recipes reference their owner by username and login is by username.
type User struct {
	// Username is the unique identifier chosen at signup.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the signup password.
	// Never serialized in API responses.
	PasswordHash string `json:"-"`

	// Email is the user's contact address.
	Email string `json:"email"`

	// FirstName and LastName are profile display fields.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"created_at"`
}

// NewUser creates a User with the given identity fields. CreatedAt is
// populated by the store on insert.
func NewUser(username, passwordHash, email, firstName, lastName string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
	}
}
