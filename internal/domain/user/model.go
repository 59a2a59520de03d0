package user

// User maps one row of the shared-credential admin table. Password holds the
// bcrypt hash, Token the currently valid bearer token (nil before first login).
type User struct {
	LoginID  string
	Password string
	Token    *string
}
