package types

// User is stored as a document in the "users" collection. The ID is
// assigned by the store on insert. Password holds the bcrypt hash, never
// the plaintext.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
