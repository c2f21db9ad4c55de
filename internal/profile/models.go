package profile

// Collection is the document collection holding user profiles, keyed by
// phone number.
const Collection = "users"

// Profile is the sole domain entity. The phone number is the identity and
// never changes once written; createdAt/updatedAt are server-assigned and
// not exposed to callers.
type Profile struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
