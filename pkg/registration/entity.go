package registration

// User is a registration candidate and, once accepted, the stored record.
// Empty Login or Password means the value was not provided.
type User struct {
	Login    string
	Password string
	// Age is nil when absent.
	Age *int
}

// AgeOf returns a pointer to n, for building users with a present age.
func AgeOf(n int) *int { return &n }

// Clone returns a copy that shares no memory with u.
func (u User) Clone() User {
	if u.Age != nil {
		age := *u.Age
		u.Age = &age
	}
	return u
}
