package domain

// Account is an authenticated principal. Exactly one account exists in
// this version; it is seeded at process start and never mutated.
type Account struct {
	ID    string
	Email string
	Name  string
}
