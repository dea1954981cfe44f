package configs

// Admin describes the single seeded account. Authentication succeeds
// only for an exact match on Email.
type Admin struct {
	ID    string `env:"ID" envDefault:"1"`
	Email string `env:"EMAIL" envDefault:"admin@example.com"`
	Name  string `env:"NAME" envDefault:"Admin User"`
}
