package configs

// Session configures the cookie session layer. When Secret is empty a
// random value is generated at startup, which means sessions do not
// survive a restart unless the secret is pinned externally.
type Session struct {
	// Secret signs session cookie values. Keep it stable across restarts
	// in production deployments.
	Secret string `env:"SECRET"`
}
