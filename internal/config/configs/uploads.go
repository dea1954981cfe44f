package configs

// Uploads configures banner file ingestion. Dir is created on first use
// if absent. Uploaded files are served under URLPath keyed by their
// stored filename.
type Uploads struct {
	// Dir is the directory uploaded banners are written to.
	Dir string `env:"DIR" envDefault:"static/uploads"`
	// URLPath is the route prefix the static retrieval endpoint is
	// mounted on.
	URLPath string `env:"URL_PATH" envDefault:"/static/uploads"`
	// BaseURL prefixes URLPath to form the fully-qualified banner URL
	// handed back after an upload.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	// MaxBytes caps the in-memory portion of multipart form parsing.
	MaxBytes int64 `env:"MAX_BYTES" envDefault:"10485760"`
}
