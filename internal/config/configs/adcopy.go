package configs

// AdCopy configures the external text-generation service used to
// synthesize advertisement copy. An empty APIKey silently activates the
// local template fallback; it is never an error.
type AdCopy struct {
	// APIKey authenticates against the chat completions endpoint.
	APIKey string `env:"API_KEY"`
	// Endpoint is the chat completions URL.
	Endpoint string `env:"ENDPOINT" envDefault:"https://api.openai.com/v1/chat/completions"`
	// Model names the completion model requested from the service.
	Model string `env:"MODEL" envDefault:"gpt-3.5-turbo"`
}
