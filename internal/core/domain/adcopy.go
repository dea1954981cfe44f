package domain

// CopySource records which path produced a piece of ad copy, so callers
// and tests can assert whether the external service or a local template
// was used without inspecting the text itself.
type CopySource string

const (
	// CopySourceService marks copy returned by the external
	// text-generation service.
	CopySourceService CopySource = "service"
	// CopySourceFallback marks copy produced by a local template, either
	// because no credential is configured or because the external call
	// failed.
	CopySourceFallback CopySource = "fallback"
)

// AdCopy is the textual advertisement content for a campaign together
// with its provenance.
type AdCopy struct {
	Text   string
	Source CopySource
}
