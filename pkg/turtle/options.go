package turtle

// DefaultMaxErrors bounds error recovery before the parser gives up.
const DefaultMaxErrors = 100

// Options configures one parse. Every field toggles independently.
type Options struct {
	// StrictMode enforces IRI syntax validation and literal normalization
	// while parsing. Off, those checks are skipped for speed.
	StrictMode bool `yaml:"strict_mode"`

	// ErrorRecovery keeps parsing after recoverable errors, collecting
	// them up to MaxErrors. Off, the first error ends the parse.
	ErrorRecovery bool `yaml:"error_recovery"`

	// TrackComments attaches Comment nodes to the document.
	TrackComments bool `yaml:"track_comments"`

	// ValidateIRIs checks IRI syntax even outside strict mode.
	ValidateIRIs bool `yaml:"validate_iris"`

	// NormalizeLiterals canonicalizes literal forms (language tags to
	// lower case, numeric forms trimmed) even outside strict mode.
	NormalizeLiterals bool `yaml:"normalize_literals"`

	// MaxErrors caps collected diagnostics; zero or negative is unbounded.
	MaxErrors int `yaml:"max_errors"`

	// BaseIRI seeds the base IRI before any @base directive.
	BaseIRI string `yaml:"base_iri"`

	// AllocPerNode switches the AST context from arena allocation to
	// individual node allocation.
	AllocPerNode bool `yaml:"alloc_per_node"`
}

// DefaultOptions returns the options used when none are given: recovery
// on, strict mode off, the default error cap.
func DefaultOptions() Options {
	return Options{
		ErrorRecovery: true,
		MaxErrors:     DefaultMaxErrors,
	}
}
