// Package doctree provides a format-agnostic document tree model with
// uniform path-based operations, served by independent JSON, YAML, TOML,
// and XML front-ends.
//
// The engine lives in the tree package; the format front-ends live in the
// codec package. This root package only carries build identity.
package doctree

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}
