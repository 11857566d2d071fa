package docerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := &ParseError{
		Format:  "yaml",
		Path:    "config.yaml",
		Line:    12,
		Message: "bad indentation",
		Cause:   cause,
	}

	assert.Equal(t, "parse error (yaml) in config.yaml at line 12: bad indentation: unexpected token", err.Error())
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrPattern))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestParseErrorMinimal(t *testing.T) {
	err := &ParseError{}
	assert.Equal(t, "parse error", err.Error())
}

func TestPatternError(t *testing.T) {
	cause := errors.New("missing closing ]")
	err := &PatternError{Pattern: "[abc", Cause: cause}

	assert.Equal(t, `invalid pattern "[abc": missing closing ]`, err.Error())
	assert.True(t, errors.Is(err, ErrPattern))

	var patErr *PatternError
	wrapped := fmt.Errorf("search failed: %w", err)
	require.True(t, errors.As(wrapped, &patErr))
	assert.Equal(t, "[abc", patErr.Pattern)
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{
		ResourceType: "document_size",
		Limit:        1024,
		Actual:       4096,
	}

	assert.Equal(t, "resource limit exceeded: document_size (limit: 1024, actual: 4096)", err.Error())
	assert.True(t, errors.Is(err, ErrResourceLimit))
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Option:  "format",
		Value:   "csv",
		Message: "unsupported format",
	}

	assert.Equal(t, "configuration error for format (value: csv): unsupported format", err.Error())
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrParse, ErrPattern, ErrResourceLimit, ErrConfig}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
