package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "table-1", SanitizeString("  table-1\n", 0))
	assert.Equal(t, "abc", SanitizeString("  abcdef ", 3))
	assert.Equal(t, "ab", SanitizeString("a\x00b", 10))
	assert.Equal(t, "Tér", SanitizeString("Térrasse", 3))
	assert.Equal(t, "", SanitizeString(" \t ", 5))
}
