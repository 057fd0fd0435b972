package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	css, err := fs.ReadFile(Static(), "site.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), ".accordion-panel")

	_, err = fs.Stat(Static(), "static/site.css")
	assert.Error(t, err)
}
