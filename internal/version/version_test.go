package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	v, c, b := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = v, c, b })

	Version, GitCommit, BuildTime = "1.2.3", "unknown", "unknown"
	assert.Equal(t, "1.2.3", String())

	GitCommit, BuildTime = "abc123", "2026-01-02T03:04:05Z"
	assert.Equal(t, "1.2.3 (commit abc123, built 2026-01-02T03:04:05Z)", String())
}
