package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailableEngine(t *testing.T) {
	e := &ExecEngine{}
	assert.False(t, e.Available())
	assert.ErrorIs(t, e.Pronounce("hello"), ErrUnavailable)
}

func TestPronounceEmptyText(t *testing.T) {
	e := &ExecEngine{binary: "/bin/true"}
	assert.True(t, e.Available())
	assert.Error(t, e.Pronounce(""))
}

func TestPronounceFireAndForget(t *testing.T) {
	e := &ExecEngine{binary: "/bin/true"}
	assert.NoError(t, e.Pronounce("hello"))
}
