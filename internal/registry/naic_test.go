package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNAICCode(t *testing.T) {
	assert.Equal(t, "38920", NAICCode("Kinsale Insurance Company"))
	assert.Equal(t, "16535", NAICCode("Zurich American Insurance Company"))
	assert.Equal(t, "", NAICCode("Totally Unknown Mutual"))
	assert.Equal(t, "", NAICCode(""))
}
