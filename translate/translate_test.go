package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales()
	assert.Equal("line 3 bad", From("line %d %v", 3, "bad"))

	SetLocales("fr-FR", "en-US")
	assert.Equal("unknown identifier", From("unknown identifier"))
}
