package sqllex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReservedWord(t *testing.T) {
	for word := range ReservedWords {
		assert.True(t, IsReservedWord(word), "expected %q to be reserved", word)
	}

	assert.False(t, IsReservedWord("user_id"))
	assert.False(t, IsReservedWord("created_at"))
	assert.False(t, IsReservedWord(""))
}

func TestIsReservedWordIsCaseSensitive(t *testing.T) {
	assert.True(t, IsReservedWord("ORDER"))
	assert.False(t, IsReservedWord("order"))
	assert.False(t, IsReservedWord("Order"))
	assert.False(t, IsReservedWord("date"))
	assert.False(t, IsReservedWord("User"))
}
