package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "5551234", Digits("555-1234"))
	assert.Equal(t, "5551234", Digits(" (555) 12 34 "))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "0123456789", Digits("0123456789"))
}

func TestCombine(t *testing.T) {
	assert.Equal(t, "+905551234", Combine("+90", "555 12 34"))
	assert.Equal(t, "+1", Combine("+1", ""))
	// recombining after either part changes is stable
	assert.Equal(t, Combine("+44", "7700x900123"), Combine("+44", "7700 900123"))
}

func TestSearch(t *testing.T) {
	assert.Len(t, Search(""), len(Countries))

	byName := Search("turk")
	assert.Len(t, byName, 1)
	assert.Equal(t, "TR", byName[0].Code)

	byDial := Search("+44")
	assert.Len(t, byDial, 1)
	assert.Equal(t, "GB", byDial[0].Code)

	assert.Empty(t, Search("zzz"))
}

func TestFlagEmoji(t *testing.T) {
	assert.Equal(t, "\U0001F1F9\U0001F1F7", FlagEmoji("tr"))
	assert.Equal(t, "\U0001F1FA\U0001F1F8", FlagEmoji("US"))
}
