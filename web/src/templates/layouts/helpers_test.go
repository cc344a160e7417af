package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Kursus - Speak Up Partners", CalculateTitle("Kursus"))
	assert.Equal(t, "Speak Up Partners", CalculateTitle(""))
}
