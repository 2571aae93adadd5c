package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailFormatValid(t *testing.T) {
	valid := []string{
		"paula@example.com",
		"p.souza+agenda@salon.com.br",
		"  com.espacos@example.com  ",
	}
	for _, email := range valid {
		assert.True(t, IsEmailFormatValid(email), email)
	}

	invalid := []string{
		"",
		"   ",
		"sem-arroba",
		"dois@@example.com",
		"@example.com",
		"paula@",
		"paula@semdominio",
		"com espaco@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsEmailFormatValid(email), email)
	}
}
