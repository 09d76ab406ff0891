package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("64f1c0ffee0000000000aaaa", "ana@correo.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000aaaa", claims.UserID)
	assert.Equal(t, "ana@correo.com", claims.Email)
	assert.NotEmpty(t, claims.ID, "el jti se usa para el blacklist de logout")
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseJWTInvalido(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("no.es.un-token")
	assert.Error(t, err)
}
