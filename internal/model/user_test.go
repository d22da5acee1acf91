package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	u := User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@x.co",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleFarmer,
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.NotContains(t, decoded, "password_hash")
	assert.NotContains(t, string(raw), "$2a$10$")
	assert.Equal(t, "ana@x.co", decoded["email"])
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleFarmer))
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleResearcher))

	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole("Farmer"))
}
