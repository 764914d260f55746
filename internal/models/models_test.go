package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Name(t *testing.T) {
	assert.Equal(t, "Ana", User{Username: "ana", DisplayName: "Ana"}.Name())
	assert.Equal(t, "ana", User{Username: "ana"}.Name())
}
