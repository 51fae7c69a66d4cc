package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockTypeCompatibility(t *testing.T) {
	assert.True(t, LockRead.CompatibleWith(LockRead))

	assert.False(t, LockRead.CompatibleWith(LockWrite))
	assert.False(t, LockWrite.CompatibleWith(LockRead))
	assert.False(t, LockWrite.CompatibleWith(LockWrite))
}

func TestLockTypeIsValid(t *testing.T) {
	assert.True(t, LockRead.IsValid())
	assert.True(t, LockWrite.IsValid())
	assert.False(t, LockType("EXCLUSIVE").IsValid())
	assert.False(t, LockType("read").IsValid())
}
