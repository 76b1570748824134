package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKVRepository(t *testing.T) {
	db := &Connection{}
	repo := NewKVRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewAccountRepository(t *testing.T) {
	db := &Connection{}
	repo := NewAccountRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
