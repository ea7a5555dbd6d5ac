package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitMigration_CascadingForeignKeys(t *testing.T) {
	// Arrange
	data, err := migrations.ReadFile("migrations/000001_init.up.sql")
	assert.NoError(t, err)
	schema := string(data)

	// Assert: удаление владельца уносит его доски, удаление доски уносит
	// списки, удаление списка уносит карточки
	assert.Contains(t, schema, "owner_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE")
	assert.Contains(t, schema, "board_id BIGINT NOT NULL REFERENCES boards (id) ON DELETE CASCADE")
	assert.Contains(t, schema, "list_id BIGINT NOT NULL REFERENCES lists (id) ON DELETE CASCADE")
}

func TestInitMigration_HasDownFile(t *testing.T) {
	// Arrange
	data, err := migrations.ReadFile("migrations/000001_init.down.sql")

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, string(data), "DROP TABLE")
}
