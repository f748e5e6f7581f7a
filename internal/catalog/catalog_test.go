package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testCatalog = `
roles:
  mod:
    displayName: Moderator
    permission: group.mod
    questions:
      - "Why do you want to be a moderator?"
      - "How many hours a week can you commit?"
  builder:
    permission: group.builder
    questions:
      - "Link a build you are proud of."
  retired:
    permission: group.retired
    enabled: false
`

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roles.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	catalog, err := Load(zap.NewNop().Sugar(), writeCatalog(t, testCatalog))
	assert.NoError(t, err)

	assert.True(t, catalog.IsValid("mod"))
	assert.True(t, catalog.IsValid("builder"))
	assert.False(t, catalog.IsValid("retired"), "disabled roles are not valid")
	assert.False(t, catalog.IsValid("admin"))

	questions, ok := catalog.Questions("mod")
	assert.True(t, ok)
	assert.Equal(t, []string{
		"Why do you want to be a moderator?",
		"How many hours a week can you commit?",
	}, questions)

	permission, ok := catalog.Permission("builder")
	assert.True(t, ok)
	assert.Equal(t, "group.builder", permission)

	_, ok = catalog.Permission("admin")
	assert.False(t, ok)

	assert.Len(t, catalog.Roles(), 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(zap.NewNop().Sugar(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ConfigError)
}

func TestLoad_MissingPermission(t *testing.T) {
	_, err := Load(zap.NewNop().Sugar(), writeCatalog(t, "roles:\n  mod:\n    questions: [q]\n"))
	assert.ErrorIs(t, err, ConfigError)
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(zap.NewNop().Sugar(), writeCatalog(t, "roles: {}\n"))
	assert.ErrorIs(t, err, ConfigError)
}

func TestReload(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	catalog, err := Load(zap.NewNop().Sugar(), path)
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(path, []byte(`
roles:
  admin:
    permission: group.admin
    questions: ["Why?"]
`), 0o644))

	assert.NoError(t, catalog.Reload())
	assert.True(t, catalog.IsValid("admin"))
	assert.False(t, catalog.IsValid("mod"))
}

func TestReload_KeepsOldCatalogOnFailure(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	catalog, err := Load(zap.NewNop().Sugar(), path)
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(path, []byte("roles: {"), 0o644))
	assert.ErrorIs(t, catalog.Reload(), ConfigError)

	// previous catalog still answers queries
	assert.True(t, catalog.IsValid("mod"))
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	catalog, err := Load(zap.NewNop().Sugar(), writeCatalog(t, testCatalog))
	assert.NoError(t, err)

	questions, _ := catalog.Questions("builder")
	questions[0] = "mutated"

	fresh, _ := catalog.Questions("builder")
	assert.Equal(t, "Link a build you are proud of.", fresh[0])
}
