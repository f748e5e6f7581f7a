package catalog

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ConfigError = errors.New("role catalog could not be loaded")

// Role is one applyable role as configured in the catalog document.
type Role struct {
	Id          string   `yaml:"-"`
	DisplayName string   `yaml:"displayName"`
	Questions   []string `yaml:"questions"`
	Permission  string   `yaml:"permission"`
	Enabled     *bool    `yaml:"enabled"`
}

// IsEnabled treats a missing enabled key as true.
func (r *Role) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

type catalogFile struct {
	Roles map[string]Role `yaml:"roles"`
}

// Catalog is the read-only role configuration. Reload swaps the whole role
// map atomically; drafts snapshot their question list at start time, so a
// reload never affects an application in flight.
type Catalog struct {
	logger *zap.SugaredLogger
	path   string

	roles atomic.Pointer[map[string]Role]
}

func Load(logger *zap.SugaredLogger, path string) (*Catalog, error) {
	c := &Catalog{
		logger: logger,
		path:   path,
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the catalog document. On failure the previous catalog
// stays in place.
func (c *Catalog) Reload() error {
	bytes, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: %s", ConfigError, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return fmt.Errorf("%w: %s", ConfigError, err)
	}
	if len(file.Roles) == 0 {
		return fmt.Errorf("%w: no roles in %s", ConfigError, c.path)
	}

	roles := make(map[string]Role, len(file.Roles))
	for id, role := range file.Roles {
		if role.Permission == "" {
			return fmt.Errorf("%w: role %s has no permission", ConfigError, id)
		}
		role.Id = id
		roles[id] = role
	}

	c.roles.Store(&roles)
	c.logger.Infow("loaded role catalog", "path", c.path, "roles", len(roles))
	return nil
}

// IsValid reports whether the role exists and is enabled.
func (c *Catalog) IsValid(roleId string) bool {
	role, ok := c.get(roleId)
	return ok && role.IsEnabled()
}

// Questions returns a copy of the role's ordered question list.
func (c *Catalog) Questions(roleId string) ([]string, bool) {
	role, ok := c.get(roleId)
	if !ok {
		return nil, false
	}
	questions := make([]string, len(role.Questions))
	copy(questions, role.Questions)
	return questions, true
}

// Permission returns the permission node granted when the role is accepted.
func (c *Catalog) Permission(roleId string) (string, bool) {
	role, ok := c.get(roleId)
	if !ok {
		return "", false
	}
	return role.Permission, true
}

// Roles returns every configured role.
func (c *Catalog) Roles() []Role {
	current := *c.roles.Load()
	roles := make([]Role, 0, len(current))
	for _, role := range current {
		roles = append(roles, role)
	}
	return roles
}

func (c *Catalog) get(roleId string) (Role, bool) {
	role, ok := (*c.roles.Load())[roleId]
	return role, ok
}
