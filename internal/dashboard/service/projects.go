package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

var (
	nonSlug       = regexp.MustCompile(`[^a-z0-9]+`)
	reservedCodes = map[string]bool{"settings": true, "admin": true, "api": true, "auth": true, "login": true}
)

// Slugify turns a project name into its base URL code. Collision suffixes are added by
// the store.
func Slugify(name string) string {
	code := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if code == "" {
		code = "project"
	}
	if reservedCodes[code] {
		code += "-project"
	}
	return code
}

func (s *Service) Projects(ctx context.Context) ([]model.Project, error) {
	if err := s.wait(ctx, latencyProjects); err != nil {
		return nil, err
	}
	return s.state.Projects(), nil
}

func (s *Service) ProjectByCode(ctx context.Context, code string) (model.Project, error) {
	if err := ctx.Err(); err != nil {
		return model.Project{}, err
	}
	return s.state.ProjectByCode(code)
}

// AddProject creates a project and returns it with its generated code.
func (s *Service) AddProject(ctx context.Context, name, desc string) (model.Project, error) {
	if err := s.wait(ctx, latencyAddProject); err != nil {
		return model.Project{}, err
	}
	if strings.TrimSpace(name) == "" {
		return model.Project{}, fmt.Errorf("project name is empty: %w", model.ErrInvalidArgument)
	}
	return s.state.AddProject(Slugify(name), name, desc), nil
}
