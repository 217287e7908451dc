package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

// View is a dashboard page.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewAlerts    View = "alerts"
	ViewDetail    View = "detail"
	ViewSettings  View = "settings"
)

// Route is a resolved dashboard path. Redirect is set when the path named an unknown
// project and was rewritten to the first project.
type Route struct {
	View        View   `json:"view"`
	ProjectID   string `json:"projectId,omitempty"`
	ProjectCode string `json:"projectCode,omitempty"`
	MonitorID   string `json:"monitorId,omitempty"`
	Redirect    string `json:"redirect,omitempty"`
}

// ResolveRoute maps a dashboard path to its view and makes the route's project active.
func (s *Service) ResolveRoute(ctx context.Context, path string) (Route, error) {
	if err := ctx.Err(); err != nil {
		return Route{}, err
	}
	segs := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })

	if len(segs) == 1 && segs[0] == string(ViewSettings) {
		return Route{View: ViewSettings}, nil
	}

	var (
		project model.Project
		rest    []string
		rt      Route
	)
	if len(segs) == 0 {
		active := s.state.ActiveProject()
		p, err := s.state.ProjectByID(active.ID)
		if err != nil {
			p, err = s.firstProject()
			if err != nil {
				return Route{}, err
			}
		}
		project = p
	} else {
		rest = segs[1:]
		p, err := s.state.ProjectByCode(segs[0])
		switch {
		case err == nil:
			project = p
		case errors.Is(err, model.ErrNotFound):
			project, err = s.firstProject()
			if err != nil {
				return Route{}, err
			}
			rt.Redirect = "/" + strings.Join(append([]string{project.Code}, rest...), "/")
		default:
			return Route{}, err
		}
	}

	switch {
	case len(rest) == 0:
		rt.View = ViewDashboard
	case len(rest) == 1 && rest[0] == "alerts":
		rt.View = ViewAlerts
	case len(rest) == 2 && rest[0] == "detail":
		rt.View = ViewDetail
		rt.MonitorID = rest[1]
	default:
		return Route{}, fmt.Errorf("path %q: %w", path, model.ErrNotFound)
	}
	rt.ProjectID, rt.ProjectCode = project.ID, project.Code
	s.state.SetActiveProject(project)
	return rt, nil
}

func (s *Service) firstProject() (model.Project, error) {
	projects := s.state.Projects()
	if len(projects) == 0 {
		return model.Project{}, fmt.Errorf("no projects: %w", model.ErrNotFound)
	}
	return projects[0], nil
}
