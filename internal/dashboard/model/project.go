package model

// ProjectStatus is the fixture-only health of a project.
type ProjectStatus string

const (
	ProjectStatusOK      ProjectStatus = "ok"
	ProjectStatusError   ProjectStatus = "error"
	ProjectStatusWarning ProjectStatus = "warning"
)

// Project groups monitors. Code is the URL slug and is unique across projects.
type Project struct {
	ID          string        `json:"id" yaml:"id"`
	Code        string        `json:"code" yaml:"code"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description"`
	Status      ProjectStatus `json:"status" yaml:"status"`
}
