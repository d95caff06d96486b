package domain

import "time"

// Project represents a hardware design project backed by a directory on disk
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Path         string    `json:"path"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// ProjectMetadata is the sidecar file stored at <project>/metadata.json
type ProjectMetadata struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest is the request to create a project with scaffold content
type CreateProjectRequest struct {
	Name                     string `json:"name" binding:"required"`
	Description              string `json:"description"`
	ArchitectureContent      string `json:"architecture_content"`
	MicroarchitectureContent string `json:"microarchitecture_content"`
	RTLContent               string `json:"rtl_content"`
}

// FileContent is the response for a project file read
type FileContent struct {
	Content string `json:"content"`
}

// WriteFileRequest is the request to create or overwrite a project file
type WriteFileRequest struct {
	Content string `json:"content"`
}
