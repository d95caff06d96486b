package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chipchop/chipchop/internal/domain"
)

// MetadataFile is the sidecar file holding project metadata
const MetadataFile = "metadata.json"

// ProjectRepository persists projects as directories under a single root
type ProjectRepository struct {
	root string
}

// NewProjectRepository creates a new project repository rooted at dir
func NewProjectRepository(root string) (*ProjectRepository, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create projects root: %w", err)
	}
	return &ProjectRepository{root: root}, nil
}

// Path returns the directory of the named project
func (r *ProjectRepository) Path(name string) string {
	return filepath.Join(r.root, name)
}

// Exists reports whether the named project directory is present
func (r *ProjectRepository) Exists(name string) bool {
	info, err := os.Stat(r.Path(name))
	return err == nil && info.IsDir()
}

// List enumerates all project directories under the root
func (r *ProjectRepository) List() ([]*domain.Project, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects root: %w", err)
	}

	projects := make([]*domain.Project, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		project, err := r.Get(entry.Name())
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// Get assembles the record for an existing project
func (r *ProjectRepository) Get(name string) (*domain.Project, error) {
	path := r.Path(name)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, domain.ErrNotFound
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	project := &domain.Project{
		ID:           name,
		Name:         name,
		Path:         abs,
		CreatedAt:    info.ModTime(),
		LastModified: info.ModTime(),
	}

	// Missing or unparsable metadata reads as an empty description.
	if meta, ok := r.readMetadata(name); ok {
		project.Description = meta.Description
		if !meta.CreatedAt.IsZero() {
			project.CreatedAt = meta.CreatedAt
		}
	}
	return project, nil
}

// Create makes the project directory, failing if it already exists
func (r *ProjectRepository) Create(name string) error {
	if r.Exists(name) {
		return domain.ErrAlreadyExists
	}
	if err := os.MkdirAll(r.Path(name), 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	return nil
}

// Remove deletes the project directory and everything under it
func (r *ProjectRepository) Remove(name string) error {
	return os.RemoveAll(r.Path(name))
}

// WriteMetadata writes the metadata sidecar file
func (r *ProjectRepository) WriteMetadata(name string, meta domain.ProjectMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	path := filepath.Join(r.Path(name), MetadataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}

func (r *ProjectRepository) readMetadata(name string) (domain.ProjectMetadata, bool) {
	var meta domain.ProjectMetadata
	data, err := os.ReadFile(filepath.Join(r.Path(name), MetadataFile))
	if err != nil {
		return meta, false
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, false
	}
	return meta, true
}

// ReadFile reads a file inside a project. A missing file reads as empty
// content; a missing project is an error.
func (r *ProjectRepository) ReadFile(project, filename string) (string, error) {
	if !r.Exists(project) {
		return "", domain.ErrNotFound
	}
	path, err := r.resolve(project, filename)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return string(data), nil
}

// WriteFile creates or overwrites a file inside a project
func (r *ProjectRepository) WriteFile(project, filename, content string) error {
	if !r.Exists(project) {
		return domain.ErrNotFound
	}
	path, err := r.resolve(project, filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// resolve joins a relative filename onto the project directory, rejecting
// paths that would escape it.
func (r *ProjectRepository) resolve(project, filename string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(filename))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", domain.ErrInvalidRequest
	}
	return filepath.Join(r.Path(project), clean), nil
}
