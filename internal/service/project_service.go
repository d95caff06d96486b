package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chipchop/chipchop/internal/domain"
	"github.com/chipchop/chipchop/internal/repository"
)

const (
	architectureFile      = "architecture.md"
	microarchitectureFile = "microarchitecture.json"
	defaultRTLPath        = "rtl/gcd_accelerator.v"
)

// ProjectService handles project and project-file operations
type ProjectService struct {
	repo   *repository.ProjectRepository
	logger *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository, logger *zap.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

// List returns all projects in directory-enumeration order
func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.List()
}

// Create creates a project directory with its metadata sidecar and scaffold
// files. On any failure the partially created directory is removed before
// the error is returned.
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error) {
	if !validProjectName(req.Name) {
		return nil, fmt.Errorf("%w: project name must be a filesystem-safe string", domain.ErrInvalidRequest)
	}

	if err := s.repo.Create(req.Name); err != nil {
		return nil, err
	}

	if err := s.scaffold(req); err != nil {
		if rmErr := s.repo.Remove(req.Name); rmErr != nil {
			s.logger.Warn("failed to clean up partial project",
				zap.String("project", req.Name),
				zap.Error(rmErr),
			)
		}
		return nil, err
	}

	return s.repo.Get(req.Name)
}

func (s *ProjectService) scaffold(req *domain.CreateProjectRequest) error {
	meta := domain.ProjectMetadata{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.WriteMetadata(req.Name, meta); err != nil {
		return err
	}

	rtl := req.RTLContent
	if rtl == "" {
		rtl = defaultRTL(req.Name)
	}
	if err := s.repo.WriteFile(req.Name, defaultRTLPath, rtl); err != nil {
		return err
	}

	if req.ArchitectureContent != "" {
		if err := s.repo.WriteFile(req.Name, architectureFile, req.ArchitectureContent); err != nil {
			return err
		}
	}
	if req.MicroarchitectureContent != "" {
		if err := s.repo.WriteFile(req.Name, microarchitectureFile, req.MicroarchitectureContent); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile returns the content of a project file, empty if the file does
// not exist yet
func (s *ProjectService) ReadFile(ctx context.Context, project, filename string) (string, error) {
	return s.repo.ReadFile(project, filename)
}

// WriteFile creates or overwrites a project file with exactly the given
// content
func (s *ProjectService) WriteFile(ctx context.Context, project, filename, content string) error {
	return s.repo.WriteFile(project, filename, content)
}

// validProjectName accepts a single path element that is safe to use as a
// directory name.
func validProjectName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return name == filepath.Clean(name)
}

func defaultRTL(name string) string {
	return fmt.Sprintf(`// Project: %s
// GCD accelerator top module

module gcd_accelerator (
    input clk,
    input rst
);

endmodule
`, name)
}
