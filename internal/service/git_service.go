package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.uber.org/zap"

	"github.com/chipchop/chipchop/internal/domain"
	"github.com/chipchop/chipchop/internal/repository"
)

// GitService wraps version control operations on project directories
type GitService struct {
	repo        *repository.ProjectRepository
	authorName  string
	authorEmail string
	logger      *zap.Logger
}

// NewGitService creates a new git service. The author identity is used to
// sign commits.
func NewGitService(repo *repository.ProjectRepository, authorName, authorEmail string, logger *zap.Logger) *GitService {
	return &GitService{
		repo:        repo,
		authorName:  authorName,
		authorEmail: authorEmail,
		logger:      logger,
	}
}

// Status reports the version-control state of a project. A directory that
// is not a usable repository yet (never initialized, no commits, corrupt)
// yields a degenerate clean status rather than an error.
func (s *GitService) Status(ctx context.Context, project string) (*domain.GitStatus, error) {
	if !s.repo.Exists(project) {
		return nil, fmt.Errorf("%w: project %s", domain.ErrNotFound, project)
	}

	none := &domain.GitStatus{Branch: "none", ChangedFiles: []string{}, IsClean: true}

	gr, err := git.PlainOpen(s.repo.Path(project))
	if err != nil {
		return none, nil
	}
	head, err := gr.Head()
	if err != nil {
		// Unborn HEAD before the first commit lands here too.
		return none, nil
	}
	wt, err := gr.Worktree()
	if err != nil {
		return none, nil
	}
	status, err := wt.Status()
	if err != nil {
		return none, nil
	}

	changed := make([]string, 0, len(status))
	for file, fs := range status {
		if fs.Worktree != git.Unmodified || fs.Staging != git.Unmodified {
			changed = append(changed, file)
		}
	}
	sort.Strings(changed)

	return &domain.GitStatus{
		Branch:       head.Name().Short(),
		ChangedFiles: changed,
		IsClean:      status.IsClean(),
	}, nil
}

// Init initializes version control in the project directory
func (s *GitService) Init(ctx context.Context, project string) error {
	if !s.repo.Exists(project) {
		return fmt.Errorf("%w: project %s", domain.ErrNotFound, project)
	}
	if _, err := git.PlainInit(s.repo.Path(project), false); err != nil {
		return fmt.Errorf("git init failed: %w", err)
	}
	s.logger.Info("repository initialized", zap.String("project", project))
	return nil
}

// Commit stages all changes (including new and deleted files) and commits
// them with the given message. Underlying tool failures, including an empty
// changeset, are surfaced as-is.
func (s *GitService) Commit(ctx context.Context, project, message string) error {
	gr, err := git.PlainOpen(s.repo.Path(project))
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	wt, err := gr.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}
	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  s.authorName,
			Email: s.authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}
