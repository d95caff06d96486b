package domain

// GitStatus describes the version-control state of a project directory
type GitStatus struct {
	Branch       string   `json:"branch"`
	ChangedFiles []string `json:"changed_files"`
	IsClean      bool     `json:"is_clean"`
}

// CommitRequest is the request to commit all pending changes
type CommitRequest struct {
	Message string `json:"message"`
}
