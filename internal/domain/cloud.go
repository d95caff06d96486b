package domain

// DeployRequest is the request to deploy a bitstream to a cloud FPGA provider
type DeployRequest struct {
	Provider    string            `json:"provider"`
	Credentials map[string]string `json:"credentials"`
	ProjectID   string            `json:"project_id"`
}

// DeployResponse reports the outcome of a deployment
type DeployResponse struct {
	Status       string `json:"status"`
	DeploymentID string `json:"deployment_id"`
	Message      string `json:"message"`
}
