package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chipchop/chipchop/internal/domain"
)

// CloudService simulates bitstream deployment to a cloud FPGA provider.
// No provider API is contacted.
type CloudService struct {
	logger *zap.Logger
}

// NewCloudService creates a new cloud service
func NewCloudService(logger *zap.Logger) *CloudService {
	return &CloudService{logger: logger}
}

// Deploy validates the provider and returns a mock deployment record after
// a short simulated provisioning delay
func (s *CloudService) Deploy(ctx context.Context, req *domain.DeployRequest) (*domain.DeployResponse, error) {
	select {
	case <-time.After(2 * time.Second):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if req.Provider != "AWS" && req.Provider != "Azure" {
		return nil, fmt.Errorf("%w: invalid provider", domain.ErrInvalidRequest)
	}

	deploymentID := fmt.Sprintf("%s-deploy-%s-%s",
		strings.ToLower(req.Provider), req.ProjectID, uuid.New().String()[:8])

	s.logger.Info("mock deployment completed",
		zap.String("provider", req.Provider),
		zap.String("deployment_id", deploymentID),
	)

	return &domain.DeployResponse{
		Status:       "success",
		DeploymentID: deploymentID,
		Message:      fmt.Sprintf("Successfully deployed bitstream to %s FPGA instance.", req.Provider),
	}, nil
}
