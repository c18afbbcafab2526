package service

import (
	"fmt"

	"warga-registry-svc/internal/models/response"
	"warga-registry-svc/internal/repository"
	"warga-registry-svc/pkg/logger"
)

// SummaryService interface defines registry statistics methods
type SummaryService interface {
	GetRegistrySummary(rt *int) (*response.RegistrySummaryResponse, error)
}

// summaryService implements SummaryService interface
type summaryService struct {
	summaryRepo repository.SummaryRepository
	logger      *logger.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(summaryRepo repository.SummaryRepository, logger *logger.Logger) SummaryService {
	return &summaryService{
		summaryRepo: summaryRepo,
		logger:      logger,
	}
}

// GetRegistrySummary gets aggregate registry statistics with an optional RT filter
func (s *summaryService) GetRegistrySummary(rt *int) (*response.RegistrySummaryResponse, error) {
	if rt != nil && *rt <= 0 {
		s.logger.WithField("rt", *rt).Error("Invalid RT parameter")
		return nil, fmt.Errorf("invalid RT parameter")
	}

	summary, err := s.summaryRepo.GetRegistrySummary(rt)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get registry summary")
		return nil, err
	}

	logFields := map[string]interface{}{
		"total_warga": summary.TotalWarga,
		"total_rt":    summary.TotalRT,
		"total_rw":    summary.TotalRW,
	}
	if rt != nil {
		logFields["rt"] = *rt
	}
	s.logger.WithFields(logFields).Info("Registry summary retrieved successfully")

	return summary, nil
}
