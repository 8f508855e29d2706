// Package service implements the duplicates service
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/assetrule"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/core/dupdetect"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/duplicates/domain"
)

// Service implements domain.ScannerPort
type Service struct {
	Det *dupdetect.Detector
}

// New constructs a duplicates service
func New(rp *assetrule.Pack) *Service {
	return &Service{Det: dupdetect.New(rp)}
}

// Scan runs duplicate detection and shapes the report for transport
func (s *Service) Scan(ctx context.Context, in domain.ScanInput) (domain.ScanOutput, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScanOutput{}, err
	}

	rep := s.Det.Scan(in.Events)
	out := domain.ScanOutput{
		ReportID:             uuid.NewString(),
		TotalEvents:          rep.TotalEvents,
		TotalDuplicates:      rep.TotalDuplicates,
		BySeverity:           rep.BySeverity,
		MissingVoyageNumbers: rep.MissingVoyageNumbers,
	}
	out.Groups = make([]domain.GroupRow, 0, len(rep.Groups))
	for _, g := range rep.Groups {
		out.Groups = append(out.Groups, domain.GroupRow{
			Signature:        g.Signature,
			Size:             g.Size(),
			Severity:         g.Severity.String(),
			Explanation:      g.Explanation,
			HasVoyageNumbers: g.HasVoyageNumbers,
			Events:           g.Events,
		})
	}
	return out, nil
}
