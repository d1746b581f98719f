package reports

import "github.com/jbglogistica/logistica-api/internal/domain/repository"

// ReportUseCase métricas agregadas para el dashboard (CAN_VIEW_REPORTS).
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Summary devuelve el resumen agregado de operación.
func (uc *ReportUseCase) Summary() (*repository.ReportSummary, error) {
	return uc.repo.Summary()
}
