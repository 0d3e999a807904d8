package repository

import (
	"context"

	"punchclock-backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id uint) (*model.Report, error)
	GetAll(ctx context.Context, reportType string) ([]model.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uint) (*model.Report, error) {
	var report model.Report
	err := r.db.WithContext(ctx).First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetAll lists snapshots newest first, optionally narrowed to one type.
func (r *reportRepository) GetAll(ctx context.Context, reportType string) ([]model.Report, error) {
	var reports []model.Report
	query := r.db.WithContext(ctx).Order("generated_at desc, id desc")
	if reportType != "" {
		query = query.Where("report_type = ?", reportType)
	}
	err := query.Find(&reports).Error
	return reports, err
}
