package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) Get(ctx context.Context, date string, slot models.DrawSlot) (*models.Report, error) {
	args := m.Called(ctx, date, slot)
	report, _ := args.Get(0).(*models.Report)
	return report, args.Error(1)
}

func (m *mockReportRepository) Save(ctx context.Context, report *models.Report) error {
	return m.Called(ctx, report).Error(0)
}

func (m *mockReportRepository) List(ctx context.Context, date string) ([]*models.Report, error) {
	args := m.Called(ctx, date)
	reports, _ := args.Get(0).([]*models.Report)
	return reports, args.Error(1)
}

func (m *mockReportRepository) ListDates(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	dates, _ := args.Get(0).([]string)
	return dates, args.Error(1)
}

func (m *mockReportRepository) Latest(ctx context.Context) (*models.Report, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(*models.Report)
	return report, args.Error(1)
}

func (m *mockReportRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockCropRegionRepository struct {
	mock.Mock
}

func (m *mockCropRegionRepository) FindAll(ctx context.Context) ([]models.CropRegion, error) {
	args := m.Called(ctx)
	regions, _ := args.Get(0).([]models.CropRegion)
	return regions, args.Error(1)
}

func (m *mockCropRegionRepository) Upsert(ctx context.Context, region models.CropRegion) error {
	return m.Called(ctx, region).Error(0)
}
