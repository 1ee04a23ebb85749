package mock

import (
	"context"

	"github.com/fwojciec/medcorpus"
)

var _ medcorpus.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of medcorpus.RecordService.
type RecordService struct {
	CreateRecordFn func(ctx context.Context, rec *medcorpus.CrawlRecord) error
	FindRecordsFn  func(ctx context.Context, filter medcorpus.RecordFilter) ([]*medcorpus.CrawlRecord, error)
	HasSucceededFn func(ctx context.Context, name string) (bool, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *medcorpus.CrawlRecord) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecords(ctx context.Context, filter medcorpus.RecordFilter) ([]*medcorpus.CrawlRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) HasSucceeded(ctx context.Context, name string) (bool, error) {
	return s.HasSucceededFn(ctx, name)
}
