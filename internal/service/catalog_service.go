package service

import (
	"context"
	"edu_catalog_backend/internal/model"
	"edu_catalog_backend/internal/repository"
	"edu_catalog_backend/internal/util"
	"edu_catalog_backend/pkg/monitoring"
	"edu_catalog_backend/pkg/tracing"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CatalogService 年级 → 学科 → 章节 → 题目 的只读查询
type CatalogService struct {
	Store        repository.CatalogStore
	QueryTimeout time.Duration
}

func NewCatalogService(store repository.CatalogStore, queryTimeout time.Duration) *CatalogService {
	return &CatalogService{Store: store, QueryTimeout: queryTimeout}
}

func (s *CatalogService) begin(ctx context.Context, listing string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.Tracer.Start(ctx, "catalog.list_"+listing, trace.WithAttributes(attrs...))

	cancel := func() {}
	if s.QueryTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.QueryTimeout)
	}

	return ctx, func(err error) {
		cancel()
		monitoring.ObserveQuery(listing, start, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

func (s *CatalogService) ListClasses(ctx context.Context) (classes []model.ClassSummary, err error) {
	ctx, end := s.begin(ctx, util.ListingClasses)
	defer func() { end(err) }()

	classes, err = s.Store.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	if classes == nil {
		classes = []model.ClassSummary{}
	}
	return classes, nil
}

func (s *CatalogService) ListSubjects(ctx context.Context, classNumber int) (subjects []model.SubjectListing, err error) {
	ctx, end := s.begin(ctx, util.ListingSubjects,
		attribute.Int("catalog.class_number", classNumber),
	)
	defer func() { end(err) }()

	subjects, err = s.Store.ListSubjects(ctx, classNumber)
	if err != nil {
		return nil, fmt.Errorf("list subjects for class %d: %w", classNumber, err)
	}
	if subjects == nil {
		subjects = []model.SubjectListing{}
	}
	return subjects, nil
}

func (s *CatalogService) ListChapters(ctx context.Context, classNumber int, subjectSlug string) (chapters []model.ChapterListing, err error) {
	ctx, end := s.begin(ctx, util.ListingChapters,
		attribute.Int("catalog.class_number", classNumber),
		attribute.String("catalog.subject_slug", subjectSlug),
	)
	defer func() { end(err) }()

	chapters, err = s.Store.ListChapters(ctx, classNumber, subjectSlug)
	if err != nil {
		return nil, fmt.Errorf("list chapters for class %d / %s: %w", classNumber, subjectSlug, err)
	}
	if chapters == nil {
		chapters = []model.ChapterListing{}
	}
	return chapters, nil
}

func (s *CatalogService) ListQuestions(ctx context.Context, classNumber int, subjectSlug string, chapterNumber int) (questions []model.QuestionListing, err error) {
	ctx, end := s.begin(ctx, util.ListingQuestions,
		attribute.Int("catalog.class_number", classNumber),
		attribute.String("catalog.subject_slug", subjectSlug),
		attribute.Int("catalog.chapter_number", chapterNumber),
	)
	defer func() { end(err) }()

	questions, err = s.Store.ListQuestions(ctx, classNumber, subjectSlug, chapterNumber)
	if err != nil {
		return nil, fmt.Errorf("list questions for class %d / %s / chapter %d: %w", classNumber, subjectSlug, chapterNumber, err)
	}
	if questions == nil {
		questions = []model.QuestionListing{}
	}
	return questions, nil
}

// CheckCounts 核对冗余计数，存在不一致时返回 util.ErrCountMismatch，不做任何修正
func (s *CatalogService) CheckCounts(ctx context.Context) ([]model.CountMismatch, error) {
	mismatches, err := s.Store.CountMismatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("check counts: %w", err)
	}
	if len(mismatches) > 0 {
		return mismatches, fmt.Errorf("%w: %d mismatches", util.ErrCountMismatch, len(mismatches))
	}
	return mismatches, nil
}

func (s *CatalogService) Ping(ctx context.Context) error {
	return s.Store.Ping(ctx)
}
