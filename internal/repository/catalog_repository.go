package repository

import (
	"context"
	"edu_catalog_backend/internal/model"
	"fmt"

	"gorm.io/gorm"
)

// CatalogStore 目录查询能力，服务层依赖该接口以便替换为测试替身
type CatalogStore interface {
	ListClasses(ctx context.Context) ([]model.ClassSummary, error)
	ListSubjects(ctx context.Context, classNumber int) ([]model.SubjectListing, error)
	ListChapters(ctx context.Context, classNumber int, subjectSlug string) ([]model.ChapterListing, error)
	ListQuestions(ctx context.Context, classNumber int, subjectSlug string, chapterNumber int) ([]model.QuestionListing, error)
	CountMismatches(ctx context.Context) ([]model.CountMismatch, error)
	Ping(ctx context.Context) error
}

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

var _ CatalogStore = (*CatalogRepository)(nil)

func (r *CatalogRepository) ListClasses(ctx context.Context) ([]model.ClassSummary, error) {
	var rows []model.ClassSummary
	err := r.DB.WithContext(ctx).
		Table("classes c").
		Select("c.id, c.class_number, c.name, c.description, c.created_at, " +
			"COUNT(DISTINCT cs.subject_id) AS subjects_count, " +
			"COALESCE(SUM(cs.questions_count), 0) AS total_questions").
		Joins("LEFT JOIN class_subjects cs ON cs.class_id = c.id").
		Group("c.id, c.class_number, c.name, c.description, c.created_at").
		Order("c.class_number asc").
		Scan(&rows).Error
	return rows, err
}

func (r *CatalogRepository) ListSubjects(ctx context.Context, classNumber int) ([]model.SubjectListing, error) {
	var rows []model.SubjectListing
	err := r.DB.WithContext(ctx).
		Table("subjects s").
		Select("s.id, s.name, s.slug, cs.chapters_count, cs.questions_count").
		Joins("INNER JOIN class_subjects cs ON cs.subject_id = s.id").
		Joins("INNER JOIN classes c ON c.id = cs.class_id").
		Where("c.class_number = ?", classNumber).
		Order("s.name asc").
		Scan(&rows).Error
	return rows, err
}

func (r *CatalogRepository) ListChapters(ctx context.Context, classNumber int, subjectSlug string) ([]model.ChapterListing, error) {
	var rows []model.ChapterListing
	err := r.DB.WithContext(ctx).
		Table("chapters ch").
		Select("ch.id, ch.chapter_number, ch.name, ch.description, ch.questions_count").
		Joins("INNER JOIN class_subjects cs ON cs.id = ch.class_subject_id").
		Joins("INNER JOIN classes c ON c.id = cs.class_id").
		Joins("INNER JOIN subjects s ON s.id = cs.subject_id").
		Where("c.class_number = ? AND s.slug = ?", classNumber, subjectSlug).
		Order("ch.chapter_number asc").
		Scan(&rows).Error
	return rows, err
}

func (r *CatalogRepository) ListQuestions(ctx context.Context, classNumber int, subjectSlug string, chapterNumber int) ([]model.QuestionListing, error) {
	var rows []model.QuestionListing
	err := r.DB.WithContext(ctx).
		Table("questions q").
		Select("q.id, q.question_number, q.question_text, q.answer_text, q.difficulty_level, ch.name AS chapter_name").
		Joins("INNER JOIN chapters ch ON ch.id = q.chapter_id").
		Joins("INNER JOIN class_subjects cs ON cs.id = ch.class_subject_id").
		Joins("INNER JOIN classes c ON c.id = cs.class_id").
		Joins("INNER JOIN subjects s ON s.id = cs.subject_id").
		Where("c.class_number = ? AND s.slug = ? AND ch.chapter_number = ?", classNumber, subjectSlug, chapterNumber).
		Order("q.question_number asc").
		Scan(&rows).Error
	return rows, err
}

// CountMismatches 对比冗余计数与实际子记录数，只读
func (r *CatalogRepository) CountMismatches(ctx context.Context) ([]model.CountMismatch, error) {
	type classSubjectRow struct {
		ID             uint
		ClassNumber    int
		Slug           string
		ChaptersCount  int64
		QuestionsCount int64
		ActualChapters int64
		ActualQuestion int64
	}
	var csRows []classSubjectRow
	err := r.DB.WithContext(ctx).
		Table("class_subjects cs").
		Select("cs.id, c.class_number, s.slug, cs.chapters_count, cs.questions_count, " +
			"(SELECT COUNT(*) FROM chapters ch WHERE ch.class_subject_id = cs.id) AS actual_chapters, " +
			"(SELECT COUNT(*) FROM questions q INNER JOIN chapters ch ON ch.id = q.chapter_id WHERE ch.class_subject_id = cs.id) AS actual_question").
		Joins("INNER JOIN classes c ON c.id = cs.class_id").
		Joins("INNER JOIN subjects s ON s.id = cs.subject_id").
		Order("c.class_number asc, s.slug asc").
		Scan(&csRows).Error
	if err != nil {
		return nil, err
	}

	type chapterRow struct {
		ID             uint
		ClassNumber    int
		Slug           string
		ChapterNumber  int
		QuestionsCount int64
		ActualQuestion int64
	}
	var chRows []chapterRow
	err = r.DB.WithContext(ctx).
		Table("chapters ch").
		Select("ch.id, c.class_number, s.slug, ch.chapter_number, ch.questions_count, " +
			"(SELECT COUNT(*) FROM questions q WHERE q.chapter_id = ch.id) AS actual_question").
		Joins("INNER JOIN class_subjects cs ON cs.id = ch.class_subject_id").
		Joins("INNER JOIN classes c ON c.id = cs.class_id").
		Joins("INNER JOIN subjects s ON s.id = cs.subject_id").
		Order("c.class_number asc, s.slug asc, ch.chapter_number asc").
		Scan(&chRows).Error
	if err != nil {
		return nil, err
	}

	mismatches := make([]model.CountMismatch, 0)
	for _, row := range csRows {
		loc := classSubjectLocation(row.ClassNumber, row.Slug)
		if row.ChaptersCount != row.ActualChapters {
			mismatches = append(mismatches, model.CountMismatch{
				Scope: "class_subject", RowID: row.ID, Field: "chapters_count",
				Stored: row.ChaptersCount, Actual: row.ActualChapters, Location: loc,
			})
		}
		if row.QuestionsCount != row.ActualQuestion {
			mismatches = append(mismatches, model.CountMismatch{
				Scope: "class_subject", RowID: row.ID, Field: "questions_count",
				Stored: row.QuestionsCount, Actual: row.ActualQuestion, Location: loc,
			})
		}
	}
	for _, row := range chRows {
		if row.QuestionsCount != row.ActualQuestion {
			mismatches = append(mismatches, model.CountMismatch{
				Scope: "chapter", RowID: row.ID, Field: "questions_count",
				Stored: row.QuestionsCount, Actual: row.ActualQuestion,
				Location: chapterLocation(row.ClassNumber, row.Slug, row.ChapterNumber),
			})
		}
	}
	return mismatches, nil
}

func (r *CatalogRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func classSubjectLocation(classNumber int, slug string) string {
	return fmt.Sprintf("class %d / %s", classNumber, slug)
}

func chapterLocation(classNumber int, slug string, chapterNumber int) string {
	return fmt.Sprintf("class %d / %s / chapter %d", classNumber, slug, chapterNumber)
}
