package database

import (
	"edu_catalog_backend/internal/model"
	_ "embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed/catalog.yaml
var defaultCatalog []byte

type SeedCatalog struct {
	Subjects []SeedSubject `yaml:"subjects"`
	Classes  []SeedClass   `yaml:"classes"`
}

type SeedSubject struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
}

type SeedClass struct {
	Number      int                `yaml:"number"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Subjects    []SeedClassSubject `yaml:"subjects"`
}

type SeedClassSubject struct {
	Slug     string        `yaml:"slug"`
	Chapters []SeedChapter `yaml:"chapters"`
}

type SeedChapter struct {
	Number      int            `yaml:"number"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Questions   []SeedQuestion `yaml:"questions"`
}

type SeedQuestion struct {
	Number     int    `yaml:"number"`
	Difficulty string `yaml:"difficulty"`
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
}

// ParseSeedCatalog 解析并校验种子数据
func ParseSeedCatalog(data []byte) (*SeedCatalog, error) {
	var catalog SeedCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	slugs := make(map[string]bool, len(catalog.Subjects))
	for _, s := range catalog.Subjects {
		if s.Slug == "" || s.Name == "" {
			return nil, fmt.Errorf("subject requires slug and name")
		}
		if slugs[s.Slug] {
			return nil, fmt.Errorf("duplicate subject slug %q", s.Slug)
		}
		slugs[s.Slug] = true
	}

	classNumbers := make(map[int]bool, len(catalog.Classes))
	for _, c := range catalog.Classes {
		if c.Number <= 0 {
			return nil, fmt.Errorf("class number must be positive, got %d", c.Number)
		}
		if classNumbers[c.Number] {
			return nil, fmt.Errorf("duplicate class number %d", c.Number)
		}
		classNumbers[c.Number] = true

		for _, cs := range c.Subjects {
			if !slugs[cs.Slug] {
				return nil, fmt.Errorf("class %d references unknown subject %q", c.Number, cs.Slug)
			}
			chapters := make(map[int]bool, len(cs.Chapters))
			for _, ch := range cs.Chapters {
				if chapters[ch.Number] {
					return nil, fmt.Errorf("class %d / %s: duplicate chapter %d", c.Number, cs.Slug, ch.Number)
				}
				chapters[ch.Number] = true

				questions := make(map[int]bool, len(ch.Questions))
				for _, q := range ch.Questions {
					if questions[q.Number] {
						return nil, fmt.Errorf("class %d / %s / chapter %d: duplicate question %d", c.Number, cs.Slug, ch.Number, q.Number)
					}
					questions[q.Number] = true
				}
			}
		}
	}

	return &catalog, nil
}

// SeedDefaultCatalog 写入内置示例目录
func SeedDefaultCatalog(db *gorm.DB) (bool, error) {
	catalog, err := ParseSeedCatalog(defaultCatalog)
	if err != nil {
		return false, err
	}
	return Seed(db, catalog)
}

// Seed 仅在 classes 表为空时写入，冗余计数由实际子记录计算
func Seed(db *gorm.DB, catalog *SeedCatalog) (bool, error) {
	var count int64
	if err := db.Model(&model.Class{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		log.Println("Catalog already populated, skipping seed")
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		subjectIDs := make(map[string]uint, len(catalog.Subjects))
		for _, s := range catalog.Subjects {
			subject := model.Subject{Name: s.Name, Slug: s.Slug}
			if err := tx.Create(&subject).Error; err != nil {
				return err
			}
			subjectIDs[s.Slug] = subject.ID
		}

		for _, c := range catalog.Classes {
			class := model.Class{
				ClassNumber: c.Number,
				Name:        c.Name,
				Description: c.Description,
			}
			if err := tx.Create(&class).Error; err != nil {
				return err
			}

			for _, cs := range c.Subjects {
				classSubject := buildClassSubject(class.ID, subjectIDs[cs.Slug], cs)
				if err := tx.Create(&classSubject).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Printf("Seeded %d classes and %d subjects", len(catalog.Classes), len(catalog.Subjects))
	return true, nil
}

func buildClassSubject(classID, subjectID uint, cs SeedClassSubject) model.ClassSubject {
	classSubject := model.ClassSubject{
		ClassID:       classID,
		SubjectID:     subjectID,
		ChaptersCount: len(cs.Chapters),
	}

	for _, ch := range cs.Chapters {
		chapter := model.Chapter{
			ChapterNumber:  ch.Number,
			Name:           ch.Name,
			Description:    ch.Description,
			QuestionsCount: len(ch.Questions),
		}
		for _, q := range ch.Questions {
			difficulty := model.DifficultyLevel(q.Difficulty)
			if difficulty == "" {
				difficulty = model.DifficultyMedium
			}
			chapter.Questions = append(chapter.Questions, model.Question{
				QuestionNumber:  q.Number,
				QuestionText:    q.Question,
				AnswerText:      q.Answer,
				DifficultyLevel: difficulty,
			})
		}
		classSubject.QuestionsCount += len(ch.Questions)
		classSubject.Chapters = append(classSubject.Chapters, chapter)
	}

	return classSubject
}
