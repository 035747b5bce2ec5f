package testutil

import (
	"edu_catalog_backend/internal/config"
	"edu_catalog_backend/pkg/database"
	"testing"

	"gorm.io/gorm"
)

// DB 返回已建表的内存 sqlite 数据库，每次调用相互隔离
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := database.InitDB(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeededDB 返回写入 Catalog 夹具的数据库
func SeededDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db := DB(tb)
	if _, err := database.Seed(db, Catalog()); err != nil {
		tb.Fatalf("failed to seed test db: %v", err)
	}
	return db
}

// Catalog 测试夹具：章节和题目故意乱序写入，用于校验排序
//
//	class 6  -> 无学科
//	class 9  -> mathematics(1 章)
//	class 10 -> science(0 章), mathematics(2 章, 共 3 题)
func Catalog() *database.SeedCatalog {
	return &database.SeedCatalog{
		Subjects: []database.SeedSubject{
			{Slug: "science", Name: "Science"},
			{Slug: "mathematics", Name: "Mathematics"},
		},
		Classes: []database.SeedClass{
			{Number: 10, Name: "Class 10", Description: "Board year", Subjects: []database.SeedClassSubject{
				{Slug: "science"},
				{Slug: "mathematics", Chapters: []database.SeedChapter{
					{Number: 2, Name: "Polynomials"},
					{Number: 1, Name: "Real Numbers", Description: "Euclid and primes", Questions: []database.SeedQuestion{
						{Number: 3, Difficulty: "hard", Question: "State the fundamental theorem of arithmetic.", Answer: "Every integer > 1 factors uniquely into primes."},
						{Number: 1, Difficulty: "easy", Question: "Define real numbers.", Answer: "All rational and irrational numbers."},
						{Number: 2, Question: "Prove that √2 is irrational.", Answer: "By contradiction on gcd(p, q) = 1."},
					}},
				}},
			}},
			{Number: 6, Name: "Class 6", Description: "Foundations"},
			{Number: 9, Name: "Class 9", Subjects: []database.SeedClassSubject{
				{Slug: "mathematics", Chapters: []database.SeedChapter{
					{Number: 1, Name: "Number Systems", Questions: []database.SeedQuestion{
						{Number: 1, Question: "Is zero a rational number?", Answer: "Yes, 0 = 0/1."},
					}},
				}},
			}},
		},
	}
}
