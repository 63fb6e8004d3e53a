// internal/repository/helpers.go
package repository

import (
	"errors"

	"cohort_lms/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// orderedByPosition はモジュール・レッスン・ブロックの並び順を明示するスコープ
// これらを返す読み出しはすべてこのスコープを通す
func orderedByPosition(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".position ASC").Order(table + ".created_at ASC")
	}
}

// isUniqueViolation は一意制約違反かどうか (postgres の 23505 と TranslateError 後の ErrDuplicatedKey)
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// 以下のサブクエリと deleteBlocks は削除時のカスケードに使う
func lessonIDsOfModules(db *gorm.DB, moduleIDs *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).Table("lessons").Select("id").Where("module_id IN (?)", moduleIDs)
}

func blockIDsOfLessons(db *gorm.DB, lessonIDs *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).Table("content_blocks").Select("id").Where("lesson_id IN (?)", lessonIDs)
}

func moduleIDsOfCurriculum(db *gorm.DB, curriculumID uuid.UUID) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).Table("modules").Select("id").Where("curriculum_id = ?", curriculumID)
}

// deleteBlocks はブロックと、それに紐づく進捗・提出を削除する
func deleteBlocks(db *gorm.DB, blockIDs *gorm.DB) error {
	if err := db.Where("content_block_id IN (?)", blockIDs).Delete(&model.Progress{}).Error; err != nil {
		return err
	}
	if err := db.Where("content_block_id IN (?)", blockIDs).Delete(&model.Submission{}).Error; err != nil {
		return err
	}
	return db.Where("id IN (?)", blockIDs).Delete(&model.ContentBlock{}).Error
}
