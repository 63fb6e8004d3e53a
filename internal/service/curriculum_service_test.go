package service

import (
	"net/http"
	"testing"

	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCurriculumServiceForTest(db *gorm.DB) CurriculumService {
	return NewCurriculumService(db, repository.NewGormCurriculumRepository(), repository.NewGormModuleRepository())
}

func Test_curriculumService_GetCurriculum(t *testing.T) {
	ctx := testContext()

	t.Run("正常系: モジュールとレッスンを position 順で含める", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		svc := newCurriculumServiceForTest(db)

		got, err := svc.GetCurriculum(ctx, f.Curriculum.ID)
		require.NoError(t, err)
		require.Len(t, got.Modules, 2)
		assert.Equal(t, "Module 1", got.Modules[0].Name)
		assert.Equal(t, 7, got.Modules[1].DayOffset)
		require.Len(t, got.Modules[0].Lessons, 2)
		assert.Equal(t, "Lesson 1.1", got.Modules[0].Lessons[0].Title)
	})

	t.Run("異常系: 存在しないカリキュラムは 404", func(t *testing.T) {
		db := newTestDB(t)
		svc := newCurriculumServiceForTest(db)

		_, err := svc.GetCurriculum(ctx, uuid.New())
		assertStatus(t, http.StatusNotFound, err)
	})
}

func Test_curriculumService_CreateCurriculum(t *testing.T) {
	ctx := testContext()

	t.Run("正常系: status 省略時は draft", func(t *testing.T) {
		db := newTestDB(t)
		svc := newCurriculumServiceForTest(db)

		got, err := svc.CreateCurriculum(ctx, &model.CreateCurriculumRequest{Name: "Data Engineering"})
		require.NoError(t, err)
		assert.Equal(t, model.CurriculumDraft, got.Status)

		list, err := svc.ListCurricula(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("異常系: 不正な status は 422", func(t *testing.T) {
		db := newTestDB(t)
		svc := newCurriculumServiceForTest(db)

		_, err := svc.CreateCurriculum(ctx, &model.CreateCurriculumRequest{Name: "Data Engineering", Status: "published"})
		assertStatus(t, http.StatusUnprocessableEntity, err)
	})
}

func Test_curriculumService_DeleteCurriculum(t *testing.T) {
	ctx := testContext()

	t.Run("正常系: コホートが無ければ配下ごと削除する", func(t *testing.T) {
		db := newTestDB(t)
		c := buildCurriculum(2, 2, 1)
		require.NoError(t, db.Create(c).Error)
		svc := newCurriculumServiceForTest(db)

		require.NoError(t, svc.DeleteCurriculum(ctx, c.ID))

		var lessons, blocks int64
		require.NoError(t, db.Model(&model.Lesson{}).Count(&lessons).Error)
		require.NoError(t, db.Model(&model.ContentBlock{}).Count(&blocks).Error)
		assert.Zero(t, lessons)
		assert.Zero(t, blocks)
	})

	t.Run("異常系: コホートから参照されていれば 409", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		svc := newCurriculumServiceForTest(db)

		err := svc.DeleteCurriculum(ctx, f.Curriculum.ID)
		assertStatus(t, http.StatusConflict, err)

		_, err = svc.GetCurriculum(ctx, f.Curriculum.ID)
		assert.NoError(t, err)
	})

	t.Run("異常系: 存在しないカリキュラムは 404", func(t *testing.T) {
		db := newTestDB(t)
		svc := newCurriculumServiceForTest(db)

		err := svc.DeleteCurriculum(ctx, uuid.New())
		assertStatus(t, http.StatusNotFound, err)
	})
}

func Test_curriculumService_Modules(t *testing.T) {
	ctx := testContext()

	t.Run("正常系: 作成して一覧に含まれ、削除でレッスンも消える", func(t *testing.T) {
		db := newTestDB(t)
		f := seedCourse(t, db)
		svc := newCurriculumServiceForTest(db)

		created, err := svc.CreateModule(ctx, f.Curriculum.ID, &model.CreateModuleRequest{Name: "Capstone", ModuleType: "capstone", Position: 3, DayOffset: 14})
		require.NoError(t, err)
		assert.Equal(t, model.ModuleCapstone, created.ModuleType)

		modules, err := svc.ListModules(ctx, f.Curriculum.ID)
		require.NoError(t, err)
		assert.Len(t, modules, 3)

		target := f.Curriculum.Modules[0]
		require.NoError(t, svc.DeleteModule(ctx, target.ID))
		var lessons int64
		require.NoError(t, db.Model(&model.Lesson{}).Where("module_id = ?", target.ID).Count(&lessons).Error)
		assert.Zero(t, lessons)
	})

	t.Run("異常系: 存在しないモジュールの削除は 404", func(t *testing.T) {
		db := newTestDB(t)
		svc := newCurriculumServiceForTest(db)

		err := svc.DeleteModule(ctx, uuid.New())
		assertStatus(t, http.StatusNotFound, err)
	})
}
