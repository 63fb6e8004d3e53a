//go:generate mockery --name CurriculumService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurriculumService はカリキュラムとモジュールの管理
type CurriculumService interface {
	ListCurricula(ctx context.Context) ([]model.CurriculumResponse, error)
	// GetCurriculum はモジュールとレッスンを position 順で含める
	GetCurriculum(ctx context.Context, curriculumID uuid.UUID) (*model.CurriculumResponse, error)
	CreateCurriculum(ctx context.Context, req *model.CreateCurriculumRequest) (*model.CurriculumResponse, error)
	UpdateCurriculum(ctx context.Context, curriculumID uuid.UUID, req *model.UpdateCurriculumRequest) (*model.CurriculumResponse, error)
	// DeleteCurriculum はコホートから参照されている間は ErrConflict
	DeleteCurriculum(ctx context.Context, curriculumID uuid.UUID) error

	ListModules(ctx context.Context, curriculumID uuid.UUID) ([]model.CurriculumModuleResponse, error)
	GetModule(ctx context.Context, moduleID uuid.UUID) (*model.CurriculumModuleResponse, error)
	CreateModule(ctx context.Context, curriculumID uuid.UUID, req *model.CreateModuleRequest) (*model.CurriculumModuleResponse, error)
	UpdateModule(ctx context.Context, moduleID uuid.UUID, req *model.UpdateModuleRequest) (*model.CurriculumModuleResponse, error)
	DeleteModule(ctx context.Context, moduleID uuid.UUID) error
}

type curriculumService struct {
	db             *gorm.DB
	curriculumRepo repository.CurriculumRepository
	moduleRepo     repository.ModuleRepository
}

func NewCurriculumService(db *gorm.DB, curriculumRepo repository.CurriculumRepository, moduleRepo repository.ModuleRepository) CurriculumService {
	return &curriculumService{
		db:             db,
		curriculumRepo: curriculumRepo,
		moduleRepo:     moduleRepo,
	}
}

func (s *curriculumService) ListCurricula(ctx context.Context) ([]model.CurriculumResponse, error) {
	curricula, err := s.curriculumRepo.List(ctx, s.db)
	if err != nil {
		return nil, internalError(err)
	}
	resp := make([]model.CurriculumResponse, 0, len(curricula))
	for _, c := range curricula {
		resp = append(resp, model.NewCurriculumResponse(c, false))
	}
	return resp, nil
}

func (s *curriculumService) GetCurriculum(ctx context.Context, curriculumID uuid.UUID) (*model.CurriculumResponse, error) {
	curriculum, err := s.curriculumRepo.FindTree(ctx, s.db, curriculumID)
	if err != nil {
		return nil, repoError(err, "Curriculum")
	}
	resp := model.NewCurriculumResponse(curriculum, true)
	return &resp, nil
}

func (s *curriculumService) CreateCurriculum(ctx context.Context, req *model.CreateCurriculumRequest) (*model.CurriculumResponse, error) {
	curriculum := &model.Curriculum{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		TotalWeeks:  req.TotalWeeks,
		Status:      model.CurriculumDraft,
	}
	if req.Status != "" {
		status, err := model.ParseCurriculumStatus(req.Status)
		if err != nil {
			return nil, validationError(err.Error(), "status")
		}
		curriculum.Status = status
	}

	if err := s.curriculumRepo.Create(ctx, s.db, curriculum); err != nil {
		return nil, repoError(err, "Curriculum")
	}
	middleware.GetLogger(ctx).Info("Curriculum created", "curriculum_id", curriculum.ID.String())
	resp := model.NewCurriculumResponse(curriculum, false)
	return &resp, nil
}

func (s *curriculumService) UpdateCurriculum(ctx context.Context, curriculumID uuid.UUID, req *model.UpdateCurriculumRequest) (*model.CurriculumResponse, error) {
	curriculum, err := s.curriculumRepo.FindByID(ctx, s.db, curriculumID)
	if err != nil {
		return nil, repoError(err, "Curriculum")
	}

	if req.Name != nil {
		curriculum.Name = *req.Name
	}
	if req.Description != nil {
		curriculum.Description = *req.Description
	}
	if req.TotalWeeks != nil {
		curriculum.TotalWeeks = req.TotalWeeks
	}
	if req.Status != nil {
		status, err := model.ParseCurriculumStatus(*req.Status)
		if err != nil {
			return nil, validationError(err.Error(), "status")
		}
		curriculum.Status = status
	}

	if err := s.curriculumRepo.Update(ctx, s.db, curriculum); err != nil {
		return nil, repoError(err, "Curriculum")
	}
	resp := model.NewCurriculumResponse(curriculum, false)
	return &resp, nil
}

func (s *curriculumService) DeleteCurriculum(ctx context.Context, curriculumID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.curriculumRepo.FindByID(ctx, tx, curriculumID); err != nil {
			return repoError(err, "Curriculum")
		}
		count, err := s.curriculumRepo.CountCohorts(ctx, tx, curriculumID)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Warn("Curriculum is still used by cohorts", "curriculum_id", curriculumID.String(), "cohorts", count)
			return model.NewAppError("CONFLICT", "Cannot delete a curriculum that has cohorts", "", model.ErrConflict)
		}
		return s.curriculumRepo.Delete(ctx, tx, curriculumID)
	})
	if err != nil {
		return repoError(err, "Curriculum")
	}
	logger.Info("Curriculum deleted", "curriculum_id", curriculumID.String())
	return nil
}

func (s *curriculumService) ListModules(ctx context.Context, curriculumID uuid.UUID) ([]model.CurriculumModuleResponse, error) {
	if _, err := s.curriculumRepo.FindByID(ctx, s.db, curriculumID); err != nil {
		return nil, repoError(err, "Curriculum")
	}
	modules, err := s.moduleRepo.ListByCurriculum(ctx, s.db, curriculumID)
	if err != nil {
		return nil, internalError(err)
	}
	resp := make([]model.CurriculumModuleResponse, 0, len(modules))
	for _, m := range modules {
		resp = append(resp, model.NewCurriculumModuleResponse(m, true, false))
	}
	return resp, nil
}

func (s *curriculumService) GetModule(ctx context.Context, moduleID uuid.UUID) (*model.CurriculumModuleResponse, error) {
	module, err := s.moduleRepo.FindByID(ctx, s.db, moduleID)
	if err != nil {
		return nil, repoError(err, "Module")
	}
	resp := model.NewCurriculumModuleResponse(module, true, false)
	return &resp, nil
}

func (s *curriculumService) CreateModule(ctx context.Context, curriculumID uuid.UUID, req *model.CreateModuleRequest) (*model.CurriculumModuleResponse, error) {
	if _, err := s.curriculumRepo.FindByID(ctx, s.db, curriculumID); err != nil {
		return nil, repoError(err, "Curriculum")
	}

	module := &model.CurriculumModule{
		ID:           uuid.New(),
		CurriculumID: curriculumID,
		Name:         req.Name,
		Description:  req.Description,
		Position:     req.Position,
		DayOffset:    req.DayOffset,
		TotalDays:    req.TotalDays,
	}
	if req.ModuleType != "" {
		moduleType, err := model.ParseModuleType(req.ModuleType)
		if err != nil {
			return nil, validationError(err.Error(), "module_type")
		}
		module.ModuleType = moduleType
	}

	if err := s.moduleRepo.Create(ctx, s.db, module); err != nil {
		return nil, repoError(err, "Module")
	}
	middleware.GetLogger(ctx).Info("Module created", "module_id", module.ID.String(), "curriculum_id", curriculumID.String())
	resp := model.NewCurriculumModuleResponse(module, false, false)
	return &resp, nil
}

func (s *curriculumService) UpdateModule(ctx context.Context, moduleID uuid.UUID, req *model.UpdateModuleRequest) (*model.CurriculumModuleResponse, error) {
	module, err := s.moduleRepo.FindByID(ctx, s.db, moduleID)
	if err != nil {
		return nil, repoError(err, "Module")
	}

	if req.Name != nil {
		module.Name = *req.Name
	}
	if req.ModuleType != nil {
		moduleType, err := model.ParseModuleType(*req.ModuleType)
		if err != nil {
			return nil, validationError(err.Error(), "module_type")
		}
		module.ModuleType = moduleType
	}
	if req.Description != nil {
		module.Description = *req.Description
	}
	if req.Position != nil {
		module.Position = *req.Position
	}
	if req.DayOffset != nil {
		module.DayOffset = *req.DayOffset
	}
	if req.TotalDays != nil {
		module.TotalDays = req.TotalDays
	}

	if err := s.moduleRepo.Update(ctx, s.db, module); err != nil {
		return nil, repoError(err, "Module")
	}
	resp := model.NewCurriculumModuleResponse(module, true, false)
	return &resp, nil
}

func (s *curriculumService) DeleteModule(ctx context.Context, moduleID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.moduleRepo.Delete(ctx, tx, moduleID)
	})
	if err != nil {
		return repoError(err, "Module")
	}
	middleware.GetLogger(ctx).Info("Module deleted", "module_id", moduleID.String())
	return nil
}
