package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"
	"cohort_lms/internal/service"
)

const seedCurriculumName = "Full-Stack Web Development"

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample users, a curriculum and a cohort",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, logger, err := openDB(cmd)
		if err != nil {
			return err
		}
		if err := repository.AutoMigrate(db); err != nil {
			return err
		}
		ctx := middleware.WithLogger(cmd.Context(), logger)
		return seed(ctx, db, logger)
	},
}

type seedLesson struct {
	title      string
	lessonType string
	releaseDay int
	blocks     []model.CreateContentBlockRequest
}

type seedModule struct {
	req     model.CreateModuleRequest
	lessons []seedLesson
}

func intPtr(v int) *int { return &v }

var seedModules = []seedModule{
	{
		req: model.CreateModuleRequest{Name: "Prework", ModuleType: "prework", Position: 1, DayOffset: 0, TotalDays: intPtr(7)},
		lessons: []seedLesson{
			{title: "Welcome", lessonType: "video", releaseDay: 0, blocks: []model.CreateContentBlockRequest{
				{BlockType: "video", Position: 1, Title: "Course overview", VideoURL: "https://example.com/videos/overview"},
				{BlockType: "text", Position: 2, Title: "How this course works", Body: "## Schedule\nModules unlock on a fixed schedule.\nFinish each block to track your progress."},
			}},
			{title: "Developer setup", lessonType: "exercise", releaseDay: 1, blocks: []model.CreateContentBlockRequest{
				{BlockType: "text", Position: 1, Title: "Install tools", Body: "Install `git`, `node` and an editor."},
				{BlockType: "exercise", Position: 2, Title: "Push your first commit", Body: "Create a repository and submit its URL."},
			}},
		},
	},
	{
		req: model.CreateModuleRequest{Name: "Week 1: JavaScript Fundamentals", ModuleType: "live_class", Position: 2, DayOffset: 7, TotalDays: intPtr(5)},
		lessons: []seedLesson{
			{title: "Variables and functions", lessonType: "video", releaseDay: 0, blocks: []model.CreateContentBlockRequest{
				{BlockType: "video", Position: 1, Title: "Lecture", VideoURL: "https://example.com/videos/js-basics"},
				{BlockType: "code_challenge", Position: 2, Title: "FizzBuzz", Body: "Print 1 to 100 with the usual rules.", Solution: "for (let i = 1; i <= 100; i++) { /* ... */ }", Filename: "fizzbuzz.js"},
			}},
			{title: "Arrays and objects", lessonType: "exercise", releaseDay: 3, blocks: []model.CreateContentBlockRequest{
				{BlockType: "exercise", Position: 1, Title: "Shopping cart", Body: "Model a cart with arrays of objects."},
				{BlockType: "checkpoint", Position: 2, Title: "Week 1 checkpoint", Body: "Submit a link to your solutions."},
			}},
		},
	},
	{
		req: model.CreateModuleRequest{Name: "Week 2: React", ModuleType: "live_class", Position: 3, DayOffset: 14, TotalDays: intPtr(5)},
		lessons: []seedLesson{
			{title: "Components", lessonType: "reading", releaseDay: 0, blocks: []model.CreateContentBlockRequest{
				{BlockType: "text", Position: 1, Title: "Thinking in components", Body: "Break the UI into a tree of components."},
				{BlockType: "exercise", Position: 2, Title: "Build a counter", Body: "Write a counter component with state."},
			}},
		},
	},
}

func seed(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	clock := service.SystemClock{}
	userRepo := repository.NewGormUserRepository()
	cohortRepo := repository.NewGormCohortRepository()
	enrollmentRepo := repository.NewGormEnrollmentRepository()
	assignmentRepo := repository.NewGormModuleAssignmentRepository()
	moduleRepo := repository.NewGormModuleRepository()
	curriculumRepo := repository.NewGormCurriculumRepository()

	users := service.NewUserService(db, userRepo, cohortRepo, enrollmentRepo, assignmentRepo, moduleRepo, nil, clock)
	curricula := service.NewCurriculumService(db, curriculumRepo, moduleRepo)
	lessons := service.NewLessonService(db, moduleRepo, repository.NewGormLessonRepository(),
		repository.NewGormContentBlockRepository(), enrollmentRepo, repository.NewGormProgressRepository(),
		repository.NewGormSubmissionRepository(), clock)
	cohorts := service.NewCohortService(db, cohortRepo, curriculumRepo, userRepo, enrollmentRepo, assignmentRepo,
		moduleRepo, repository.NewGormProgressRepository(), clock)

	existing, err := curricula.ListCurricula(ctx)
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c.Name == seedCurriculumName {
			logger.Info("Seed data already present, skipping", "curriculum_id", c.ID.String())
			return nil
		}
	}

	// 最初のユーザーは管理者として作られる
	admin, err := users.ResolveIdentity(ctx, model.IdentityClaims{
		Subject: "seed|admin", Email: "admin@example.com", FirstName: "Ada", LastName: "Admin",
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if _, err := users.SetRole(ctx, admin.Email, model.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin role: %w", err)
	}

	instructor, err := users.ResolveIdentity(ctx, model.IdentityClaims{
		Subject: "seed|instructor", Email: "instructor@example.com", FirstName: "Ivan", LastName: "Instructor",
	})
	if err != nil {
		return fmt.Errorf("seed instructor: %w", err)
	}
	if _, err := users.SetRole(ctx, instructor.Email, model.RoleInstructor); err != nil {
		return fmt.Errorf("seed instructor role: %w", err)
	}

	curriculum, err := curricula.CreateCurriculum(ctx, &model.CreateCurriculumRequest{
		Name:        seedCurriculumName,
		Description: "Twelve week cohort program",
		TotalWeeks:  intPtr(12),
		Status:      "active",
	})
	if err != nil {
		return fmt.Errorf("seed curriculum: %w", err)
	}

	for _, m := range seedModules {
		module, err := curricula.CreateModule(ctx, curriculum.ID, &m.req)
		if err != nil {
			return fmt.Errorf("seed module %q: %w", m.req.Name, err)
		}
		for i, l := range m.lessons {
			lesson, err := lessons.CreateLesson(ctx, module.ID, &model.CreateLessonRequest{
				Title:      l.title,
				LessonType: l.lessonType,
				Position:   i + 1,
				ReleaseDay: l.releaseDay,
			})
			if err != nil {
				return fmt.Errorf("seed lesson %q: %w", l.title, err)
			}
			for _, b := range l.blocks {
				block := b
				if _, err := lessons.CreateContentBlock(ctx, lesson.ID, &block); err != nil {
					return fmt.Errorf("seed block %q: %w", b.Title, err)
				}
			}
		}
	}

	cohort, err := cohorts.CreateCohort(ctx, &model.CreateCohortRequest{
		Name:         "Cohort 3",
		CohortType:   "bootcamp",
		CurriculumID: curriculum.ID.String(),
		StartDate:    "2026-03-02",
		Status:       "active",
	})
	if err != nil {
		return fmt.Errorf("seed cohort: %w", err)
	}

	student, err := users.ResolveIdentity(ctx, model.IdentityClaims{
		Subject: "seed|student", Email: "student@example.com", FirstName: "Sam", LastName: "Student",
	})
	if err != nil {
		return fmt.Errorf("seed student: %w", err)
	}
	_, err = cohorts.CreateEnrollment(ctx, cohort.ID, &model.CreateEnrollmentRequest{UserID: student.ID.String()})
	if err != nil && !errors.Is(err, model.ErrConflict) {
		return fmt.Errorf("seed enrollment: %w", err)
	}

	logger.Info("Seed completed",
		"curriculum_id", curriculum.ID.String(),
		"cohort_id", cohort.ID.String(),
		"admin", admin.Email,
		"instructor", instructor.Email,
		"student", student.Email,
	)
	return nil
}
