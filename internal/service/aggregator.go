package service

import (
	"math"
	"sort"
	"time"

	"cohort_lms/internal/model"

	"github.com/google/uuid"
)

// MaxActionItems はダッシュボードに出す "R" 評価の最大件数
const MaxActionItems = 5

const actionItemRedo = "redo"

// StudentDashboardInput は集計に必要なものをすべて読み込み済みで渡す
// Curriculum はモジュール・レッスン・ブロックが position 順であること
type StudentDashboardInput struct {
	User        *model.User
	Enrollment  *model.Enrollment // Cohort, ModuleAssignments 読み込み済み
	Curriculum  *model.Curriculum
	Progress    []*model.Progress
	Submissions []*model.Submission // ContentBlock.Lesson 読み込み済み
	Today       time.Time
}

// Percentage は completed/total*100 を小数1桁に丸める。total が 0 なら 0
func Percentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

// CurriculumBlockIDs はカリキュラム配下の全ブロックID
func CurriculumBlockIDs(c *model.Curriculum) []uuid.UUID {
	var ids []uuid.UUID
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			for _, b := range l.ContentBlocks {
				ids = append(ids, b.ID)
			}
		}
	}
	return ids
}

// NotEnrolledDashboard は受講中のコホートが無いユーザー向け
func NotEnrolledDashboard(user *model.User) model.StudentDashboard {
	return model.StudentDashboard{
		Enrolled: false,
		User:     model.NewUserSummary(user),
	}
}

// BuildStudentDashboard は受講者ダッシュボードを組み立てる。副作用なし
func BuildStudentDashboard(in StudentDashboardInput) model.StudentDashboard {
	cohort := in.Enrollment.Cohort

	completedBlocks := make(map[uuid.UUID]bool, len(in.Progress))
	for _, p := range in.Progress {
		if p.IsCompleted() {
			completedBlocks[p.ContentBlockID] = true
		}
	}

	assignments := make(map[uuid.UUID]*model.ModuleAssignment, len(in.Enrollment.ModuleAssignments))
	for i := range in.Enrollment.ModuleAssignments {
		a := &in.Enrollment.ModuleAssignments[i]
		assignments[a.ModuleID] = a
	}

	var overallCompleted, overallTotal int
	var continueLesson *model.ContinueLesson
	modules := make([]model.DashboardModule, 0, len(in.Curriculum.Modules))

	for mi := range in.Curriculum.Modules {
		mod := &in.Curriculum.Modules[mi]
		assignment := assignments[mod.ID]

		var modCompleted, modTotal int
		lessons := make([]model.DashboardLesson, 0, len(mod.Lessons))
		for li := range mod.Lessons {
			lesson := &mod.Lessons[li]

			total := len(lesson.ContentBlocks)
			completed := 0
			for _, b := range lesson.ContentBlocks {
				if completedBlocks[b.ID] {
					completed++
				}
			}
			unlockDate := LessonUnlockDate(lesson, mod, cohort, assignment)
			available := LessonAvailable(in.Today, lesson, mod, cohort, assignment)
			lessonCompleted := total > 0 && completed == total

			lessons = append(lessons, model.DashboardLesson{
				ID:                 lesson.ID,
				Title:              lesson.Title,
				LessonType:         lesson.LessonType,
				Position:           lesson.Position,
				ReleaseDay:         lesson.ReleaseDay,
				Required:           lesson.Required,
				Available:          available,
				UnlockDate:         unlockDate.Format(model.DateLayout),
				TotalBlocks:        total,
				CompletedBlocks:    completed,
				ProgressPercentage: Percentage(completed, total),
				Completed:          lessonCompleted,
			})

			if continueLesson == nil && available && !lessonCompleted {
				continueLesson = &model.ContinueLesson{ID: lesson.ID, Title: lesson.Title, ModuleID: mod.ID}
			}
			modCompleted += completed
			modTotal += total
		}

		modules = append(modules, model.DashboardModule{
			ID:                 mod.ID,
			Name:               mod.Name,
			ModuleType:         mod.ModuleType,
			Position:           mod.Position,
			DayOffset:          mod.DayOffset,
			TotalBlocks:        modTotal,
			CompletedBlocks:    modCompleted,
			ProgressPercentage: Percentage(modCompleted, modTotal),
			Lessons:            lessons,
		})
		overallCompleted += modCompleted
		overallTotal += modTotal
	}

	return model.StudentDashboard{
		Enrolled: true,
		User:     model.NewUserSummary(in.User),
		Cohort: &model.DashboardCohort{
			ID:        cohort.ID,
			Name:      cohort.Name,
			StartDate: model.FormatDate(cohort.StartDate),
			Status:    cohort.Status,
		},
		OverallProgress: &model.ProgressSummary{
			Completed:  overallCompleted,
			Total:      overallTotal,
			Percentage: Percentage(overallCompleted, overallTotal),
		},
		Modules:        modules,
		ContinueLesson: continueLesson,
		ActionItems:    ActionItems(in.Submissions, MaxActionItems),
	}
}

// ActionItems は "R" 評価のうち、まだ再提出されていない (そのブロックの最新の提出である) ものを
// 新しい順に最大 limit 件返す
func ActionItems(submissions []*model.Submission, limit int) []model.ActionItem {
	latest := make(map[uuid.UUID]*model.Submission, len(submissions))
	for _, s := range submissions {
		cur, ok := latest[s.ContentBlockID]
		if !ok || s.NumSubmissions > cur.NumSubmissions ||
			(s.NumSubmissions == cur.NumSubmissions && s.CreatedAt.After(cur.CreatedAt)) {
			latest[s.ContentBlockID] = s
		}
	}

	redo := make([]*model.Submission, 0)
	for _, s := range latest {
		if s.Grade != nil && s.Grade.IsRedo() {
			redo = append(redo, s)
		}
	}
	sort.Slice(redo, func(i, j int) bool {
		if !redo[i].CreatedAt.Equal(redo[j].CreatedAt) {
			return redo[i].CreatedAt.After(redo[j].CreatedAt)
		}
		return redo[i].ID.String() < redo[j].ID.String()
	})
	if len(redo) > limit {
		redo = redo[:limit]
	}

	items := make([]model.ActionItem, 0, len(redo))
	for _, s := range redo {
		item := model.ActionItem{
			Type:           actionItemRedo,
			SubmissionID:   s.ID,
			ContentBlockID: s.ContentBlockID,
			GradedAt:       s.GradedAt,
		}
		if cb := s.ContentBlock; cb != nil {
			item.ContentBlockTitle = cb.Title
			if cb.Lesson != nil {
				item.LessonTitle = cb.Lesson.Title
			}
		}
		items = append(items, item)
	}
	return items
}

// StaffStudentRows は受講者ごとの進捗を割合の高い順に並べる。同率なら名前順
// enrollments は User 読み込み済み
func StaffStudentRows(enrollments []*model.Enrollment, completed map[uuid.UUID]int, totalBlocks int) []model.StaffDashboardStudent {
	rows := make([]model.StaffDashboardStudent, 0, len(enrollments))
	for _, e := range enrollments {
		if e.User == nil {
			continue
		}
		done := completed[e.UserID]
		rows = append(rows, model.StaffDashboardStudent{
			UserID:             e.UserID,
			FullName:           e.User.FullName(),
			Email:              e.User.Email,
			GithubUsername:     e.User.GithubUsername,
			ProgressPercentage: Percentage(done, totalBlocks),
			CompletedBlocks:    done,
			TotalBlocks:        totalBlocks,
			LastSignInAt:       e.User.LastSignInAt,
			EnrollmentStatus:   e.Status,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ProgressPercentage != rows[j].ProgressPercentage {
			return rows[i].ProgressPercentage > rows[j].ProgressPercentage
		}
		return rows[i].FullName < rows[j].FullName
	})
	return rows
}
