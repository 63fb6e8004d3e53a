package service

import (
	"time"

	"cohort_lms/internal/model"

	"gorm.io/datatypes"
)

// UnlockDate はレッスンが解放される日
// override があればそれで置き換える (加算はしない)。無ければ開始日 + day_offset + release_day
func UnlockDate(cohortStart datatypes.Date, dayOffset, releaseDay int, override *datatypes.Date) time.Time {
	if override != nil {
		return model.CivilDate(time.Time(*override))
	}
	return model.CivilDate(time.Time(cohortStart)).AddDate(0, 0, dayOffset+releaseDay)
}

// IsAvailable は today >= unlockDate (日単位)
func IsAvailable(today, unlockDate time.Time) bool {
	return !model.CivilDate(today).Before(model.CivilDate(unlockDate))
}

// LessonUnlockDate は割り当てが無い場合は計算上の日付にフォールバックする
func LessonUnlockDate(lesson *model.Lesson, module *model.CurriculumModule, cohort *model.Cohort, assignment *model.ModuleAssignment) time.Time {
	var override *datatypes.Date
	if assignment != nil {
		override = assignment.UnlockDateOverride
	}
	return UnlockDate(cohort.StartDate, module.DayOffset, lesson.ReleaseDay, override)
}

func LessonAvailable(today time.Time, lesson *model.Lesson, module *model.CurriculumModule, cohort *model.Cohort, assignment *model.ModuleAssignment) bool {
	return IsAvailable(today, LessonUnlockDate(lesson, module, cohort, assignment))
}
