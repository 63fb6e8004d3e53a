package service

import (
	"testing"
	"time"

	"cohort_lms/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestUnlockDate(t *testing.T) {
	start := datatypes.Date(date(t, "2026-03-02"))
	override := datatypes.Date(date(t, "2026-03-05"))

	tests := []struct {
		name       string
		dayOffset  int
		releaseDay int
		override   *datatypes.Date
		want       string
	}{
		{name: "正常系: 開始日 + day_offset + release_day", dayOffset: 7, releaseDay: 3, want: "2026-03-12"},
		{name: "正常系: オフセット0なら開始日", dayOffset: 0, releaseDay: 0, want: "2026-03-02"},
		{name: "正常系: 月をまたぐ", dayOffset: 28, releaseDay: 2, want: "2026-04-01"},
		{name: "正常系: override は加算せず置き換える", dayOffset: 7, releaseDay: 3, override: &override, want: "2026-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnlockDate(start, tt.dayOffset, tt.releaseDay, tt.override)
			assert.Equal(t, tt.want, got.Format(model.DateLayout))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestIsAvailable(t *testing.T) {
	unlock := date(t, "2026-03-12")

	assert.False(t, IsAvailable(date(t, "2026-03-11"), unlock), "前日はまだ")
	assert.True(t, IsAvailable(date(t, "2026-03-12"), unlock), "当日から解放")
	assert.True(t, IsAvailable(date(t, "2026-03-13"), unlock))

	// 時刻は無視して日付だけで比べる
	lateOnDayBefore := time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC)
	assert.False(t, IsAvailable(lateOnDayBefore, unlock))
	earlyOnDay := time.Date(2026, 3, 12, 0, 0, 1, 0, time.UTC)
	assert.True(t, IsAvailable(earlyOnDay, unlock))
}

func TestLessonUnlockDate(t *testing.T) {
	cohort := &model.Cohort{StartDate: datatypes.Date(date(t, "2026-03-02"))}
	module := &model.CurriculumModule{DayOffset: 7}
	lesson := &model.Lesson{ReleaseDay: 3}
	override := datatypes.Date(date(t, "2026-03-01"))

	t.Run("正常系: 割り当てが無ければ計算上の日付", func(t *testing.T) {
		got := LessonUnlockDate(lesson, module, cohort, nil)
		assert.Equal(t, "2026-03-12", got.Format(model.DateLayout))
	})

	t.Run("正常系: override の無い割り当ては計算上の日付", func(t *testing.T) {
		got := LessonUnlockDate(lesson, module, cohort, &model.ModuleAssignment{})
		assert.Equal(t, "2026-03-12", got.Format(model.DateLayout))
	})

	t.Run("正常系: override があればそれを使う", func(t *testing.T) {
		assignment := &model.ModuleAssignment{UnlockDateOverride: &override}
		got := LessonUnlockDate(lesson, module, cohort, assignment)
		assert.Equal(t, "2026-03-01", got.Format(model.DateLayout))
		assert.True(t, LessonAvailable(date(t, "2026-03-01"), lesson, module, cohort, assignment))
	})
}

func TestToday(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	clock := FixedClock{At: time.Date(2026, 3, 12, 1, 30, 0, 0, jst)}

	got := Today(clock)
	assert.Equal(t, "2026-03-12", got.Format(model.DateLayout))
	assert.Equal(t, time.UTC, got.Location())
}
