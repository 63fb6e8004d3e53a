package model_test

import (
	"testing"
	"time"

	"cohort_lms/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCivilDate(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"正常系: UTC の昼", time.Date(2026, 3, 2, 13, 45, 10, 5, time.UTC), "2026-03-02"},
		{"正常系: JST の深夜は JST の日付", time.Date(2026, 3, 3, 0, 30, 0, 0, time.FixedZone("JST", 9*60*60)), "2026-03-03"},
		{"正常系: 西側のゾーンの夜は現地の日付", time.Date(2026, 3, 2, 23, 59, 0, 0, time.FixedZone("PST", -8*60*60)), "2026-03-02"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := model.CivilDate(tc.in)
			assert.Equal(t, tc.want, got.Format(model.DateLayout))
			assert.Equal(t, time.UTC, got.Location())
			assert.Zero(t, got.Hour())
			assert.Zero(t, got.Nanosecond())
		})
	}
}
