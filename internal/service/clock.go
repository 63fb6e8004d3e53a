package service

import (
	"time"

	"cohort_lms/internal/model"
)

// Clock は現在時刻の取得元。テストでは固定値を差し込む
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock は常に同じ時刻を返す
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// Today はホストのローカル日付を UTC 0時の暦日として返す
func Today(c Clock) time.Time {
	return model.CivilDate(c.Now())
}
