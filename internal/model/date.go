package model

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/datatypes"
)

// DateLayout はAPIで受け渡す日付の形式
const DateLayout = "2006-01-02"

// CivilDate は時刻を切り捨て、UTCの0時に揃えた暦日を返す
// DBのdate型と比較・保存する値はすべてこの形にする
func CivilDate(t time.Time) time.Time {
	start := now.With(t).BeginningOfDay()
	// t のゾーンの0時を、同じ日付のUTC 0時にずらす
	_, offset := start.Zone()
	return start.Add(time.Duration(offset) * time.Second).UTC()
}

func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, s)
	}
	return datatypes.Date(CivilDate(t)), nil
}

func NewDate(t time.Time) datatypes.Date {
	return datatypes.Date(CivilDate(t))
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}
