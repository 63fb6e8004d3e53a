// internal/model/enums.go
package model

import (
	"encoding/json"
	"fmt"
)

// DBには整数 (序数) で保存し、JSONでは名前で表す。
// 序数は既存データとの互換のため変更しないこと。

type enumNames []string

func (n enumNames) name(v int) string {
	if v < 0 || v >= len(n) {
		return fmt.Sprintf("unknown(%d)", v)
	}
	return n[v]
}

func (n enumNames) parse(kind, s string) (int, error) {
	for i, name := range n {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidInput, kind, s)
}

func (n enumNames) unmarshal(kind string, b []byte) (int, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return 0, fmt.Errorf("%w: %s must be a string", ErrInvalidInput, kind)
	}
	return n.parse(kind, s)
}

// --- Role ---

type Role int

const (
	RoleStudent Role = iota
	RoleInstructor
	RoleAdmin
)

var roleNames = enumNames{"student", "instructor", "admin"}

func (r Role) String() string                { return roleNames.name(int(r)) }
func (r Role) MarshalJSON() ([]byte, error)  { return json.Marshal(r.String()) }
func (r Role) IsStaff() bool                 { return r == RoleAdmin || r == RoleInstructor }
func (r Role) IsAdmin() bool                 { return r == RoleAdmin }
func ParseRole(s string) (Role, error)       { v, err := roleNames.parse("role", s); return Role(v), err }
func (r *Role) UnmarshalJSON(b []byte) error { return unmarshalInto(roleNames, "role", b, (*int)(r)) }

// --- Curriculum status ---

type CurriculumStatus int

const (
	CurriculumDraft CurriculumStatus = iota
	CurriculumActive
	CurriculumArchived
)

var curriculumStatusNames = enumNames{"draft", "active", "archived"}

func (s CurriculumStatus) String() string               { return curriculumStatusNames.name(int(s)) }
func (s CurriculumStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
func (s *CurriculumStatus) UnmarshalJSON(b []byte) error {
	return unmarshalInto(curriculumStatusNames, "curriculum status", b, (*int)(s))
}
func ParseCurriculumStatus(s string) (CurriculumStatus, error) {
	v, err := curriculumStatusNames.parse("curriculum status", s)
	return CurriculumStatus(v), err
}

// --- Module type ---

type ModuleType int

const (
	ModulePrework ModuleType = iota
	ModuleLiveClass
	ModuleCapstone
	ModuleAdvanced
	ModuleWorkshop
	ModuleRecording
)

var moduleTypeNames = enumNames{"prework", "live_class", "capstone", "advanced", "workshop", "recording"}

func (t ModuleType) String() string               { return moduleTypeNames.name(int(t)) }
func (t ModuleType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
func (t *ModuleType) UnmarshalJSON(b []byte) error {
	return unmarshalInto(moduleTypeNames, "module type", b, (*int)(t))
}
func ParseModuleType(s string) (ModuleType, error) {
	v, err := moduleTypeNames.parse("module type", s)
	return ModuleType(v), err
}

// --- Lesson type ---

type LessonType int

const (
	LessonVideo LessonType = iota
	LessonExercise
	LessonReading
	LessonProject
	LessonCheckpoint
)

var lessonTypeNames = enumNames{"video", "exercise", "reading", "project", "checkpoint"}

func (t LessonType) String() string               { return lessonTypeNames.name(int(t)) }
func (t LessonType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
func (t *LessonType) UnmarshalJSON(b []byte) error {
	return unmarshalInto(lessonTypeNames, "lesson type", b, (*int)(t))
}
func ParseLessonType(s string) (LessonType, error) {
	v, err := lessonTypeNames.parse("lesson type", s)
	return LessonType(v), err
}

// --- Content block type ---

type BlockType int

const (
	BlockVideo BlockType = iota
	BlockText
	BlockExercise
	BlockCodeChallenge
	BlockCheckpoint
	BlockRecording
)

var blockTypeNames = enumNames{"video", "text", "exercise", "code_challenge", "checkpoint", "recording"}

func (t BlockType) String() string               { return blockTypeNames.name(int(t)) }
func (t BlockType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
func (t *BlockType) UnmarshalJSON(b []byte) error {
	return unmarshalInto(blockTypeNames, "block type", b, (*int)(t))
}
func ParseBlockType(s string) (BlockType, error) {
	v, err := blockTypeNames.parse("block type", s)
	return BlockType(v), err
}

// --- Cohort type / status ---

type CohortType int

const (
	CohortBootcamp CohortType = iota
	CohortWorkshop
	CohortAlumni
	CohortCustom
)

var cohortTypeNames = enumNames{"bootcamp", "workshop", "alumni", "custom"}

func (t CohortType) String() string               { return cohortTypeNames.name(int(t)) }
func (t CohortType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
func (t *CohortType) UnmarshalJSON(b []byte) error {
	return unmarshalInto(cohortTypeNames, "cohort type", b, (*int)(t))
}
func ParseCohortType(s string) (CohortType, error) {
	v, err := cohortTypeNames.parse("cohort type", s)
	return CohortType(v), err
}

type CohortStatus int

const (
	CohortUpcoming CohortStatus = iota
	CohortActive
	CohortCompleted
	CohortArchived
)

var cohortStatusNames = enumNames{"upcoming", "active", "completed", "archived"}

func (s CohortStatus) String() string               { return cohortStatusNames.name(int(s)) }
func (s CohortStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
func (s *CohortStatus) UnmarshalJSON(b []byte) error {
	return unmarshalInto(cohortStatusNames, "cohort status", b, (*int)(s))
}
func ParseCohortStatus(s string) (CohortStatus, error) {
	v, err := cohortStatusNames.parse("cohort status", s)
	return CohortStatus(v), err
}

// --- Enrollment status ---

type EnrollmentStatus int

const (
	EnrollmentActive EnrollmentStatus = iota
	EnrollmentPaused
	EnrollmentDropped
	EnrollmentCompleted
)

var enrollmentStatusNames = enumNames{"active", "paused", "dropped", "completed"}

func (s EnrollmentStatus) String() string               { return enrollmentStatusNames.name(int(s)) }
func (s EnrollmentStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
func (s *EnrollmentStatus) UnmarshalJSON(b []byte) error {
	return unmarshalInto(enrollmentStatusNames, "enrollment status", b, (*int)(s))
}
func ParseEnrollmentStatus(s string) (EnrollmentStatus, error) {
	v, err := enrollmentStatusNames.parse("enrollment status", s)
	return EnrollmentStatus(v), err
}

// --- Progress status ---

type ProgressStatus int

const (
	ProgressNotStarted ProgressStatus = iota
	ProgressInProgress
	ProgressCompleted
)

var progressStatusNames = enumNames{"not_started", "in_progress", "completed"}

func (s ProgressStatus) String() string               { return progressStatusNames.name(int(s)) }
func (s ProgressStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
func (s *ProgressStatus) UnmarshalJSON(b []byte) error {
	return unmarshalInto(progressStatusNames, "progress status", b, (*int)(s))
}
func ParseProgressStatus(s string) (ProgressStatus, error) {
	v, err := progressStatusNames.parse("progress status", s)
	return ProgressStatus(v), err
}

// --- Grade ---

type Grade int

const (
	GradeA Grade = iota
	GradeB
	GradeC
	GradeR // redo
)

var gradeNames = enumNames{"A", "B", "C", "R"}

func (g Grade) String() string               { return gradeNames.name(int(g)) }
func (g Grade) MarshalJSON() ([]byte, error) { return json.Marshal(g.String()) }
func (g *Grade) UnmarshalJSON(b []byte) error {
	return unmarshalInto(gradeNames, "grade", b, (*int)(g))
}
func ParseGrade(s string) (Grade, error) {
	v, err := gradeNames.parse("grade", s)
	return Grade(v), err
}

// IsRedo は再提出を求める評価かどうか
func (g Grade) IsRedo() bool { return g == GradeR }

func unmarshalInto(names enumNames, kind string, b []byte, dst *int) error {
	v, err := names.unmarshal(kind, b)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
