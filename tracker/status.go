package tracker

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/ayoisaiah/schoolday/clock"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/osutil"
)

// Status is the summary written to the status file on every tick so that
// other processes can report progress while the tracker holds the store.
type Status struct {
	UpdatedAt    time.Time            `json:"updatedAt"`
	Stage        models.Stage         `json:"stage"`
	StageName    string               `json:"stageName"`
	AcademicYear string               `json:"academicYear"`
	Day          clock.Evaluation     `json:"day"`
	Week         clock.WeekEvaluation `json:"week"`
	Streak       models.StreakState   `json:"streak"`
}

// Status converts the snapshot to its reportable form.
func (s Snapshot) Status() Status {
	return Status{
		UpdatedAt:    s.Time,
		Stage:        s.Stage,
		StageName:    s.Stage.Name(),
		AcademicYear: s.AcademicYear,
		Day:          s.Day,
		Week:         s.Week,
		Streak:       s.Streak,
	}
}

// MarshalStatus renders s as indented JSON.
func MarshalStatus(s Status) ([]byte, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(b, '\n'), nil
}

// WriteStatusFile replaces the status file at path.
func WriteStatusFile(path string, s Status) error {
	b, err := MarshalStatus(s)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, b, osutil.FilePermission); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// ReadStatusFile reads the status written by a running tracker. ok is false
// when no tracker has written one.
func ReadStatusFile(path string) (s Status, ok bool, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, false, nil
	}

	if err != nil {
		return s, false, err
	}

	if err := json.Unmarshal(b, &s); err != nil {
		return s, false, err
	}

	return s, true, nil
}
