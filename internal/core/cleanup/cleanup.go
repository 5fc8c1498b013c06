package cleanup

import (
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

const (
	StatusPending = "pending"
	StatusDone    = "done"
	StatusFailed  = "failed"
)

// MaxAttempts before a task is parked as failed.
const MaxAttempts = 5

// Task is a deferred blob removal: the status row is already gone, the
// object storage delete did not go through and must be retried.
type Task struct {
	ID          uuid.UUID  `gorm:"primary_key;type:char(36)"`
	StatusID    uuid.UUID  `gorm:"type:char(36);not null"`
	Paths       string     `gorm:"type:text;not null"` // newline-joined object paths
	Status      string     `gorm:"type:varchar(20);not null"`
	Attempts    int        `gorm:"not null;default:0"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	ProcessedAt *time.Time `gorm:"index"`
	DeletedAt   *time.Time `gorm:"index"`
}

// PathList splits the stored newline-joined form.
func (t *Task) PathList() []string {
	var out []string
	for _, p := range strings.Split(t.Paths, "\n") {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinPaths builds the stored form.
func JoinPaths(paths []string) string {
	return strings.Join(paths, "\n")
}
