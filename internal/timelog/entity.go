package timelog

import "time"

// TimeLog is one work session on a task. A nil EndTime means the session is
// still running; ongoing sessions contribute zero hours until closed.
type TimeLog struct {
	ID        string     `yaml:"id"`
	TaskID    string     `yaml:"task_id"`
	StartTime time.Time  `yaml:"start_time"`
	EndTime   *time.Time `yaml:"end_time,omitempty"`
}

// Hours returns the logged duration in hours, 0 for an ongoing session.
func (l *TimeLog) Hours() float64 {
	if l.EndTime == nil {
		return 0
	}
	return l.EndTime.Sub(l.StartTime).Hours()
}
