package storage

import "time"

type TimeEntry struct {
	ID       int64      `json:"id"`
	WorkerID int64      `json:"worker_id"`
	Date     time.Time  `json:"date"`
	ClockIn  time.Time  `json:"clock_in"`
	ClockOut *time.Time `json:"clock_out,omitempty"`
}
