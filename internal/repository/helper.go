package repository

import (
	"fmt"
	"time"
)

// sqliteTimeFormat is the naive timestamp layout stored in the ledger.
// Timezone information is deliberately not retained.
const sqliteTimeFormat = "2006-01-02 15:04:05"

// ParseTime parses a timestamp string in "2006-01-02 15:04:05",
// "2006-01-02" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse(sqliteTimeFormat, str)
	if err != nil {
		returnTime, err = time.Parse("2006-01-02", str)
		if err != nil {
			returnTime, err = time.Parse(time.RFC3339, str)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
			}
		}
	}
	return returnTime.UTC(), nil
}

// FormatTime renders a timestamp in the naive layout used by the ledger.
func FormatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeFormat)
}
