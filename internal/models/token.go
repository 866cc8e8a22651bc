package models

import (
	"time"
)

// CourseTokenInfo is the opaque join token of a course plus its usage stats.
type CourseTokenInfo struct {
	Token           string    `json:"token"`
	RequestCount    int       `json:"request_count"`
	LastRequestTime time.Time `json:"last_request_dttm_utc"`
	CreatedTime     time.Time `json:"created_dttm_utc"`
}
