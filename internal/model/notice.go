package model

import "time"

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a transient toast. At most one notice is visible at a time.
type Notice struct {
	Message   string     `json:"message"`
	Kind      NoticeKind `json:"kind"`
	CreatedAt time.Time  `json:"createdAt"`
}
