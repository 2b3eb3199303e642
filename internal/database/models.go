package database

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID               uuid.UUID
	OriginalFilename string
	Mime             string
	SizeBytes        int64
	ObjectKey        string
	UploadStatus     string
	CreatedAt        time.Time
	SessionID        uuid.UUID
}
