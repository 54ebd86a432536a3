package domain

import "time"

// MaxCoverImages caps the number of cover images a restaurant can hold.
const MaxCoverImages = 4

// AssetDescriptor points at a binary stored in the object store. The storage
// key is unique per upload and is what later deletion addresses; descriptor
// and stored object are always removed together.
type AssetDescriptor struct {
	URL          string    `json:"url"`
	Key          string    `json:"key"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type Restaurant struct {
	ID          string
	BizID       string
	Name        string
	Logo        *AssetDescriptor
	CoverImages []AssetDescriptor
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
