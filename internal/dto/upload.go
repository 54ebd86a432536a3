package dto

import (
	"time"

	"github.com/shammazp/restaurant-backend/internal/domain"
)

// UploadedFile carries one multipart file through the image pipeline.
type UploadedFile struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

type AssetDescriptorDTO struct {
	URL          string    `json:"url"`
	Key          string    `json:"key"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

func NewAssetDescriptorDTO(a domain.AssetDescriptor) AssetDescriptorDTO {
	return AssetDescriptorDTO{
		URL:          a.URL,
		Key:          a.Key,
		OriginalName: a.OriginalName,
		Size:         a.Size,
		UploadedAt:   a.UploadedAt,
	}
}

type LogoUploadResponse struct {
	Logo AssetDescriptorDTO `json:"logo"`
}

type SkippedFileDTO struct {
	FileName string `json:"fileName"`
	Reason   string `json:"reason"`
}

// CoverImagesUploadResponse reports the batch outcome per file: the covers
// that made it plus the ones that were skipped, never a silent drop.
type CoverImagesUploadResponse struct {
	CoverImages []AssetDescriptorDTO `json:"coverImages"`
	Skipped     []SkippedFileDTO     `json:"skipped,omitempty"`
}
