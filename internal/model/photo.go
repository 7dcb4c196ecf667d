package model

import "time"

// Photo is an entry in the family gallery. The binary itself lives behind
// URL; the document only carries metadata.
type Photo struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
	// UploadedBy is a weak reference to a FamilyMember id.
	UploadedBy string    `json:"uploaded_by"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreatePhotoRequest is the payload for adding a photo after its binary has
// been uploaded.
type CreatePhotoRequest struct {
	ID         string `json:"id,omitempty"`
	URL        string `json:"url"`
	Caption    string `json:"caption,omitempty"`
	UploadedBy string `json:"uploaded_by,omitempty"`
}
