package repository

import (
	"context"
	"fmt"

	"github.com/ella-quan/meowhome/internal/model"
)

// ListPhotos returns the family's photos, newest first.
func (r *FamilyRepository) ListPhotos(ctx context.Context) ([]model.Photo, error) {
	query := `SELECT * FROM photo WHERE family = $family ORDER BY timestamp DESC`
	vars := map[string]interface{}{"family": r.family}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows, _ := extractQueryResults(result)
	photos := make([]model.Photo, 0, len(rows))
	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		photos = append(photos, model.Photo{
			ID:         recordKey(data["id"]),
			URL:        getString(data, "url"),
			Caption:    getString(data, "caption"),
			UploadedBy: getString(data, "uploaded_by"),
			Timestamp:  getTime(data, "timestamp"),
		})
	}
	return photos, nil
}

// SetPhoto creates or fully replaces a photo record.
func (r *FamilyRepository) SetPhoto(ctx context.Context, p model.Photo) error {
	query := `
		UPDATE type::thing('photo', $id) CONTENT {
			family: $family,
			url: $url,
			caption: $caption,
			uploaded_by: $uploaded_by,
			timestamp: $timestamp
		}`
	vars := map[string]interface{}{
		"id":          p.ID,
		"family":      r.family,
		"url":         p.URL,
		"caption":     p.Caption,
		"uploaded_by": p.UploadedBy,
		"timestamp":   p.Timestamp,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("set photo %s: %w", p.ID, err)
	}
	return nil
}

// DeletePhoto removes a photo record. Deleting an absent record is a
// no-op.
func (r *FamilyRepository) DeletePhoto(ctx context.Context, id string) error {
	query := `DELETE type::thing('photo', $id) WHERE family = $family`
	vars := map[string]interface{}{"id": id, "family": r.family}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("delete photo %s: %w", id, err)
	}
	return nil
}
