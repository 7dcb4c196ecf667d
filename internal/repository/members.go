package repository

import (
	"context"
	"fmt"

	"github.com/ella-quan/meowhome/internal/model"
)

// ListMembers returns the family's member roster in name order.
func (r *FamilyRepository) ListMembers(ctx context.Context) ([]model.FamilyMember, error) {
	query := `SELECT * FROM member WHERE family = $family ORDER BY name ASC`
	vars := map[string]interface{}{"family": r.family}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows, _ := extractQueryResults(result)
	members := make([]model.FamilyMember, 0, len(rows))
	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		members = append(members, model.FamilyMember{
			ID:     recordKey(data["id"]),
			Name:   getString(data, "name"),
			Avatar: getString(data, "avatar"),
		})
	}
	return members, nil
}

// SetMember creates or fully replaces a member record.
func (r *FamilyRepository) SetMember(ctx context.Context, m model.FamilyMember) error {
	query := `
		UPDATE type::thing('member', $id) CONTENT {
			family: $family,
			name: $name,
			avatar: $avatar
		}`
	vars := map[string]interface{}{
		"id":     m.ID,
		"family": r.family,
		"name":   m.Name,
		"avatar": m.Avatar,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("set member %s: %w", m.ID, err)
	}
	return nil
}
