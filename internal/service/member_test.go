package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/store"
)

// mockMemberWriter records persistence calls.
type mockMemberWriter struct {
	setCalls int
}

func (m *mockMemberWriter) SetMember(ctx context.Context, member model.FamilyMember) error {
	m.setCalls++
	return nil
}

// fakeIdentity is an in-memory identity store.
type fakeIdentity struct {
	id      string
	readErr error
}

func (f *fakeIdentity) Read() (string, error) {
	return f.id, f.readErr
}

func (f *fakeIdentity) Write(memberID string) error {
	f.id = memberID
	return nil
}

func TestCompleteOnboarding(t *testing.T) {
	st := store.New()
	repo := &mockMemberWriter{}
	ident := &fakeIdentity{}
	svc := NewMemberService(st, repo, ident, nil, nil)

	m, err := svc.CompleteOnboarding(context.Background(), model.OnboardMemberRequest{
		Name:   "  Mika ",
		Avatar: "orange",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Mika", m.Name)
	assert.Equal(t, m.ID, ident.id, "device identity binds to the new member")
	assert.Equal(t, 1, repo.setCalls)
	assert.Len(t, st.Members(), 1)
}

func TestCompleteOnboardingValidation(t *testing.T) {
	svc := NewMemberService(store.New(), &mockMemberWriter{}, &fakeIdentity{}, nil, nil)
	ctx := context.Background()

	_, err := svc.CompleteOnboarding(ctx, model.OnboardMemberRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrMemberNameRequired)

	_, err = svc.CompleteOnboarding(ctx, model.OnboardMemberRequest{
		Name: string(make([]byte, model.MaxMemberNameLength+1)),
	})
	assert.ErrorIs(t, err, ErrMemberNameTooLong)
}

func TestMe(t *testing.T) {
	st := store.New()
	st.PutMember(model.FamilyMember{ID: "m1", Name: "Mika"})

	t.Run("resolves identity", func(t *testing.T) {
		svc := NewMemberService(st, &mockMemberWriter{}, &fakeIdentity{id: "m1"}, nil, nil)
		m, err := svc.Me()
		require.NoError(t, err)
		assert.Equal(t, "Mika", m.Name)
	})

	t.Run("no identity", func(t *testing.T) {
		svc := NewMemberService(st, &mockMemberWriter{}, &fakeIdentity{}, nil, nil)
		_, err := svc.Me()
		assert.ErrorIs(t, err, ErrNotOnboarded)
	})

	t.Run("dangling identity", func(t *testing.T) {
		svc := NewMemberService(st, &mockMemberWriter{}, &fakeIdentity{id: "ghost"}, nil, nil)
		_, err := svc.Me()
		assert.ErrorIs(t, err, ErrNotOnboarded)
	})
}
