package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/realtime"
	"github.com/ella-quan/meowhome/internal/store"
)

// MemberWriter is the persistence surface the member service needs.
type MemberWriter interface {
	SetMember(ctx context.Context, m model.FamilyMember) error
}

// IdentityStore remembers which member this device belongs to.
type IdentityStore interface {
	Read() (string, error)
	Write(memberID string) error
}

// MemberService handles the family roster and device onboarding.
type MemberService struct {
	store    *store.Store
	repo     MemberWriter
	identity IdentityStore
	notifier realtime.Notifier
	logger   *slog.Logger
}

// NewMemberService creates a new member service.
func NewMemberService(st *store.Store, repo MemberWriter, identity IdentityStore, notifier realtime.Notifier, logger *slog.Logger) *MemberService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemberService{store: st, repo: repo, identity: identity, notifier: notifier, logger: logger}
}

// CompleteOnboarding creates the member and binds this device to it.
// Calling it again rebinds the device, which is how a shared tablet
// switches hands.
func (s *MemberService) CompleteOnboarding(ctx context.Context, req model.OnboardMemberRequest) (model.FamilyMember, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.FamilyMember{}, ErrMemberNameRequired
	}
	if len(name) > model.MaxMemberNameLength {
		return model.FamilyMember{}, ErrMemberNameTooLong
	}

	m := model.FamilyMember{
		ID:     req.ID,
		Name:   name,
		Avatar: req.Avatar,
	}
	if m.ID == "" {
		m.ID = newID()
	}

	s.store.PutMember(m)
	if err := s.repo.SetMember(ctx, m); err != nil {
		s.logger.Error("member not persisted",
			slog.String("member_id", m.ID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.identity.Write(m.ID); err != nil {
		s.logger.Error("device identity not saved",
			slog.String("member_id", m.ID),
			slog.String("error", err.Error()),
		)
	}
	if s.notifier != nil {
		s.notifier.CollectionChanged(realtime.CollectionMembers)
	}
	return m, nil
}

// Me resolves the device identity against the current roster.
func (s *MemberService) Me() (model.FamilyMember, error) {
	id, err := s.identity.Read()
	if err != nil {
		return model.FamilyMember{}, err
	}
	if id == "" {
		return model.FamilyMember{}, ErrNotOnboarded
	}
	m, ok := model.MemberByID(s.store.Members(), id)
	if !ok {
		// The identity file outlived its member record. Treat it as not
		// onboarded so the client restarts the flow.
		return model.FamilyMember{}, ErrNotOnboarded
	}
	return m, nil
}

// ListMembers returns the current roster snapshot.
func (s *MemberService) ListMembers() []model.FamilyMember {
	return s.store.Members()
}
