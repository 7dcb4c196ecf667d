package model

// FamilyMember is one person in the household.
type FamilyMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Avatar is an opaque token (a colour code or an initial); the client
	// decides how to render it.
	Avatar string `json:"avatar"`
}

// MemberByID resolves a weak member reference against a roster.
// An empty or unknown id returns ok=false; callers render the reference as
// unassigned rather than treating it as an error.
func MemberByID(members []FamilyMember, id string) (FamilyMember, bool) {
	if id == "" {
		return FamilyMember{}, false
	}
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return FamilyMember{}, false
}

// OnboardMemberRequest is the payload for completing onboarding.
type OnboardMemberRequest struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Constraints
const (
	MaxMemberNameLength = 50
)
