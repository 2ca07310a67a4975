package store

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
)

var (
	ErrEmailTaken = errors.New("email is already registered")
	ErrNotPartner = errors.New("identity is not a partner")
)

// IdentityStore holds users and partners keyed by id, with an email index
// shared across both roles so an address can register only once.
type IdentityStore struct {
	mu         sync.RWMutex
	identities map[string]*models.Identity
	byEmail    map[string]string // normalized email -> identity id
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		identities: make(map[string]*models.Identity),
		byEmail:    make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *IdentityStore) Insert(id models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := normalizeEmail(id.Email)
	if _, taken := s.byEmail[email]; taken {
		return ErrEmailTaken
	}
	s.identities[id.ID] = &id
	s.byEmail[email] = id.ID
	return nil
}

func (s *IdentityStore) Get(id string) (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ident, ok := s.identities[id]
	if !ok {
		return models.Identity{}, false
	}
	return *ident, true
}

// FindByEmail looks up an identity by address and role.
func (s *IdentityStore) FindByEmail(email string, role models.Role) (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return models.Identity{}, false
	}
	ident := s.identities[id]
	if ident.Role != role {
		return models.Identity{}, false
	}
	return *ident, true
}

// Role reports the role of the given identity, if it exists.
func (s *IdentityStore) Role(id string) (models.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ident, ok := s.identities[id]
	if !ok {
		return "", false
	}
	return ident.Role, true
}

// Update replaces the stored identity. The email index follows an address
// change as long as the new address is free.
func (s *IdentityStore) Update(id models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.identities[id.ID]
	if !ok {
		return ErrNotFound
	}
	oldEmail, newEmail := normalizeEmail(prev.Email), normalizeEmail(id.Email)
	if oldEmail != newEmail {
		if _, taken := s.byEmail[newEmail]; taken {
			return ErrEmailTaken
		}
		delete(s.byEmail, oldEmail)
		s.byEmail[newEmail] = id.ID
	}
	s.identities[id.ID] = &id
	return nil
}

func (s *IdentityStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ident, ok := s.identities[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.byEmail, normalizeEmail(ident.Email))
	delete(s.identities, id)
	return nil
}

// MarkLoggedIn flips the first-login flag and reports whether this was the
// identity's first login.
func (s *IdentityStore) MarkLoggedIn(id string) (models.Identity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ident, ok := s.identities[id]
	if !ok {
		return models.Identity{}, false, ErrNotFound
	}
	first := !ident.HasLoggedIn
	ident.HasLoggedIn = true
	return *ident, first, nil
}

// AddPoints increments a partner's reward-point counter.
func (s *IdentityStore) AddPoints(partnerID string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ident, ok := s.identities[partnerID]
	if !ok {
		return ErrNotFound
	}
	if ident.Role != models.RolePartner {
		return ErrNotPartner
	}
	ident.RewardPoints += points
	return nil
}

// PopularPartners returns up to limit partners ranked by reward points.
func (s *IdentityStore) PopularPartners(limit int) []models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var partners []models.Identity
	for _, ident := range s.identities {
		if ident.Role == models.RolePartner {
			partners = append(partners, *ident)
		}
	}
	sort.Slice(partners, func(i, j int) bool {
		if partners[i].RewardPoints != partners[j].RewardPoints {
			return partners[i].RewardPoints > partners[j].RewardPoints
		}
		return partners[i].ID < partners[j].ID
	})
	if len(partners) > limit {
		partners = partners[:limit]
	}
	return partners
}
