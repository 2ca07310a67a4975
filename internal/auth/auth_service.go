// Package auth is the mock identity provider: it authenticates against the
// in-memory identity store without any real credential checking and keeps
// the logged-in identity snapshot in the persisted session store under a
// fixed key, the way the original app used browser local storage.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
	"github.com/Rafiffarihan13/SaveFood/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionKey names the single persisted identity record.
const SessionKey = "savefood_user"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrValidation         = errors.New("invalid registration input")
	ErrNotLoggedIn        = errors.New("no active session")
	ErrIdentityNotFound   = errors.New("identity not found")
)

// SessionStore is the persisted key-value blob storage behind the session
// snapshot.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

type RegisterInput struct {
	Role     models.Role `json:"role"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Password string      `json:"password"`
}

type UpdateProfileInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
}

type Service interface {
	Login(ctx context.Context, email, password string, role models.Role) (models.Identity, bool, error)
	Register(ctx context.Context, in RegisterInput) (models.Identity, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.Identity, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (models.Identity, error)
	DeleteProfile(ctx context.Context, id string) error
}

type service struct {
	identities *store.IdentityStore
	sessions   SessionStore
	log        *zap.Logger
}

func New(identities *store.IdentityStore, sessions SessionStore, log *zap.Logger) Service {
	return &service{identities: identities, sessions: sessions, log: log}
}

// Login authenticates by email and role alone; the password is required but
// never checked against anything. The second return reports whether this
// was the identity's first login.
func (s *service) Login(ctx context.Context, email, password string, role models.Role) (models.Identity, bool, error) {
	if email == "" || password == "" {
		return models.Identity{}, false, ErrInvalidCredentials
	}
	ident, ok := s.identities.FindByEmail(email, role)
	if !ok {
		return models.Identity{}, false, ErrInvalidCredentials
	}

	ident, firstLogin, err := s.identities.MarkLoggedIn(ident.ID)
	if err != nil {
		return models.Identity{}, false, err
	}

	if err := s.writeSession(ctx, ident); err != nil {
		return models.Identity{}, false, err
	}

	s.log.Info("login", zap.String("id", ident.ID), zap.String("role", string(ident.Role)))
	return ident, firstLogin, nil
}

// Register creates the account but does not log it in.
func (s *service) Register(ctx context.Context, in RegisterInput) (models.Identity, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return models.Identity{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if in.Role != models.RoleUser && in.Role != models.RolePartner {
		return models.Identity{}, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	ident := models.Identity{
		ID:    fmt.Sprintf("%s-%s", rolePrefix(in.Role), uuid.NewString()),
		Role:  in.Role,
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	if in.Role == models.RolePartner {
		// New partners start with placeholder venue details to complete later.
		ident.Address = "Alamat Baru (mohon lengkapi)"
		ident.VenueType = "Restoran"
		ident.Contact = in.Phone
		ident.Lat = -6.200
		ident.Lng = 106.800
	}

	if err := s.identities.Insert(ident); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return models.Identity{}, ErrEmailTaken
		}
		return models.Identity{}, err
	}

	s.log.Info("registered", zap.String("id", ident.ID), zap.String("role", string(ident.Role)))
	return ident, nil
}

func (s *service) Logout(ctx context.Context) error {
	return s.sessions.Delete(ctx, SessionKey)
}

// Current restores the persisted session snapshot, refreshed against the
// identity store when the account still exists.
func (s *service) Current(ctx context.Context) (models.Identity, error) {
	payload, err := s.sessions.Get(ctx, SessionKey)
	if err != nil {
		return models.Identity{}, ErrNotLoggedIn
	}
	var ident models.Identity
	if err := json.Unmarshal(payload, &ident); err != nil {
		return models.Identity{}, fmt.Errorf("corrupt session record: %w", err)
	}
	if fresh, ok := s.identities.Get(ident.ID); ok {
		return fresh, nil
	}
	return ident, nil
}

func (s *service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (models.Identity, error) {
	ident, ok := s.identities.Get(id)
	if !ok {
		return models.Identity{}, ErrIdentityNotFound
	}
	if in.Name != "" {
		ident.Name = in.Name
	}
	if in.Phone != "" {
		ident.Phone = in.Phone
	}
	if in.AvatarURL != "" {
		ident.AvatarURL = in.AvatarURL
	}
	if ident.Role == models.RolePartner {
		if in.Address != "" {
			ident.Address = in.Address
		}
		if in.Contact != "" {
			ident.Contact = in.Contact
		}
	}
	if err := s.identities.Update(ident); err != nil {
		return models.Identity{}, err
	}
	if err := s.refreshSessionIfCurrent(ctx, ident); err != nil {
		return models.Identity{}, err
	}
	return ident, nil
}

func (s *service) DeleteProfile(ctx context.Context, id string) error {
	if err := s.identities.Delete(id); err != nil {
		return ErrIdentityNotFound
	}
	current, err := s.Current(ctx)
	if err == nil && current.ID == id {
		return s.sessions.Delete(ctx, SessionKey)
	}
	return nil
}

func (s *service) writeSession(ctx context.Context, ident models.Identity) error {
	payload, err := json.Marshal(ident)
	if err != nil {
		return err
	}
	return s.sessions.Put(ctx, SessionKey, payload)
}

func (s *service) refreshSessionIfCurrent(ctx context.Context, ident models.Identity) error {
	payload, err := s.sessions.Get(ctx, SessionKey)
	if err != nil {
		return nil // nobody logged in
	}
	var current models.Identity
	if err := json.Unmarshal(payload, &current); err != nil || current.ID != ident.ID {
		return nil
	}
	return s.writeSession(ctx, ident)
}

func rolePrefix(role models.Role) string {
	if role == models.RolePartner {
		return "resto"
	}
	return "user"
}
