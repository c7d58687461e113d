// Package session authenticates admins and pilgrims and tracks who is
// logged in. A login yields an immutable entity.Session and a signed token;
// the token stays valid until Logout removes it from the registry.
package session

import (
	"context"
	"errors"
	"fmt"

	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/gateway"
	"hajj-guide/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or revoked session")
)

type Manager struct {
	admins   gateway.AdminGateway
	tokens   *jwt.JWTService
	registry Registry
	log      *logrus.Logger
}

func NewManager(admins gateway.AdminGateway, tokens *jwt.JWTService, registry Registry, log *logrus.Logger) *Manager {
	return &Manager{
		admins:   admins,
		tokens:   tokens,
		registry: registry,
		log:      log,
	}
}

// LoginAdmin checks the admin's password and opens an admin session.
func (m *Manager) LoginAdmin(ctx context.Context, adminID int64, password string) (entity.Session, string, error) {
	ok, err := m.admins.ValidateAdmin(ctx, adminID, password)
	if err != nil {
		return entity.Session{}, "", err
	}
	if !ok {
		m.log.Warnf("Rejected admin login: id=%d", adminID)
		return entity.Session{}, "", ErrInvalidCredentials
	}
	return m.open(ctx, entity.RoleAdmin, adminID)
}

// LoginPilgrim opens a pilgrim session for any existing pilgrim id.
func (m *Manager) LoginPilgrim(ctx context.Context, pilgrimID int64) (entity.Session, string, error) {
	ok, err := m.admins.ValidatePilgrim(ctx, pilgrimID)
	if err != nil {
		return entity.Session{}, "", err
	}
	if !ok {
		m.log.Warnf("Rejected pilgrim login: id=%d", pilgrimID)
		return entity.Session{}, "", ErrInvalidCredentials
	}
	return m.open(ctx, entity.RolePilgrim, pilgrimID)
}

// Resolve returns the session behind a token that is still logged in.
func (m *Manager) Resolve(ctx context.Context, token string) (entity.Session, error) {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return entity.Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	s, found, err := m.registry.Get(ctx, claims.TokenID)
	if err != nil {
		m.log.Warnf("Failed to look up session %s: %+v", claims.TokenID, err)
		return entity.Session{}, err
	}
	if !found {
		return entity.Session{}, ErrInvalidSession
	}

	subject, _ := claims.SubjectID()
	if s.Role != claims.Role || s.ID != subject {
		m.log.Warnf("Session %s does not match its token", claims.TokenID)
		return entity.Session{}, ErrInvalidSession
	}
	return s, nil
}

// Logout ends the session behind token. Logging out a session that is
// already gone is not an error.
func (m *Manager) Logout(ctx context.Context, token string) error {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	removed, err := m.registry.Delete(ctx, claims.TokenID)
	if err != nil {
		m.log.Warnf("Failed to remove session %s: %+v", claims.TokenID, err)
		return err
	}
	if removed {
		m.log.Infof("Session closed: role=%s, subject=%s", claims.Role, claims.Subject)
	}
	return nil
}

func (m *Manager) open(ctx context.Context, role entity.SessionRole, id int64) (entity.Session, string, error) {
	token, claims, err := m.tokens.GenerateSessionToken(role, id)
	if err != nil {
		m.log.Warnf("Failed to sign session token: %+v", err)
		return entity.Session{}, "", err
	}

	s := entity.Session{
		Role:     role,
		ID:       id,
		IssuedAt: claims.IssuedAt.Time,
	}
	if err := m.registry.Put(ctx, claims.TokenID, s); err != nil {
		m.log.Warnf("Failed to register session: %+v", err)
		return entity.Session{}, "", err
	}

	m.log.Infof("Session opened: role=%s, id=%d", role, id)
	return s, token, nil
}
