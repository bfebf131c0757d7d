package gluster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/paasops/glusterfs-broker/internal/config"
	"github.com/paasops/glusterfs-broker/pkg/logger"
)

const subjectTokenHeader = "X-Subject-Token"

// authSession is the current identity token with its validity window.
type authSession struct {
	token     string
	issuedAt  time.Time
	expiresAt time.Time
	location  *time.Location
}

// valid reports whether the session can authenticate a call at now.
func (s authSession) valid(now time.Time) bool {
	if s.token == "" || s.expiresAt.IsZero() {
		return false
	}
	loc := s.location
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Before(s.expiresAt)
}

// SessionManager owns the admin token for the cluster. Refresh is the
// only mutator and is single-flight: concurrent callers serialize on
// the lock, and whoever acquires it after a refresh completed sees the
// fresh token and skips the duplicate request.
type SessionManager struct {
	sender Sender
	cfg    *config.GlusterConfig
	log    *logger.Logger

	mu      sync.Mutex
	session authSession
}

func NewSessionManager(sender Sender, cfg *config.GlusterConfig, log *logger.Logger) *SessionManager {
	return &SessionManager{sender: sender, cfg: cfg, log: log}
}

// Valid reports whether the current session invariant holds.
func (m *SessionManager) Valid() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.valid(time.Now())
}

// Token returns the current token value. Empty until the first
// successful refresh.
func (m *SessionManager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.token
}

type authUserDomain struct {
	Name string `json:"name"`
}

type authUser struct {
	Name     string         `json:"name"`
	Domain   authUserDomain `json:"domain"`
	Password string         `json:"password"`
}

type authRequest struct {
	Auth struct {
		Identity struct {
			Methods  []string `json:"methods"`
			Password struct {
				User authUser `json:"user"`
			} `json:"password"`
		} `json:"identity"`
	} `json:"auth"`
}

type tokenResponse struct {
	Token struct {
		IssuedAt  string `json:"issued_at"`
		ExpiresAt string `json:"expires_at"`
	} `json:"token"`
}

// Refresh re-authenticates against the identity service and replaces
// the session. stale is the token the caller observed failing; when
// another caller already replaced it, the refresh is skipped. Pass ""
// to refresh only when the session is invalid. On failure the previous
// session is left untouched.
func (m *SessionManager) Refresh(ctx context.Context, stale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// A concurrent caller may have refreshed while this one waited on
	// the lock.
	if m.session.token != stale && m.session.valid(time.Now()) {
		return nil
	}

	var req authRequest
	req.Auth.Identity.Methods = []string{"password"}
	req.Auth.Identity.Password.User = authUser{
		Name:     m.cfg.Username,
		Domain:   authUserDomain{Name: m.cfg.DomainName},
		Password: m.cfg.Password,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: encode auth request: %v", ErrAuthFailed, err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	resp, err := m.sender.Send(ctx, http.MethodPost, m.cfg.AuthURL+m.cfg.URIAuth, header, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	if resp.Status != http.StatusOK && resp.Status != http.StatusCreated {
		return fmt.Errorf("%w: identity service responded %d", ErrAuthFailed, resp.Status)
	}

	token := resp.Header.Get(subjectTokenHeader)
	if token == "" {
		return fmt.Errorf("%w: response missing %s header", ErrAuthFailed, subjectTokenHeader)
	}

	var parsed tokenResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return fmt.Errorf("%w: decode token response: %v", ErrAuthFailed, err)
	}
	issuedAt, err := time.Parse(time.RFC3339Nano, parsed.Token.IssuedAt)
	if err != nil {
		return fmt.Errorf("%w: parse issued_at %q: %v", ErrAuthFailed, parsed.Token.IssuedAt, err)
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, parsed.Token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("%w: parse expires_at %q: %v", ErrAuthFailed, parsed.Token.ExpiresAt, err)
	}

	location, err := time.LoadLocation(m.cfg.Timezone)
	if err != nil {
		return fmt.Errorf("%w: load timezone %q: %v", ErrAuthFailed, m.cfg.Timezone, err)
	}

	m.session = authSession{
		token:     token,
		issuedAt:  issuedAt,
		expiresAt: expiresAt,
		location:  location,
	}
	m.log.Debug("identity token refreshed",
		zap.Time("issued_at", issuedAt),
		zap.Time("expires_at", expiresAt))
	return nil
}
