package gluster

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/paasops/glusterfs-broker/pkg/logger"
)

// Operation is one remote call executed with the current token.
type Operation func(ctx context.Context, token string) error

// Invoker is the single place that encodes the retry-after-reauth
// policy: a call whose outcome is unauthorized forces one session
// refresh and is re-executed exactly once. The retry bound is local to
// each Invoke call.
type Invoker struct {
	sessions *SessionManager
	log      *logger.Logger
}

func NewInvoker(sessions *SessionManager, log *logger.Logger) *Invoker {
	return &Invoker{sessions: sessions, log: log}
}

// Invoke runs op with a valid token attached, refreshing the session
// up front when needed and once more after an unauthorized outcome. A
// second unauthorized outcome is fatal.
func (v *Invoker) Invoke(ctx context.Context, name string, op Operation) error {
	if !v.sessions.Valid() {
		if err := v.sessions.Refresh(ctx, ""); err != nil {
			return err
		}
	}

	token := v.sessions.Token()
	err := op(ctx, token)
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}

	v.log.Warn("token rejected by cluster, re-authenticating once",
		zap.String("operation", name))
	if err := v.sessions.Refresh(ctx, token); err != nil {
		return err
	}

	if err := op(ctx, v.sessions.Token()); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return fmt.Errorf("%s: %w", name, ErrAuthRejected)
		}
		return err
	}
	return nil
}
