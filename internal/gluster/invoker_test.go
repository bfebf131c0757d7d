package gluster

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/paasops/glusterfs-broker/pkg/logger"
)

type InvokerTestSuite struct {
	suite.Suite
	sender  *fakeSender
	invoker *Invoker
}

func (s *InvokerTestSuite) SetupTest() {
	s.sender = &fakeSender{
		handler: func(method, url string, header http.Header, body []byte) (*Response, error) {
			return authSuccess("tok", time.Hour), nil
		},
	}
	sessions := NewSessionManager(s.sender, testGlusterConfig(), logger.NewNop())
	s.invoker = NewInvoker(sessions, logger.NewNop())
}

func TestInvoker(t *testing.T) {
	suite.Run(t, new(InvokerTestSuite))
}

func (s *InvokerTestSuite) TestInvoke_RefreshesBeforeFirstCall() {
	// Arrange
	var tokens []string

	// Act
	err := s.invoker.Invoke(context.Background(), "op", func(ctx context.Context, token string) error {
		tokens = append(tokens, token)
		return nil
	})

	// Assert
	s.NoError(err)
	s.Equal([]string{"tok"}, tokens)
	s.Len(s.sender.sent(), 1)
}

func (s *InvokerTestSuite) TestInvoke_BoundedRetryOnUnauthorized() {
	// Arrange: the operation is unauthorized no matter what
	executions := 0

	// Act
	err := s.invoker.Invoke(context.Background(), "op", func(ctx context.Context, token string) error {
		executions++
		return ErrUnauthorized
	})

	// Assert: exactly one re-auth and one retry, then fatal
	s.ErrorIs(err, ErrAuthRejected)
	s.NotErrorIs(err, ErrUnauthorized)
	s.Equal(2, executions)
	s.Len(s.sender.sent(), 2) // initial refresh + forced refresh
}

func (s *InvokerTestSuite) TestInvoke_RecoversAfterSingleUnauthorized() {
	// Arrange
	executions := 0

	// Act
	err := s.invoker.Invoke(context.Background(), "op", func(ctx context.Context, token string) error {
		executions++
		if executions == 1 {
			return ErrUnauthorized
		}
		return nil
	})

	// Assert
	s.NoError(err)
	s.Equal(2, executions)
}

func (s *InvokerTestSuite) TestInvoke_ConflictNotRetried() {
	executions := 0

	err := s.invoker.Invoke(context.Background(), "op", func(ctx context.Context, token string) error {
		executions++
		return ErrConflict
	})

	s.ErrorIs(err, ErrConflict)
	s.Equal(1, executions)
}

func (s *InvokerTestSuite) TestInvoke_AuthFailurePropagates() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		return status(http.StatusUnauthorized), nil
	}

	err := s.invoker.Invoke(context.Background(), "op", func(ctx context.Context, token string) error {
		s.Fail("operation must not run without a session")
		return nil
	})

	s.ErrorIs(err, ErrAuthFailed)
}

func (s *InvokerTestSuite) TestInvoke_SkipsRefreshWhileSessionValid() {
	// Arrange: one call establishes the session
	s.Require().NoError(s.invoker.Invoke(context.Background(), "op", func(ctx context.Context, token string) error {
		return nil
	}))

	// Act
	err := s.invoker.Invoke(context.Background(), "op", func(ctx context.Context, token string) error {
		return nil
	})

	// Assert: no second authentication request
	s.NoError(err)
	s.Len(s.sender.sent(), 1)
}
