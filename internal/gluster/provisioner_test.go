package gluster

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/paasops/glusterfs-broker/internal/domain"
	"github.com/paasops/glusterfs-broker/internal/mocks"
	"github.com/paasops/glusterfs-broker/pkg/logger"
)

type ProvisionerTestSuite struct {
	suite.Suite
	sender      *fakeSender
	tenants     *mocks.InstanceRepository
	provisioner *Provisioner
}

func (s *ProvisionerTestSuite) SetupTest() {
	s.sender = &fakeSender{}
	s.tenants = new(mocks.InstanceRepository)

	cfg := testGlusterConfig()
	log := logger.NewNop()
	sessions := NewSessionManager(s.sender, cfg, log)
	plans := domain.NewPlanCatalog([]domain.Plan{
		{ID: "planA", QuotaBytes: 5 * 1024 * 1024},
		{ID: "planB", QuotaBytes: 100 * 1024 * 1024},
	})

	s.provisioner = NewProvisioner(
		NewInvoker(sessions, log),
		NewClient(s.sender, cfg),
		plans,
		s.tenants,
		cfg.RoleName,
		log,
	)
}

func TestProvisioner(t *testing.T) {
	suite.Run(t, new(ProvisionerTestSuite))
}

// route answers auth requests and dispatches everything else to next.
func (s *ProvisionerTestSuite) route(next func(method, url string) (*Response, error)) {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		if strings.Contains(url, "/auth/tokens") {
			return authSuccess("tok", time.Hour), nil
		}
		return next(method, url)
	}
}

func (s *ProvisionerTestSuite) TestCreateTenant_Success() {
	// Arrange
	s.route(func(method, url string) (*Response, error) {
		switch {
		case method == http.MethodPost && strings.HasSuffix(url, "/v3/projects"):
			return jsonStatus(http.StatusCreated, `{"project":{"id":"t-42","name":"`+TenantName("abc-123")+`"}}`), nil
		case method == http.MethodPut && strings.Contains(url, "AUTH_t-42"):
			return status(http.StatusAccepted), nil
		}
		s.Failf("unexpected request", "%s %s", method, url)
		return status(http.StatusInternalServerError), nil
	})

	// Act
	tenant, err := s.provisioner.CreateTenant(context.Background(), "abc-123", "planA")

	// Assert
	s.NoError(err)
	s.Equal("abc-123", tenant.InstanceID)
	s.Equal("t-42", tenant.TenantID)
	s.Equal(TenantName("abc-123"), tenant.TenantName)
	s.Equal(1, s.sender.countURL("AUTH_t-42"))
}

func (s *ProvisionerTestSuite) TestCreateTenant_Conflict() {
	// Arrange
	s.route(func(method, url string) (*Response, error) {
		return status(http.StatusConflict), nil
	})

	// Act
	_, err := s.provisioner.CreateTenant(context.Background(), "abc-123", "planA")

	// Assert: terminal, no quota call issued
	s.ErrorIs(err, ErrConflict)
	s.Equal(0, s.sender.countURL("AUTH_"))
}

func (s *ProvisionerTestSuite) TestCreateTenant_QuotaFailureSurfacesOrphan() {
	// Arrange: project creation succeeds, quota call fails
	s.route(func(method, url string) (*Response, error) {
		if method == http.MethodPost && strings.HasSuffix(url, "/v3/projects") {
			return jsonStatus(http.StatusCreated, `{"project":{"id":"t-42","name":"op_x"}}`), nil
		}
		return status(http.StatusInternalServerError), nil
	})

	// Act
	_, err := s.provisioner.CreateTenant(context.Background(), "abc-123", "planA")

	// Assert
	s.ErrorIs(err, ErrQuotaNotSet)
}

func (s *ProvisionerTestSuite) TestCreateTenant_UnknownPlanSurfacesOrphan() {
	// Arrange
	s.route(func(method, url string) (*Response, error) {
		return jsonStatus(http.StatusCreated, `{"project":{"id":"t-42","name":"op_x"}}`), nil
	})

	// Act
	_, err := s.provisioner.CreateTenant(context.Background(), "abc-123", "unknown-plan")

	// Assert: the project exists remotely but the plan is invalid
	s.ErrorIs(err, ErrQuotaNotSet)
	s.ErrorIs(err, domain.ErrUnknownPlan)
}

func (s *ProvisionerTestSuite) TestDeleteTenant_Success() {
	// Arrange
	s.tenants.On("TenantByInstanceID", mock.Anything, "abc-123").
		Return(&domain.Tenant{InstanceID: "abc-123", TenantID: "t-42"}, nil)
	s.route(func(method, url string) (*Response, error) {
		s.Equal(http.MethodDelete, method)
		s.Equal("http://keystone:35357/v3/projects/t-42", url)
		return status(http.StatusNoContent), nil
	})

	// Act
	err := s.provisioner.DeleteTenant(context.Background(), "abc-123")

	// Assert
	s.NoError(err)
	s.tenants.AssertExpectations(s.T())
}

func (s *ProvisionerTestSuite) TestDeleteTenant_MissingRecord() {
	s.tenants.On("TenantByInstanceID", mock.Anything, "abc-123").Return(nil, nil)

	err := s.provisioner.DeleteTenant(context.Background(), "abc-123")

	s.ErrorIs(err, ErrNotFound)
	s.Empty(s.sender.sent())
}

func (s *ProvisionerTestSuite) TestGrantAccess_ResolvesRoleFreshEachCall() {
	// Arrange
	s.route(func(method, url string) (*Response, error) {
		switch {
		case strings.Contains(url, "/v3/roles?name="):
			return jsonStatus(http.StatusOK, `{"roles":[{"id":"r-3"}]}`), nil
		case strings.Contains(url, "/roles/r-3"):
			return status(http.StatusNoContent), nil
		}
		s.Failf("unexpected request", "%s %s", method, url)
		return status(http.StatusInternalServerError), nil
	})

	// Act
	s.Require().NoError(s.provisioner.GrantAccess(context.Background(), "t-42", "u-7"))
	s.Require().NoError(s.provisioner.GrantAccess(context.Background(), "t-42", "u-7"))

	// Assert: role lookup ran once per grant, never cached
	s.Equal(2, s.sender.countURL("/v3/roles?name="))
}

func (s *ProvisionerTestSuite) TestDeleteCredential_ResolvesUserFirst() {
	// Arrange
	s.route(func(method, url string) (*Response, error) {
		switch {
		case strings.Contains(url, "/v3/users?name="):
			return jsonStatus(http.StatusOK, `{"users":[{"id":"u-7"}]}`), nil
		case method == http.MethodDelete && strings.HasSuffix(url, "/v3/users/u-7"):
			return status(http.StatusNoContent), nil
		}
		s.Failf("unexpected request", "%s %s", method, url)
		return status(http.StatusInternalServerError), nil
	})

	// Act
	err := s.provisioner.DeleteCredential(context.Background(), "someuser")

	// Assert
	s.NoError(err)
	s.Equal(1, s.sender.countURL("/v3/users/u-7"))
}
