package gluster

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	sender *fakeSender
	client *Client
}

func (s *ClientTestSuite) SetupTest() {
	s.sender = &fakeSender{}
	s.client = NewClient(s.sender, testGlusterConfig())
}

func TestClient(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestCreateProject_Success() {
	// Arrange
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		s.Equal(http.MethodPost, method)
		s.Equal("http://keystone:35357/v3/projects", url)
		s.Equal("tok", header.Get("X-Auth-Token"))

		var req map[string]map[string]any
		s.Require().NoError(json.Unmarshal(body, &req))
		s.Equal("op_tenant", req["project"]["name"])
		s.Equal(true, req["project"]["enabled"])

		return jsonStatus(http.StatusCreated, `{"project":{"id":"t-42","name":"op_tenant"}}`), nil
	}

	// Act
	project, err := s.client.CreateProject(context.Background(), "tok", "op_tenant")

	// Assert
	s.NoError(err)
	s.Equal("t-42", project.ID)
	s.Equal("op_tenant", project.Name)
}

func (s *ClientTestSuite) TestCreateProject_Conflict() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		return status(http.StatusConflict), nil
	}

	_, err := s.client.CreateProject(context.Background(), "tok", "op_tenant")

	s.ErrorIs(err, ErrConflict)
}

func (s *ClientTestSuite) TestCreateProject_Unauthorized() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		return status(http.StatusUnauthorized), nil
	}

	_, err := s.client.CreateProject(context.Background(), "tok", "op_tenant")

	s.ErrorIs(err, ErrUnauthorized)
}

func (s *ClientTestSuite) TestDeleteProject_SubstitutesTenantID() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		s.Equal(http.MethodDelete, method)
		s.Equal("http://keystone:35357/v3/projects/t-42", url)
		return status(http.StatusNoContent), nil
	}

	s.NoError(s.client.DeleteProject(context.Background(), "tok", "t-42"))
}

func (s *ClientTestSuite) TestSetQuota_HeaderAndPath() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		s.Equal(http.MethodPut, method)
		s.Equal("http://swift:8080/v1/AUTH_t-42", url)
		s.Equal("5242880", header.Get("X-Container-Meta-Quota-Bytes"))
		return status(http.StatusAccepted), nil
	}

	s.NoError(s.client.SetQuota(context.Background(), "tok", "t-42", 5*1024*1024))
}

func (s *ClientTestSuite) TestSetQuota_ForbiddenIsUnauthorized() {
	// The swift proxy reports a stale token as 403.
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		return status(http.StatusForbidden), nil
	}

	err := s.client.SetQuota(context.Background(), "tok", "t-42", 1024)

	s.ErrorIs(err, ErrUnauthorized)
}

func (s *ClientTestSuite) TestCreateUser_BodyCarriesDefaultProject() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		var req map[string]map[string]any
		s.Require().NoError(json.Unmarshal(body, &req))
		s.Equal("user-1", req["user"]["name"])
		s.Equal("t-42", req["user"]["default_project_id"])
		return status(http.StatusCreated), nil
	}

	s.NoError(s.client.CreateUser(context.Background(), "tok", "t-42", "user-1", "pw"))
}

func (s *ClientTestSuite) TestFindUserIDByName_Success() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		s.Equal("http://keystone:35357/v3/users?name=user-1", url)
		return jsonStatus(http.StatusOK, `{"users":[{"id":"u-7"}]}`), nil
	}

	userID, err := s.client.FindUserIDByName(context.Background(), "tok", "user-1")

	s.NoError(err)
	s.Equal("u-7", userID)
}

func (s *ClientTestSuite) TestFindUserIDByName_EmptyResult() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		return jsonStatus(http.StatusOK, `{"users":[]}`), nil
	}

	_, err := s.client.FindUserIDByName(context.Background(), "tok", "user-1")

	s.ErrorIs(err, ErrNotFound)
}

func (s *ClientTestSuite) TestAssignRole_SubstitutesAllPlaceholders() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		s.Equal("http://keystone:35357/v3/projects/t-42/users/u-7/roles/r-3", url)
		return status(http.StatusNoContent), nil
	}

	s.NoError(s.client.AssignRole(context.Background(), "tok", "t-42", "u-7", "r-3"))
}

func (s *ClientTestSuite) TestAssignRole_Conflict() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		return status(http.StatusConflict), nil
	}

	err := s.client.AssignRole(context.Background(), "tok", "t-42", "u-7", "r-3")

	s.ErrorIs(err, ErrConflict)
}

func (s *ClientTestSuite) TestFindRoleIDByName_Success() {
	s.sender.handler = func(method, url string, header http.Header, body []byte) (*Response, error) {
		s.Equal("http://keystone:35357/v3/roles?name=_member_", url)
		return jsonStatus(http.StatusOK, `{"roles":[{"id":"r-3"}]}`), nil
	}

	roleID, err := s.client.FindRoleIDByName(context.Background(), "tok", "_member_")

	s.NoError(err)
	s.Equal("r-3", roleID)
}
