package gluster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/paasops/glusterfs-broker/internal/config"
)

const (
	authTokenHeader  = "X-Auth-Token"
	quotaBytesHeader = "X-Container-Meta-Quota-Bytes"
)

// Project is the cluster's view of a created tenant.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client is the typed gateway for the fixed set of cluster operations.
// Each method is a single request/response mapping: path-template
// substitution, body construction and status classification. Retry and
// auth policy live in the Invoker, never here.
type Client struct {
	sender Sender
	cfg    *config.GlusterConfig
}

func NewClient(sender Sender, cfg *config.GlusterConfig) *Client {
	return &Client{sender: sender, cfg: cfg}
}

func authHeader(token string, withBody bool) http.Header {
	header := http.Header{}
	header.Set(authTokenHeader, token)
	if withBody {
		header.Set("Content-Type", "application/json")
	}
	return header
}

type createProjectRequest struct {
	Project struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Enabled     bool   `json:"enabled"`
	} `json:"project"`
}

type createProjectResponse struct {
	Project Project `json:"project"`
}

// CreateProject creates a tenant project and returns its remote id and
// name. A name collision is a conflict.
func (c *Client) CreateProject(ctx context.Context, token, name string) (*Project, error) {
	var req createProjectRequest
	req.Project.Name = name
	req.Project.Description = "Glusterfs Service"
	req.Project.Enabled = true
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.sender.Send(ctx, http.MethodPost, c.cfg.Endpoint+c.cfg.URICreateTenant, authHeader(token, true), body)
	if err != nil {
		return nil, err
	}
	if err := classify(resp.Status, http.StatusOK, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("create project %q: %w", name, err)
	}

	var parsed createProjectResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return nil, fmt.Errorf("create project %q: decode response: %w", name, err)
	}
	return &parsed.Project, nil
}

func (c *Client) DeleteProject(ctx context.Context, token, tenantID string) error {
	url := c.cfg.Endpoint + strings.ReplaceAll(c.cfg.URIDeleteTenant, "#TENANT_ID", tenantID)
	resp, err := c.sender.Send(ctx, http.MethodDelete, url, authHeader(token, false), nil)
	if err != nil {
		return err
	}
	if err := classify(resp.Status, http.StatusNoContent); err != nil {
		return fmt.Errorf("delete project %s: %w", tenantID, err)
	}
	return nil
}

// SetQuota sets the account quota on the swift proxy. The proxy reports
// a stale token as 403, so that status is classified unauthorized here.
func (c *Client) SetQuota(ctx context.Context, token, tenantID string, quotaBytes int64) error {
	header := authHeader(token, true)
	header.Set(quotaBytesHeader, strconv.FormatInt(quotaBytes, 10))

	url := c.cfg.SwiftProxy + strings.ReplaceAll(c.cfg.URIAccount, "#TENANT_ID", tenantID)
	resp, err := c.sender.Send(ctx, http.MethodPut, url, header, nil)
	if err != nil {
		return err
	}
	if resp.Status == http.StatusForbidden {
		return fmt.Errorf("set quota for %s: %w", tenantID, ErrUnauthorized)
	}
	if err := classify(resp.Status, http.StatusAccepted, http.StatusCreated); err != nil {
		return fmt.Errorf("set quota for %s: %w", tenantID, err)
	}
	return nil
}

type createUserRequest struct {
	User struct {
		Name             string `json:"name"`
		Email            string `json:"email"`
		Enabled          bool   `json:"enabled"`
		Password         string `json:"password"`
		DefaultProjectID string `json:"default_project_id"`
	} `json:"user"`
}

// CreateUser creates a cluster user with the tenant as its default
// project. An existing username is a conflict.
func (c *Client) CreateUser(ctx context.Context, token, tenantID, username, password string) error {
	var req createUserRequest
	req.User.Name = username
	req.User.Enabled = true
	req.User.Password = password
	req.User.DefaultProjectID = tenantID
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	resp, err := c.sender.Send(ctx, http.MethodPost, c.cfg.Endpoint+c.cfg.URICreateUsers, authHeader(token, true), body)
	if err != nil {
		return err
	}
	if err := classify(resp.Status, http.StatusOK, http.StatusCreated); err != nil {
		return fmt.Errorf("create user %q: %w", username, err)
	}
	return nil
}

func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	url := c.cfg.Endpoint + strings.ReplaceAll(c.cfg.URIDeleteUsers, "#USER_ID", userID)
	resp, err := c.sender.Send(ctx, http.MethodDelete, url, authHeader(token, false), nil)
	if err != nil {
		return err
	}
	if err := classify(resp.Status, http.StatusNoContent); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}

type userListResponse struct {
	Users []struct {
		ID string `json:"id"`
	} `json:"users"`
}

// FindUserIDByName resolves a username to the cluster user id. An empty
// result set is a not-found error.
func (c *Client) FindUserIDByName(ctx context.Context, token, username string) (string, error) {
	url := c.cfg.Endpoint + strings.ReplaceAll(c.cfg.URIUserInfo, "#USER_NAME", username)
	resp, err := c.sender.Send(ctx, http.MethodGet, url, authHeader(token, false), nil)
	if err != nil {
		return "", err
	}
	if err := classify(resp.Status, http.StatusOK); err != nil {
		return "", fmt.Errorf("find user %q: %w", username, err)
	}

	var parsed userListResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return "", fmt.Errorf("find user %q: decode response: %w", username, err)
	}
	if len(parsed.Users) == 0 {
		return "", fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return parsed.Users[0].ID, nil
}

type roleListResponse struct {
	Roles []struct {
		ID string `json:"id"`
	} `json:"roles"`
}

func (c *Client) FindRoleIDByName(ctx context.Context, token, roleName string) (string, error) {
	url := c.cfg.Endpoint + strings.ReplaceAll(c.cfg.URIRoleInfo, "#ROLE_NAME", roleName)
	resp, err := c.sender.Send(ctx, http.MethodGet, url, authHeader(token, false), nil)
	if err != nil {
		return "", err
	}
	if err := classify(resp.Status, http.StatusOK); err != nil {
		return "", fmt.Errorf("find role %q: %w", roleName, err)
	}

	var parsed roleListResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return "", fmt.Errorf("find role %q: decode response: %w", roleName, err)
	}
	if len(parsed.Roles) == 0 {
		return "", fmt.Errorf("role %q: %w", roleName, ErrNotFound)
	}
	return parsed.Roles[0].ID, nil
}

// AssignRole grants the role to the user on the tenant project. An
// already-granted role is a conflict; callers treat it as non-fatal.
func (c *Client) AssignRole(ctx context.Context, token, tenantID, userID, roleID string) error {
	url := c.cfg.Endpoint + c.cfg.URIAssignRole
	url = strings.ReplaceAll(url, "#TENANT_ID", tenantID)
	url = strings.ReplaceAll(url, "#USER_ID", userID)
	url = strings.ReplaceAll(url, "#ROLE_ID", roleID)

	resp, err := c.sender.Send(ctx, http.MethodPut, url, authHeader(token, false), nil)
	if err != nil {
		return err
	}
	if err := classify(resp.Status, http.StatusNoContent); err != nil {
		return fmt.Errorf("assign role to user %s on %s: %w", userID, tenantID, err)
	}
	return nil
}
