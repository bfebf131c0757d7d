package gluster

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/paasops/glusterfs-broker/internal/config"
)

// fakeSender records every request and answers through a scripted
// handler.
type fakeSender struct {
	mu      sync.Mutex
	calls   []sentRequest
	handler func(method, url string, header http.Header, body []byte) (*Response, error)
}

type sentRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

func (f *fakeSender) Send(_ context.Context, method, url string, header http.Header, body []byte) (*Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, sentRequest{Method: method, URL: url, Header: header, Body: body})
	f.mu.Unlock()
	return f.handler(method, url, header, body)
}

func (f *fakeSender) sent() []sentRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentRequest(nil), f.calls...)
}

func (f *fakeSender) countURL(substr string) int {
	n := 0
	for _, call := range f.sent() {
		if strings.Contains(call.URL, substr) {
			n++
		}
	}
	return n
}

func testGlusterConfig() *config.GlusterConfig {
	return &config.GlusterConfig{
		AuthURL:    "http://keystone:5000",
		Endpoint:   "http://keystone:35357",
		SwiftProxy: "http://swift:8080",

		Username:   "admin",
		Password:   "secret",
		DomainName: "default",
		Timezone:   "UTC",
		RoleName:   "_member_",

		URIAuth:         "/v3/auth/tokens",
		URICreateTenant: "/v3/projects",
		URIDeleteTenant: "/v3/projects/#TENANT_ID",
		URIAccount:      "/v1/AUTH_#TENANT_ID",
		URICreateUsers:  "/v3/users",
		URIDeleteUsers:  "/v3/users/#USER_ID",
		URIUserInfo:     "/v3/users?name=#USER_NAME",
		URIRoleInfo:     "/v3/roles?name=#ROLE_NAME",
		URIAssignRole:   "/v3/projects/#TENANT_ID/users/#USER_ID/roles/#ROLE_ID",
	}
}

// authSuccess builds an identity-service response carrying token with
// the given remaining lifetime.
func authSuccess(token string, expiresIn time.Duration) *Response {
	now := time.Now().UTC()
	body := fmt.Sprintf(`{"token":{"issued_at":%q,"expires_at":%q}}`,
		now.Format(time.RFC3339Nano),
		now.Add(expiresIn).Format(time.RFC3339Nano))
	header := http.Header{}
	header.Set(subjectTokenHeader, token)
	return &Response{Status: http.StatusCreated, Header: header, Body: []byte(body)}
}

func status(code int) *Response {
	return &Response{Status: code, Header: http.Header{}}
}

func jsonStatus(code int, body string) *Response {
	return &Response{Status: code, Header: http.Header{}, Body: []byte(body)}
}
