package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ambienthq/ambient/internal/config"
	signupdomain "github.com/ambienthq/ambient/internal/signup/domain"
	tenantdomain "github.com/ambienthq/ambient/internal/tenant/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSignupService struct {
	calls int
	err   error
}

func (f *fakeSignupService) Signup(ctx context.Context, req signupdomain.Request) error {
	f.calls++
	_ = ctx
	_ = req
	return f.err
}

type fakeResolver struct {
	tenants map[string]*tenantdomain.TenantContext
	err     error
}

func (f *fakeResolver) Resolve(ctx context.Context, identifier string) (*tenantdomain.TenantContext, error) {
	_ = ctx
	if f.err != nil {
		return nil, f.err
	}
	if tc, ok := f.tenants[identifier]; ok {
		return tc, nil
	}
	return nil, tenantdomain.ErrTenantNotFound
}

func newTestServer(signupsvc signupdomain.Service, resolver tenantdomain.Resolver) *Server {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())

	srv := &Server{
		engine:    router,
		cfg:       config.Config{Environment: "test"},
		log:       zap.NewNop(),
		signupsvc: signupsvc,
		resolver:  resolver,
	}
	srv.RegisterRoutes()
	return srv
}

func doRequest(srv *Server, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	srv.Engine().ServeHTTP(resp, req)
	return resp
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(&fakeSignupService{}, &fakeResolver{})

	for _, path := range []string{"/internal/healthz", "/v1/health", "/v1/auth/health"} {
		resp := doRequest(srv, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, resp.Code, "path=%s", path)
		assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
	}
}

func TestSignupUniformSuccessResponse(t *testing.T) {
	// The service reports nil for both fresh and already-registered users;
	// the handler must emit byte-identical responses.
	srv := newTestServer(&fakeSignupService{}, &fakeResolver{})

	first := doRequest(srv, http.MethodPost, "/v1/auth/signup",
		[]byte(`{"email":"jane@acme.com","password":"p1"}`), nil)
	second := doRequest(srv, http.MethodPost, "/v1/auth/signup",
		[]byte(`{"email":"jane@acme.com","password":"p1"}`), nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.JSONEq(t, `{"status":"ok"}`, first.Body.String())
}

func TestSignupMalformedBody(t *testing.T) {
	signupsvc := &fakeSignupService{}
	srv := newTestServer(signupsvc, &fakeResolver{})

	resp := doRequest(srv, http.MethodPost, "/v1/auth/signup", []byte(`{not json`), nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Zero(t, signupsvc.calls)
}

func TestSignupValidationErrorMapping(t *testing.T) {
	srv := newTestServer(&fakeSignupService{err: signupdomain.ErrInvalidEmail}, &fakeResolver{})

	resp := doRequest(srv, http.MethodPost, "/v1/auth/signup",
		[]byte(`{"email":"nope","password":"p1"}`), nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error.Type)
	assert.Equal(t, "invalid email format", body.Error.Message)
}

func TestSignupPolicyRejectionMapping(t *testing.T) {
	srv := newTestServer(&fakeSignupService{err: signupdomain.ErrPublicEmailDomain}, &fakeResolver{})

	resp := doRequest(srv, http.MethodPost, "/v1/auth/signup",
		[]byte(`{"email":"x@gmail.com","password":"p1"}`), nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "policy_rejected", body.Error.Type)
	assert.Equal(t, "Please use your work email address.", body.Error.Message)
}

func TestSignupStorageErrorIsOpaque(t *testing.T) {
	srv := newTestServer(&fakeSignupService{err: errors.New("dial tcp 10.0.0.5:5432: connection refused")}, &fakeResolver{})

	resp := doRequest(srv, http.MethodPost, "/v1/auth/signup",
		[]byte(`{"email":"jane@acme.com","password":"p1"}`), nil)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "internal server error")
	assert.NotContains(t, resp.Body.String(), "10.0.0.5")
	assert.NotContains(t, resp.Body.String(), "connection refused")
}

func TestTenantRequiredPathMissingHeader(t *testing.T) {
	srv := newTestServer(&fakeSignupService{}, &fakeResolver{})

	resp := doRequest(srv, http.MethodGet, "/internal/tenant", nil, nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "X-Tenant-ID header required")
}

func TestTenantRequiredPathUnknownSlug(t *testing.T) {
	srv := newTestServer(&fakeSignupService{}, &fakeResolver{tenants: map[string]*tenantdomain.TenantContext{}})

	resp := doRequest(srv, http.MethodGet, "/internal/tenant", nil,
		map[string]string{"X-Tenant-ID": "nonexistent-slug"})

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Error.Type)
}

func TestTenantRequiredPathResolves(t *testing.T) {
	resolver := &fakeResolver{tenants: map[string]*tenantdomain.TenantContext{
		"t_acme_com": {ID: "42", Slug: "t_acme_com", Name: "acme.com"},
	}}
	srv := newTestServer(&fakeSignupService{}, resolver)

	resp := doRequest(srv, http.MethodGet, "/internal/tenant", nil,
		map[string]string{"X-Tenant-ID": "t_acme_com"})

	assert.Equal(t, http.StatusOK, resp.Code)

	var tc tenantdomain.TenantContext
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tc))
	assert.Equal(t, "42", tc.ID)
	assert.Equal(t, "t_acme_com", tc.Slug)
}

func TestTenantResolveStorageFailureIsNotNotFound(t *testing.T) {
	srv := newTestServer(&fakeSignupService{}, &fakeResolver{err: errors.New("connection reset")})

	resp := doRequest(srv, http.MethodGet, "/internal/tenant", nil,
		map[string]string{"X-Tenant-ID": "t_acme_com"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestSkipPathsBypassEnforcement(t *testing.T) {
	// Resolver errors must never affect exempt paths.
	srv := newTestServer(&fakeSignupService{}, &fakeResolver{err: errors.New("down")})

	for _, path := range []string{"/v1/auth/health", "/v1/auth/whoami"} {
		resp := doRequest(srv, http.MethodGet, path, nil,
			map[string]string{"X-Tenant-ID": "t_acme_com"})
		assert.Equal(t, http.StatusOK, resp.Code, "path=%s", path)
	}
}

func TestWhoamiWithoutTenantContext(t *testing.T) {
	srv := newTestServer(&fakeSignupService{}, &fakeResolver{})

	resp := doRequest(srv, http.MethodGet, "/v1/auth/whoami", nil, nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"actor":null,"tenant_id":null,"tenant_slug":null}`, resp.Body.String())
}
