package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func permissionTestRouter(resource permissions.Resource, action permissions.Action) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", RequirePermission(resource, action), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func requestAs(t *testing.T, r *gin.Engine, actor *Actor) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if actor != nil {
		req = req.WithContext(SetActorInContext(req.Context(), actor))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequirePermission(t *testing.T) {
	viewer := &Actor{
		UserId:      2,
		UserType:    models.UserTypeSub,
		Email:       "clerk@example.com",
		TenantEmail: "owner@example.com",
		Role:        permissions.RoleViewer,
		Permissions: permissions.ForRole(permissions.RoleViewer),
	}
	adminSub := &Actor{
		UserId:      3,
		UserType:    models.UserTypeSub,
		Email:       "deputy@example.com",
		TenantEmail: "owner@example.com",
		Role:        permissions.RoleAdmin,
		// Intentionally empty: the admin role must bypass the matrix.
		Permissions: permissions.PermissionSet{},
	}
	owner := &Actor{
		UserId:      1,
		UserType:    models.UserTypeMain,
		Email:       "owner@example.com",
		TenantEmail: "owner@example.com",
	}

	cases := []struct {
		name     string
		actor    *Actor
		resource permissions.Resource
		action   permissions.Action
		want     int
	}{
		{"anonymous passes", nil, permissions.ResourceInvoices, permissions.ActionCreate, http.StatusOK},
		{"owner bypasses matrix", owner, permissions.ResourceInvoices, permissions.ActionDelete, http.StatusOK},
		{"admin role bypasses matrix", adminSub, permissions.ResourceInvoices, permissions.ActionDelete, http.StatusOK},
		{"viewer may read", viewer, permissions.ResourceInvoices, permissions.ActionRead, http.StatusOK},
		{"viewer may not create", viewer, permissions.ResourceInvoices, permissions.ActionCreate, http.StatusForbidden},
		{"viewer may not delete", viewer, permissions.ResourceProducts, permissions.ActionDelete, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := requestAs(t, permissionTestRouter(tc.resource, tc.action), tc.actor)
			if w.Code != tc.want {
				t.Fatalf("got %d, want %d: %s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestRequireOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", RequireOwner(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	if w := requestAs(t, r, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: got %d, want 401", w.Code)
	}

	sub := &Actor{
		UserId:   2,
		UserType: models.UserTypeSub,
		Role:     permissions.RoleAdmin,
	}
	if w := requestAs(t, r, sub); w.Code != http.StatusForbidden {
		t.Fatalf("delegated admin: got %d, want 403", w.Code)
	}

	owner := &Actor{UserId: 1, UserType: models.UserTypeMain}
	if w := requestAs(t, r, owner); w.Code != http.StatusOK {
		t.Fatalf("owner: got %d, want 200", w.Code)
	}
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	if w := requestAs(t, r, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: got %d, want 401", w.Code)
	}
	if w := requestAs(t, r, &Actor{UserId: 2, UserType: models.UserTypeSub}); w.Code != http.StatusOK {
		t.Fatalf("authenticated: got %d, want 200", w.Code)
	}
}
