package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/users/usecase"
	jwtmw "github.com/yash5749/ONI-LIBRARY/internal/platform/jwt"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/role"
)

// mockUserUsecase is a mock implementation of the UserUsecase interface.
type mockUserUsecase struct {
	ListFunc    func(ctx context.Context) ([]entity.User, error)
	GetFunc     func(ctx context.Context, id uint) (*entity.User, error)
	PromoteFunc func(ctx context.Context, id uint) (*entity.User, error)
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockUserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return m.ListFunc(ctx)
}

func (m *mockUserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockUserUsecase) Promote(ctx context.Context, id uint) (*entity.User, error) {
	return m.PromoteFunc(ctx, id)
}

func (m *mockUserUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func doRequest(t *testing.T, handler gin.HandlerFunc, method, target string, userID *uint) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	router := gin.New()
	withUser := func(c *gin.Context) {
		if userID != nil {
			c.Set(jwtmw.ContextUserID, *userID)
		}
		handler(c)
	}
	router.Handle(method, "/resource/:id", withUser)
	router.Handle(method, "/resource", withUser)

	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func uintPtr(v uint) *uint { return &v }

func TestUserHandler_List(t *testing.T) {
	h := NewUserHandler(&mockUserUsecase{
		ListFunc: func(ctx context.Context) ([]entity.User, error) {
			return []entity.User{
				{ID: 1, Email: "admin@example.com", Password: "secret-hash", Role: role.Admin},
				{ID: 2, Email: "user@example.com", Password: "secret-hash", Role: role.User},
			}, nil
		},
	})

	w := doRequest(t, h.List, http.MethodGet, "/resource", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	// パスワードハッシュは決してレスポンスに含めない
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("returns the caller's profile", func(t *testing.T) {
		h := NewUserHandler(&mockUserUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				assert.Equal(t, uint(42), id)
				return &entity.User{ID: id, Email: "me@example.com", Role: role.User}, nil
			},
		})

		w := doRequest(t, h.Me, http.MethodGet, "/resource", uintPtr(42))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "me@example.com", body["email"])
	})

	t.Run("unauthenticated request maps to 401", func(t *testing.T) {
		h := NewUserHandler(&mockUserUsecase{})
		w := doRequest(t, h.Me, http.MethodGet, "/resource", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted user maps to 404", func(t *testing.T) {
		h := NewUserHandler(&mockUserUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
		})

		w := doRequest(t, h.Me, http.MethodGet, "/resource", uintPtr(42))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_Promote(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		promoteFunc    func(ctx context.Context, id uint) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:   "success",
			target: "/resource/5",
			promoteFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, Role: role.Admin}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "missing user maps to 404",
			target: "/resource/999",
			promoteFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "already admin maps to 409",
			target: "/resource/1",
			promoteFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, usecase.ErrAlreadyAdmin
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "non-numeric id maps to 400",
			target:         "/resource/abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserHandler(&mockUserUsecase{PromoteFunc: tt.promoteFunc})
			w := doRequest(t, h.Promote, http.MethodPatch, tt.target, uintPtr(1))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewUserHandler(&mockUserUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error { return nil },
		})

		w := doRequest(t, h.Delete, http.MethodDelete, "/resource/5", uintPtr(1))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing user maps to 404", func(t *testing.T) {
		h := NewUserHandler(&mockUserUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error { return usecase.ErrUserNotFound },
		})

		w := doRequest(t, h.Delete, http.MethodDelete, "/resource/999", uintPtr(1))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
