package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject})
	raw, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

// resolveActor 过一遍中间件后取出actor
func resolveActor(t *testing.T, authorization string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var actor string
	engine := gin.New()
	engine.Use(NewIdentity(testSecret).Resolve())
	engine.GET("/", func(c *gin.Context) {
		actor = GetActor(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	engine.ServeHTTP(httptest.NewRecorder(), req)
	return actor
}

func TestIdentityResolve(t *testing.T) {
	t.Run("有效令牌取subject为操作者", func(t *testing.T) {
		raw := signToken(t, testSecret, "alice")
		assert.Equal(t, "alice", resolveActor(t, "Bearer "+raw))
	})

	t.Run("无令牌降级为anonymous", func(t *testing.T) {
		assert.Equal(t, AnonymousActor, resolveActor(t, ""))
	})

	t.Run("签名不符降级为anonymous而非拒绝", func(t *testing.T) {
		raw := signToken(t, "wrong-secret", "mallory")
		assert.Equal(t, AnonymousActor, resolveActor(t, "Bearer "+raw))
	})

	t.Run("非Bearer头降级为anonymous", func(t *testing.T) {
		assert.Equal(t, AnonymousActor, resolveActor(t, "Basic dXNlcjpwYXNz"))
	})

	t.Run("subject为空降级为anonymous", func(t *testing.T) {
		raw := signToken(t, testSecret, "")
		assert.Equal(t, AnonymousActor, resolveActor(t, "Bearer "+raw))
	})
}
