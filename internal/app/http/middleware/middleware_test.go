package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/microcosm-cc/bluemonday"
)

const testSecret = "test-secret"

func signed(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func authRouter(secret string, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(secret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email":   c.GetString("email"),
			"role":    c.GetString("role"),
			"user_id": c.GetString("user_id"),
		})
	})
	r.GET("/private", handlers...)
	return r
}

func get(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareSetsClaims(t *testing.T) {
	token := signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"email": "editor@example.com",
		"role":  "admin",
		"sub":   "user-42",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w := get(authRouter(testSecret), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["email"] != "editor@example.com" || got["role"] != "admin" || got["user_id"] != "user-42" {
		t.Fatalf("claims = %v", got)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	expired := signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	otherKey := signed(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"role": "admin"})
	unsigned := signed(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"role": "admin"})

	tests := []struct {
		name string
		auth string
		code int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", "Token abc", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + otherKey, http.StatusUnauthorized},
		{"alg none", "Bearer " + unsigned, http.StatusUnauthorized},
	}
	r := authRouter(testSecret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := get(r, tt.auth); w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
		})
	}

	if w := get(authRouter(""), "Bearer x"); w.Code != http.StatusInternalServerError {
		t.Fatalf("empty secret status = %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	r := authRouter(testSecret, RequireRole("admin"))

	editor := signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"role": "editor"})
	if w := get(r, "Bearer "+editor); w.Code != http.StatusForbidden {
		t.Fatalf("editor status = %d", w.Code)
	}
	noRole := signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"email": "a@b.c"})
	if w := get(r, "Bearer "+noRole); w.Code != http.StatusUnauthorized {
		t.Fatalf("no role status = %d", w.Code)
	}
	admin := signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"role": "admin"})
	if w := get(r, "Bearer "+admin); w.Code != http.StatusOK {
		t.Fatalf("admin status = %d", w.Code)
	}
}

func echoRouter(policy *bluemonday.Policy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeJSON(policy))
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSanitizeJSONNested(t *testing.T) {
	w := post(echoRouter(bluemonday.StrictPolicy()),
		`{"title":"<b>Spring</b> sale","blocks":[{"data":{"cta":"<i>Buy</i>","url":"https://x.test/?a=1&b=2"}}],"order":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got struct {
		Title  string `json:"title"`
		Blocks []struct {
			Data map[string]string `json:"data"`
		} `json:"blocks"`
		Order int `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Title != "Spring sale" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Blocks[0].Data["cta"] != "Buy" {
		t.Errorf("nested cta = %q", got.Blocks[0].Data["cta"])
	}
	if got.Blocks[0].Data["url"] != "https://x.test/?a=1&b=2" {
		t.Errorf("url changed: %q", got.Blocks[0].Data["url"])
	}
	if got.Order != 3 {
		t.Errorf("order = %d", got.Order)
	}
}

func TestSanitizeJSONKeepsSafeMarkup(t *testing.T) {
	w := post(echoRouter(bluemonday.UGCPolicy()), `{"content":"<p onclick=\"steal()\">Hi</p>"}`)
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["content"] != "<p>Hi</p>" {
		t.Fatalf("content = %q", got["content"])
	}
}

func TestSanitizeJSONBodies(t *testing.T) {
	r := echoRouter(bluemonday.StrictPolicy())
	if w := post(r, ""); w.Code != http.StatusOK {
		t.Fatalf("empty body status = %d", w.Code)
	}
	if w := post(r, `{"broken":`); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed status = %d", w.Code)
	}
}

func TestAdminContentPolicyKeepsTextAlign(t *testing.T) {
	w := post(echoRouter(AdminContentPolicy()),
		`{"footer":{"policy_content":{"terms":"<p style=\"text-align: center; color: red\" onclick=\"x()\">Terms</p>"}}}`)
	var got struct {
		Footer struct {
			PolicyContent map[string]string `json:"policy_content"`
		} `json:"footer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	html := got.Footer.PolicyContent["terms"]
	if !strings.Contains(html, "text-align: center") {
		t.Errorf("alignment lost: %q", html)
	}
	if strings.Contains(html, "color") || strings.Contains(html, "onclick") {
		t.Errorf("unsafe attributes kept: %q", html)
	}
}
