package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"batalla/backend/internal/auth"
	"batalla/backend/internal/config"
	"batalla/backend/internal/database"
	"batalla/backend/internal/service"
	"batalla/backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the full API against an in-memory database, mirroring
// the route table in cmd/server.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret", TokenTTLMinutes: 30}
	tokens := token.NewService(cfg.JWTSecret)
	users := service.NewUserService(db)
	friends := service.NewFriendshipService(db, users)
	invitations := service.NewInvitationService(db, users, friends)
	resets := service.NewResetService(db, users, nil)

	authHandler := NewAuthHandler(users, resets, tokens, cfg)
	userHandler := NewUserHandler(users, friends)
	friendHandler := NewFriendHandler(friends)
	invitationHandler := NewInvitationHandler(invitations)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/verify-token", authHandler.VerifyToken)
	api.POST("/forgot-password", authHandler.ForgotPassword)
	api.POST("/reset-password", authHandler.ResetPassword)

	authed := api.Group("")
	authed.Use(auth.AuthMiddleware(tokens, users))
	authed.GET("/me", authHandler.GetMe)
	authed.PUT("/profile", userHandler.UpdateProfile)
	authed.PUT("/avatar", userHandler.UpdateAvatar)
	authed.DELETE("/account", userHandler.DeleteAccount)
	authed.GET("/users/search", userHandler.SearchUsers)
	authed.GET("/friends", friendHandler.ListFriends)
	authed.POST("/friends/request", friendHandler.SendRequest)
	authed.GET("/friends/requests", friendHandler.ListRequests)
	authed.POST("/friends/accept/:id", friendHandler.AcceptRequest)
	authed.POST("/friends/reject/:id", friendHandler.RejectRequest)
	authed.DELETE("/friends/:id", friendHandler.RemoveFriend)
	authed.POST("/game-invitations/send", invitationHandler.Send)
	authed.GET("/game-invitations/received", invitationHandler.ListReceived)
	authed.POST("/game-invitations/accept/:id", invitationHandler.Accept)
	authed.POST("/game-invitations/decline/:id", invitationHandler.Decline)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerAndLogin creates an account and returns its bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, username, email, pass string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/register", "", gin.H{
		"username": username, "email": email, "password": pass,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"email": email, "password": pass,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp TokenResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRegisterConflictNamesField(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	w := doJSON(t, router, http.MethodPost, "/api/register", "", gin.H{
		"username": "other", "email": "alice@x.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email")

	w = doJSON(t, router, http.MethodPost, "/api/register", "", gin.H{
		"username": "alice", "email": "other@x.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "username")
}

func TestLoginStaysGeneric(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	wrongPass := doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"email": "alice@x.com", "password": "wrong",
	})
	unknown := doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"email": "nobody@x.com", "password": "secret1",
	})

	// Wrong password and unknown account are the same response.
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestVerifyToken(t *testing.T) {
	router := newTestRouter(t)
	tok := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	w := doJSON(t, router, http.MethodPost, "/api/verify-token", "", gin.H{"token": tok})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@x.com")

	w = doJSON(t, router, http.MethodPost, "/api/verify-token", "", gin.H{"token": "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenQueryParamFallback(t *testing.T) {
	router := newTestRouter(t)
	tok := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	w := doJSON(t, router, http.MethodGet, "/api/me?token="+tok, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me UserResponse
	decode(t, w, &me)
	assert.Equal(t, "alice", me.Username)
}

func TestAvatarRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	tok := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	w := doJSON(t, router, http.MethodPut, "/api/avatar", tok, gin.H{"avatar": `{"hat":"wizard"}`})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/me", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me UserResponse
	decode(t, w, &me)
	require.NotNil(t, me.Avatar)
	assert.Equal(t, `{"hat":"wizard"}`, *me.Avatar)
}

func TestFriendshipScenario(t *testing.T) {
	router := newTestRouter(t)
	aliceTok := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")
	bobTok := registerAndLogin(t, router, "bob", "bob@x.com", "secret2")

	// alice sends a request to bob.
	w := doJSON(t, router, http.MethodPost, "/api/friends/request", aliceTok, gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var edge FriendshipResponse
	decode(t, w, &edge)
	assert.Equal(t, "pending", string(edge.Status))

	// bob sees it incoming and accepts.
	w = doJSON(t, router, http.MethodGet, "/api/friends/requests", bobTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var incoming []IncomingRequestResponse
	decode(t, w, &incoming)
	require.Len(t, incoming, 1)
	assert.Equal(t, "alice", incoming[0].Username)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/friends/accept/%d", incoming[0].FriendshipID), bobTok, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Both friend lists show the other party.
	var aliceFriends, bobFriends []FriendResponse
	w = doJSON(t, router, http.MethodGet, "/api/friends", aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &aliceFriends)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, "bob", aliceFriends[0].Username)

	w = doJSON(t, router, http.MethodGet, "/api/friends", bobTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &bobFriends)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, "alice", bobFriends[0].Username)

	// Search reflects the relationship.
	w = doJSON(t, router, http.MethodGet, "/api/users/search?query=ali", bobTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var results []SearchResultResponse
	decode(t, w, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "alice", results[0].Username)
	assert.Equal(t, "friends", results[0].FriendshipStatus)

	// alice removes; both lists are empty again.
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/friends/%d", aliceFriends[0].FriendshipID), aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/friends", aliceTok, nil)
	decode(t, w, &aliceFriends)
	assert.Empty(t, aliceFriends)
	w = doJSON(t, router, http.MethodGet, "/api/friends", bobTok, nil)
	decode(t, w, &bobFriends)
	assert.Empty(t, bobFriends)
}

func TestFriendRequestErrorStatuses(t *testing.T) {
	router := newTestRouter(t)
	aliceTok := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")
	registerAndLogin(t, router, "bob", "bob@x.com", "secret2")

	w := doJSON(t, router, http.MethodPost, "/api/friends/request", aliceTok, gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/friends/request", aliceTok, gin.H{"username": "nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/friends/request", aliceTok, gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/friends/request", aliceTok, gin.H{"username": "bob"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	// No notifier configured, so the code comes back in the response.
	w := doJSON(t, router, http.MethodPost, "/api/forgot-password", "", gin.H{"email": "alice@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp ForgotPasswordResponse
	decode(t, w, &resp)
	require.Len(t, resp.Code, 6)

	// Unknown email gets the same message, just without a stored code.
	w = doJSON(t, router, http.MethodPost, "/api/forgot-password", "", gin.H{"email": "nobody@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var unknown ForgotPasswordResponse
	decode(t, w, &unknown)
	assert.Equal(t, resp.Message, unknown.Message)

	w = doJSON(t, router, http.MethodPost, "/api/reset-password", "", gin.H{
		"code": resp.Code, "new_password": "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Old password out, new password in.
	w = doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{"email": "alice@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{"email": "alice@x.com", "password": "newsecret"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteAccount(t *testing.T) {
	router := newTestRouter(t)
	tok := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	w := doJSON(t, router, http.MethodDelete, "/api/account", tok, gin.H{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/account", tok, gin.H{"password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	// The token no longer resolves to a user.
	w = doJSON(t, router, http.MethodGet, "/api/me", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGameInvitationFlow(t *testing.T) {
	router := newTestRouter(t)
	aliceTok := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")
	bobTok := registerAndLogin(t, router, "bob", "bob@x.com", "secret2")

	// Invitations require friendship.
	w := doJSON(t, router, http.MethodPost, "/api/game-invitations/send", aliceTok, gin.H{
		"username": "bob", "game_type": "sudoku",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/friends/request", aliceTok, gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)
	var edge FriendshipResponse
	decode(t, w, &edge)
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/friends/accept/%d", edge.ID), bobTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/game-invitations/send", aliceTok, gin.H{
		"username": "bob", "game_type": "sudoku",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sent InvitationResponse
	decode(t, w, &sent)
	assert.Equal(t, "alice", sent.Sender)

	w = doJSON(t, router, http.MethodGet, "/api/game-invitations/received", bobTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var received []InvitationResponse
	decode(t, w, &received)
	require.Len(t, received, 1)
	assert.Equal(t, "alice", received[0].Sender)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/game-invitations/accept/%d", received[0].ID), bobTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGameInvitationDecline(t *testing.T) {
	router := newTestRouter(t)
	aliceTok := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")
	bobTok := registerAndLogin(t, router, "bob", "bob@x.com", "secret2")

	w := doJSON(t, router, http.MethodPost, "/api/friends/request", aliceTok, gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)
	var edge FriendshipResponse
	decode(t, w, &edge)
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/friends/accept/%d", edge.ID), bobTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/game-invitations/send", aliceTok, gin.H{
		"username": "bob", "game_type": "sudoku",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var inv InvitationResponse
	decode(t, w, &inv)

	// Only the receiver may decline.
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/game-invitations/decline/%d", inv.ID), aliceTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/game-invitations/decline/%d", inv.ID), bobTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/game-invitations/received", bobTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var received []InvitationResponse
	decode(t, w, &received)
	assert.Empty(t, received)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/game-invitations/decline/%d", inv.ID), bobTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
