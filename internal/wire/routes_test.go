package wire

import (
	"errors"
	"net/http"
	"testing"

	"movie-social/internal/data/entity"
	"movie-social/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var errStore = errors.New("boom")

type routeCase struct {
	name   string
	method string
	path   string
	body   string
	setup  func(a *testApp)
	code   int
	// want is compared as JSON; contains is used when the body carries
	// generated ids or timestamps.
	want     string
	contains []string
}

func runRouteCases(t *testing.T, cases []routeCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t, nil)
			if tc.setup != nil {
				tc.setup(app)
			}

			w := app.do(tc.method, tc.path, tc.body, app.bearer(t, uuid.New()))

			assert.Equal(t, tc.code, w.Code)
			if tc.want != "" {
				assert.JSONEq(t, tc.want, w.Body.String())
			}
			for _, fragment := range tc.contains {
				assert.Contains(t, w.Body.String(), fragment)
			}
		})
	}
}

func TestAuthRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "signup stores the user",
			method: "POST", path: "/auth/signup",
			body: `{"username":"jane","email":"jane@example.com","password":"hunter2"}`,
			setup: func(a *testApp) {
				a.user.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
					return u.Email == "jane@example.com" && utils.CheckPasswordHash("hunter2", u.PasswordHash)
				})).Return(nil)
			},
			code:     http.StatusOK,
			contains: []string{`"username":"jane"`, `"email":"jane@example.com"`},
		},
		{
			name:   "signup store failure",
			method: "POST", path: "/auth/signup",
			body:  `{"username":"jane","email":"jane@example.com","password":"hunter2"}`,
			setup: func(a *testApp) { a.user.On("Create", mock.Anything, mock.Anything).Return(errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"message":"failed to save user"}`,
		},
		{
			name:   "login store failure",
			method: "POST", path: "/auth/login",
			body:  `{"email":"jane@example.com","password":"hunter2"}`,
			setup: func(a *testApp) { a.user.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Failed to get user"}`,
		},
		{
			name:   "me store failure",
			method: "GET", path: "/auth/me",
			setup: func(a *testApp) { a.user.On("FindByID", mock.Anything, mock.Anything).Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Failed to get user"}`,
		},
	})
}

func TestUserRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "register",
			method: "POST", path: "/users/register",
			body:  `{"username":"jane","email":"jane@example.com","password":"hunter2"}`,
			setup: func(a *testApp) { a.user.On("Create", mock.Anything, mock.Anything).Return(nil) },
			code:  http.StatusCreated,
			want:  `{"message":"User registered successfully"}`,
		},
		{
			name:   "register store failure",
			method: "POST", path: "/users/register",
			body:  `{"username":"jane","email":"jane@example.com","password":"hunter2"}`,
			setup: func(a *testApp) { a.user.On("Create", mock.Anything, mock.Anything).Return(errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Failed to register user"}`,
		},
		{
			name:   "login store failure",
			method: "POST", path: "/users/login",
			body:  `{"email":"jane@example.com","password":"hunter2"}`,
			setup: func(a *testApp) { a.user.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Failed to log in user"}`,
		},
	})
}

func TestUserLoginWithoutSecret(t *testing.T) {
	app := newTestApp(t, nil, func(c *utils.Config) { c.JWT.Secret = "" })
	user := registeredUser(t)
	app.user.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	w := app.do("POST", "/users/login", `{"email":"jane@example.com","password":"hunter2"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"JWT secret key is not defined"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestCredentialRoutesAreRateLimited(t *testing.T) {
	app := newTestApp(t, nil, func(c *utils.Config) { c.HTTP.AuthRateLimit = 1 })

	w := app.do("POST", "/users/register", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do("POST", "/users/register", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
}

func TestProfileRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "incorrect old password",
			method: "PUT", path: "/profile",
			body: `{"oldPassword":"guess","newPassword":"hunter3"}`,
			setup: func(a *testApp) {
				a.user.On("FindByID", mock.Anything, mock.Anything).Return(registeredUser(t), nil)
			},
			code: http.StatusBadRequest,
			want: `{"message":"Incorrect old password"}`,
		},
		{
			name:   "store failure",
			method: "PUT", path: "/profile/password",
			body:  `{"oldPassword":"hunter2","newPassword":"hunter3"}`,
			setup: func(a *testApp) { a.user.On("FindByID", mock.Anything, mock.Anything).Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Exception occurred while updating password"}`,
		},
	})
}

func TestChangePasswordEndsExistingSessions(t *testing.T) {
	app := newTestApp(t, nil)
	user := registeredUser(t)
	app.user.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	app.user.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	app.user.On("UpdatePassword", mock.Anything, user.ID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("hunter3", hash)
	})).Return(nil)

	w := app.do("POST", "/users/login", `{"email":"jane@example.com","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	w = app.do("PUT", "/profile", `{"oldPassword":"hunter2","newPassword":"hunter3"}`, withCookie(cookie))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Password updated successfully"}`, w.Body.String())

	w = app.do("GET", "/auth/me", "", withCookie(cookie))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"You are not authenticated"}`, w.Body.String())
}

func TestMessageRouteResults(t *testing.T) {
	stored := &entity.Message{ID: bson.NewObjectID(), Content: "edited", RecipientID: "u2"}

	runRouteCases(t, []routeCase{
		{
			name:   "list",
			method: "GET", path: "/messages",
			setup: func(a *testApp) {
				a.message.On("FindAll", mock.Anything, 0, 0).Return([]*entity.Message{stored}, nil)
			},
			code:     http.StatusOK,
			contains: []string{`"content":"edited"`, stored.ID.Hex()},
		},
		{
			name:   "update",
			method: "PUT", path: "/messages/" + stored.ID.Hex(),
			body: `{"content":"edited"}`,
			setup: func(a *testApp) {
				a.message.On("UpdateContent", mock.Anything, stored.ID.Hex(), "edited").Return(stored, nil)
			},
			code:     http.StatusOK,
			contains: []string{`"content":"edited"`},
		},
		{
			name:   "add failure",
			method: "POST", path: "/messages",
			body:  `{"content":"hi","recipientId":"u2"}`,
			setup: func(a *testApp) { a.message.On("Create", mock.Anything, mock.Anything).Return(errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error adding message"}`,
		},
		{
			name:   "list failure",
			method: "GET", path: "/messages",
			setup: func(a *testApp) { a.message.On("FindAll", mock.Anything, 0, 0).Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error fetching messages"}`,
		},
		{
			name:   "get failure",
			method: "GET", path: "/messages/m1",
			setup: func(a *testApp) { a.message.On("FindByID", mock.Anything, "m1").Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error fetching message"}`,
		},
		{
			name:   "update failure",
			method: "PUT", path: "/messages/edit/m1",
			body:  `{"content":"edited"}`,
			setup: func(a *testApp) { a.message.On("UpdateContent", mock.Anything, "m1", "edited").Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error updating message"}`,
		},
		{
			name:   "delete failure",
			method: "DELETE", path: "/messages/m1",
			setup: func(a *testApp) { a.message.On("Delete", mock.Anything, "m1").Return(errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error deleting message"}`,
		},
	})
}

func TestMovieRouteResults(t *testing.T) {
	heat := &entity.Movie{ID: bson.NewObjectID(), Title: "Heat", Description: "LA", Rating: 4, SeenBy: []string{"u1"}}

	runRouteCases(t, []routeCase{
		{
			name:   "add",
			method: "POST", path: "/movies",
			body: `{"title":"Heat","description":"LA","rating":4}`,
			setup: func(a *testApp) {
				a.movie.On("Create", mock.Anything, mock.MatchedBy(func(m *entity.Movie) bool {
					return m.Title == "Heat" && m.Rating == 4
				})).Return(nil)
			},
			code:     http.StatusCreated,
			contains: []string{`"title":"Heat"`, `"seenBy":[]`},
		},
		{
			name:   "mark seen",
			method: "POST", path: "/movies/" + heat.ID.Hex() + "/seen",
			setup: func(a *testApp) {
				a.movie.On("MarkSeen", mock.Anything, heat.ID.Hex(), mock.Anything).Return(heat, nil)
			},
			code:     http.StatusOK,
			contains: []string{`"seenBy":["u1"]`},
		},
		{
			name:   "top-rated failure",
			method: "GET", path: "/movies/top-rated",
			setup: func(a *testApp) {
				a.movie.On("FindTopRated", mock.Anything, entity.TopRatedLimit).Return(nil, errStore)
			},
			code: http.StatusInternalServerError,
			want: `{"error":"Error fetching top-rated movies"}`,
		},
		{
			name:   "seen failure",
			method: "GET", path: "/movies/seen",
			setup: func(a *testApp) { a.movie.On("FindSeenBy", mock.Anything, mock.Anything).Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error fetching seen movies"}`,
		},
		{
			name:   "get failure",
			method: "GET", path: "/movies/abc",
			setup: func(a *testApp) { a.movie.On("FindByID", mock.Anything, "abc").Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error fetching movie"}`,
		},
		{
			name:   "add failure",
			method: "POST", path: "/movies",
			body:  `{"title":"Heat","description":"LA","rating":4}`,
			setup: func(a *testApp) { a.movie.On("Create", mock.Anything, mock.Anything).Return(errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error adding movie"}`,
		},
		{
			name:   "mark seen failure",
			method: "POST", path: "/movies/abc/seen",
			setup: func(a *testApp) { a.movie.On("MarkSeen", mock.Anything, "abc", mock.Anything).Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error updating movie"}`,
		},
	})
}

func TestRatingRouteResults(t *testing.T) {
	ratingID := uuid.New()

	runRouteCases(t, []routeCase{
		{
			name:   "delete by body",
			method: "DELETE", path: "/ratings",
			body:  `{"ratingId":"` + ratingID.String() + `"}`,
			setup: func(a *testApp) { a.rating.On("Delete", mock.Anything, ratingID).Return(nil) },
			code:  http.StatusOK,
			want:  `{"message":"Rating deleted successfully"}`,
		},
		{
			name:   "add failure",
			method: "POST", path: "/ratings",
			body:  `{"rating":4,"movieId":"m1"}`,
			setup: func(a *testApp) { a.rating.On("Create", mock.Anything, mock.Anything).Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Exception occurred while adding rating"}`,
		},
		{
			name:   "delete failure",
			method: "DELETE", path: "/ratings/" + ratingID.String(),
			setup: func(a *testApp) { a.rating.On("Delete", mock.Anything, ratingID).Return(errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Exception occurred while deleting rating"}`,
		},
	})
}

func TestCommentRouteResults(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "list failure",
			method: "GET", path: "/comments/m1",
			setup: func(a *testApp) { a.comment.On("FindByMovieID", mock.Anything, "m1").Return(nil, errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error fetching comments"}`,
		},
		{
			name:   "add failure",
			method: "POST", path: "/comments/m1",
			body:  `{"content":"great","author":"jane"}`,
			setup: func(a *testApp) { a.comment.On("Create", mock.Anything, mock.Anything).Return(errStore) },
			code:  http.StatusInternalServerError,
			want:  `{"error":"Error adding comment"}`,
		},
	})
}

func TestSecurityHeadersOnEveryRoute(t *testing.T) {
	app := newTestApp(t, nil)

	for _, path := range []string{"/health", "/nowhere", "/movies"} {
		w := app.do("GET", path, "")
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"), path)
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"), path)
		assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"), path)
	}
}
