package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	authentity "mflix_backend/internal/feature/auth/domain/entity"
	authhandler "mflix_backend/internal/feature/auth/transport/handler"
	authusecase "mflix_backend/internal/feature/auth/usecase"
	complaintentity "mflix_backend/internal/feature/complaints/domain/entity"
	complainthandler "mflix_backend/internal/feature/complaints/transport/handler"
	complaintsusecase "mflix_backend/internal/feature/complaints/usecase"
	movieentity "mflix_backend/internal/feature/movies/domain/entity"
	moviehandler "mflix_backend/internal/feature/movies/transport/handler"
	moviesusecase "mflix_backend/internal/feature/movies/usecase"
	jwtmw "mflix_backend/internal/platform/jwt"
	"mflix_backend/internal/platform/password"
)

// fakeUserRepo はUserRepositoryのインメモリ実装です。
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]authentity.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]authentity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *authentity.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return "", authusecase.ErrEmailAlreadyExists
	}
	u.ID = bson.NewObjectID()
	r.users[u.Email] = *u
	return u.ID.Hex(), nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*authentity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, authusecase.ErrUserNotFound
	}
	return &u, nil
}

// fakeComplaintRepo はComplaintRepositoryのインメモリ実装です。
type fakeComplaintRepo struct {
	mu    sync.Mutex
	items []complaintentity.Complaint
}

func (r *fakeComplaintRepo) Insert(ctx context.Context, c *complaintentity.Complaint) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = bson.NewObjectID()
	r.items = append(r.items, *c)
	return c.ID.Hex(), nil
}

func (r *fakeComplaintRepo) FindAll(ctx context.Context) ([]complaintentity.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []complaintentity.Complaint{}
	out = append(out, r.items...)
	return out, nil
}

func (r *fakeComplaintRepo) FindByUser(ctx context.Context, userID string) ([]complaintentity.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []complaintentity.Complaint{}
	for _, c := range r.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeComplaintRepo) FindByID(ctx context.Context, id string) (*complaintentity.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.ID.Hex() == id {
			found := c
			return &found, nil
		}
	}
	return nil, complaintsusecase.ErrComplaintNotFound
}

func (r *fakeComplaintRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id {
			r.items[i].Status = status
			r.items[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return complaintsusecase.ErrComplaintNotFound
}

func (r *fakeComplaintRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return complaintsusecase.ErrComplaintNotFound
}

// fakeMovieRepo はMovieRepositoryのインメモリ実装です。
type fakeMovieRepo struct {
	movies []movieentity.Movie
}

func (r *fakeMovieRepo) Find(ctx context.Context, title string, limit int) ([]movieentity.Movie, error) {
	out := []movieentity.Movie{}
	for _, m := range r.movies {
		if title != "" && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(title)) {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// newTestRouter は本物のusecase・ハッシャー・コーデックとインメモリリポジトリでルータを組み立てます。
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := newFakeUserRepo()
	complaintRepo := &fakeComplaintRepo{}
	movieRepo := &fakeMovieRepo{movies: []movieentity.Movie{
		{Title: "The Dark Knight", Year: 2008},
		{Title: "Batman Begins", Year: 2005},
		{Title: "Inception", Year: 2010},
	}}

	hasher := password.NewHasher(4)
	codec := jwtmw.NewCodec("test-secret", time.Hour)

	authUC := authusecase.NewAuthUsecase(userRepo, hasher, codec)
	moviesUC := moviesusecase.NewMoviesUsecase(movieRepo)
	complaintsUC := complaintsusecase.NewComplaintsUsecase(complaintRepo)

	return NewRouter(
		authhandler.NewAuthHandler(authUC),
		moviehandler.NewMovieHandler(moviesUC),
		complainthandler.NewComplaintHandler(complaintsUC),
		codec,
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestScenario_RegisterLoginComplain は登録→ログイン→苦情作成→自分の苦情一覧の一連の流れを検証します。
func TestScenario_RegisterLoginComplain(t *testing.T) {
	router := newTestRouter(t)

	// 登録
	w := doJSON(t, router, http.MethodPost, "/api/register", "",
		gin.H{"name": "Ana", "email": "a@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	var registered struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.True(t, registered.Success)
	assert.NotEmpty(t, registered.ID)

	// ログイン
	w = doJSON(t, router, http.MethodPost, "/api/login", "",
		gin.H{"email": "a@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	var loggedIn struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))
	require.NotEmpty(t, loggedIn.Token)

	// 苦情作成
	w = doJSON(t, router, http.MethodPost, "/api/complaints", loggedIn.Token,
		gin.H{"title": "Broken", "description": "it broke"})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.ID)

	// 自分の苦情一覧
	w = doJSON(t, router, http.MethodGet, "/api/complaints/my", loggedIn.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var mine struct {
		Count int                         `json:"count"`
		Data  []complaintentity.Complaint `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Equal(t, 1, mine.Count)
	require.Len(t, mine.Data, 1)
	assert.Equal(t, "Broken", mine.Data[0].Title)
	assert.Equal(t, registered.ID, mine.Data[0].UserID)
	assert.Equal(t, complaintentity.StatusOpen, mine.Data[0].Status)
}

// TestScenario_DuplicateRegistration は同じメールでの2回目の登録が409になることを検証します。
func TestScenario_DuplicateRegistration(t *testing.T) {
	router := newTestRouter(t)

	body := gin.H{"name": "Ana", "email": "a@x.com", "password": "secret1"}

	w := doJSON(t, router, http.MethodPost, "/api/register", "", body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/register", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

// TestScenario_LoginFailuresAreIndistinguishable は未登録メールと誤パスワードで同一の応答になることを検証します。
func TestScenario_LoginFailuresAreIndistinguishable(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", "",
		gin.H{"name": "Ana", "email": "a@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	unknown := doJSON(t, router, http.MethodPost, "/api/login", "",
		gin.H{"email": "nobody@x.com", "password": "secret1"})
	wrongPass := doJSON(t, router, http.MethodPost, "/api/login", "",
		gin.H{"email": "a@x.com", "password": "wrong-password"})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
}

// TestScenario_ProtectedRoutesRequireToken は保護されたルートがトークンなし・不正トークンを拒否することを検証します。
func TestScenario_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	// トークンなし
	w := doJSON(t, router, http.MethodPost, "/api/complaints", "",
		gin.H{"title": "Broken", "description": "it broke"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/complaints/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 不正トークン
	w = doJSON(t, router, http.MethodGet, "/api/complaints/my", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestScenario_OwnershipScopedQuery は/api/complaints/myが認証ユーザーの苦情だけを返すことを検証します。
func TestScenario_OwnershipScopedQuery(t *testing.T) {
	router := newTestRouter(t)

	login := func(name, email string) string {
		w := doJSON(t, router, http.MethodPost, "/api/register", "",
			gin.H{"name": name, "email": email, "password": "secret1"})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPost, "/api/login", "",
			gin.H{"email": email, "password": "secret1"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Token
	}

	tokenA := login("Ana", "a@x.com")
	tokenB := login("Ben", "b@x.com")

	// Aが2件、Bが1件作成
	for _, title := range []string{"first", "second"} {
		w := doJSON(t, router, http.MethodPost, "/api/complaints", tokenA,
			gin.H{"title": title, "description": "from A"})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := doJSON(t, router, http.MethodPost, "/api/complaints", tokenB,
		gin.H{"title": "third", "description": "from B"})
	require.Equal(t, http.StatusOK, w.Code)

	// Aの一覧はAの2件のみ
	w = doJSON(t, router, http.MethodGet, "/api/complaints/my", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var mine struct {
		Count int                         `json:"count"`
		Data  []complaintentity.Complaint `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Equal(t, 2, mine.Count)
	for _, c := range mine.Data {
		assert.Equal(t, "from A", c.Description)
	}

	// 全件一覧は3件
	w = doJSON(t, router, http.MethodGet, "/api/complaints", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Equal(t, 3, mine.Count)
}

// TestScenario_ComplaintLifecycle は詳細取得・ステータス更新・削除の一連の流れを検証します。
func TestScenario_ComplaintLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", "",
		gin.H{"name": "Ana", "email": "a@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/login", "",
		gin.H{"email": "a@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	var loggedIn struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))

	w = doJSON(t, router, http.MethodPost, "/api/complaints", loggedIn.Token,
		gin.H{"title": "Broken", "description": "it broke"})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// 詳細取得
	w = doJSON(t, router, http.MethodGet, "/api/complaints/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// ステータス更新
	w = doJSON(t, router, http.MethodPatch, "/api/complaints/"+created.ID+"/status", "",
		gin.H{"status": "closed"})
	assert.Equal(t, http.StatusOK, w.Code)

	var detail complaintentity.Complaint
	w = doJSON(t, router, http.MethodGet, "/api/complaints/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "closed", detail.Status)

	// 削除
	w = doJSON(t, router, http.MethodDelete, "/api/complaints/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 削除後は404
	w = doJSON(t, router, http.MethodGet, "/api/complaints/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/complaints/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestScenario_CORSEnabled はすべてのエンドポイントでCORSが許可されていることを検証します。
func TestScenario_CORSEnabled(t *testing.T) {
	router := newTestRouter(t)

	// Originヘッダー付きの通常リクエスト
	req, _ := http.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	// プリフライトリクエスト
	req, _ = http.NewRequest(http.MethodOptions, "/api/complaints", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// TestScenario_MovieSearch は映画の一覧・検索エンドポイントを検証します。
func TestScenario_MovieSearch(t *testing.T) {
	router := newTestRouter(t)

	// 一覧
	w := doJSON(t, router, http.MethodGet, "/api/movies", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Count int                 `json:"count"`
		Data  []movieentity.Movie `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, 3, listed.Count)

	// タイトル検索（大文字小文字無視）
	w = doJSON(t, router, http.MethodGet, "/api/movies/search?title=batman", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, 1, listed.Count)
	assert.Equal(t, "Batman Begins", listed.Data[0].Title)

	// titleなしは400
	w = doJSON(t, router, http.MethodGet, "/api/movies/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
