package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/egovcms/internal/client/api"
	"github.com/iudanet/egovcms/internal/client/session"
	"github.com/iudanet/egovcms/internal/client/storage/memory"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// membersBackend тестовый backend GET /members с totalPages страницами
type membersBackend struct {
	mu         sync.Mutex
	pages      []int
	auth       []string
	totalPages int
	code       any
}

func (b *membersBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("pageIndex"))

	b.mu.Lock()
	b.pages = append(b.pages, page)
	b.auth = append(b.auth, r.Header.Get("Authorization"))
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if b.code != nil {
		_ = json.NewEncoder(w).Encode(map[string]any{"resultCode": b.code, "resultMessage": "forbidden"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"resultCode": 200,
		"result": map[string]any{
			"resultList": []map[string]any{
				{"uniqId": "U" + strconv.Itoa(page), "mberId": "user" + strconv.Itoa(page), "mberSttus": "P", "sbscrbDe": "2024-03-01T09:00:00"},
			},
			"paginationInfo": map[string]any{"totalPageCount": b.totalPages, "totalRecordCount": b.totalPages * 10},
		},
	})
}

func (b *membersBackend) requested() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]int(nil), b.pages...)
}

func setup(t *testing.T, backend *membersBackend, user *pkgapi.User) *MembersController {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	sess := session.New(nil, memory.New(), zerolog.Nop())
	client := api.NewClient(srv.URL, api.WithTokenSource(sess))
	if user != nil {
		ctx := context.Background()
		require.NoError(t, sess.SetToken(ctx, "admin-token"))
		require.NoError(t, sess.SetUser(ctx, user))
	}
	return NewMembersController(client, sess)
}

var adminUser = &pkgapi.User{ID: "admin", UserSe: pkgapi.UserSeAdmin, GroupNm: pkgapi.GroupAdmin}

func TestMembersController_Load(t *testing.T) {
	backend := &membersBackend{totalPages: 2}
	c := setup(t, backend, adminUser)

	page, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Members, 1)
	assert.Equal(t, "user1", page.Members[0].MberID)
	assert.Equal(t, "active", page.Members[0].StatusName())
	assert.Equal(t, "2024-03-01", pkgapi.FormatDate(page.Members[0].SbscrbDe))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 20, page.Total)
	assert.True(t, page.HasNext)
	assert.True(t, c.IsAdmin())
	assert.Equal(t, []string{"admin-token"}, backend.auth)
}

func TestMembersController_Forbidden(t *testing.T) {
	for _, code := range []any{403, "403"} {
		backend := &membersBackend{code: code}
		c := setup(t, backend, &pkgapi.User{ID: "user01", UserSe: pkgapi.UserSeMember})

		_, err := c.Load(context.Background())
		assert.ErrorIs(t, err, ErrAdminRequired)
		assert.EqualError(t, err, "admin permission required")
		assert.False(t, c.IsAdmin())
	}
}

func TestMembersController_RequiresLogin(t *testing.T) {
	backend := &membersBackend{totalPages: 1}
	c := setup(t, backend, nil)

	_, err := c.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrLoginRequired)
	assert.Empty(t, backend.requested(), "no request without a token")
}

func TestMembersController_Navigation(t *testing.T) {
	backend := &membersBackend{totalPages: 3}
	c := setup(t, backend, adminUser)
	ctx := context.Background()

	_, err := c.Load(ctx)
	require.NoError(t, err)

	page, err := c.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)

	page, err = c.Goto(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)

	page, err = c.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.False(t, page.HasNext)

	page, err = c.Prev(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)

	assert.Equal(t, []int{1, 2, 3, 3, 2}, backend.requested())
}

func TestMembersController_DeepLinkNeverRequestsOutOfRange(t *testing.T) {
	backend := &membersBackend{totalPages: 2}
	c := setup(t, backend, adminUser)

	page, err := c.Goto(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, "user2", page.Members[0].MberID)

	assert.Equal(t, []int{1, 2}, backend.requested())
}

func TestMembersController_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	sess := session.New(nil, memory.New(), zerolog.Nop())
	require.NoError(t, sess.SetToken(context.Background(), "t"))
	c := NewMembersController(api.NewClient(srv.URL, api.WithTokenSource(sess)), sess)

	_, err := c.Load(context.Background())
	assert.ErrorIs(t, err, api.ErrServerUnavailable)
}
