package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/The-Gleb/event_banner/internal/domain/render"
	"github.com/The-Gleb/event_banner/internal/domain/service"
	"github.com/The-Gleb/event_banner/internal/domain/usecase"
	"github.com/The-Gleb/event_banner/internal/errors"
	"github.com/The-Gleb/event_banner/internal/metrics"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	mu      sync.Mutex
	banners map[int64]entity.Banner
	nextID  int64
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{banners: make(map[int64]entity.Banner)}
}

func (s *memoryStorage) CreateBanner(_ context.Context, dto entity.CreateBannerDTO) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.banners[s.nextID] = entity.Banner{
		BannerID:  s.nextID,
		Title:     dto.Title,
		Text:      dto.Text,
		Link:      dto.Link,
		Start:     dto.Start,
		End:       dto.End,
		Manual:    dto.Manual,
		Published: dto.Published,
		CreatedAt: time.Unix(s.nextID, 0),
	}
	return s.nextID, nil
}

func (s *memoryStorage) DeleteBanner(_ context.Context, dto entity.DeleteBannerDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.banners[dto.BannerID]; !ok {
		return errors.NewDomainError(errors.ErrNoDataFound, "")
	}
	delete(s.banners, dto.BannerID)
	return nil
}

func (s *memoryStorage) GetBanner(_ context.Context, dto entity.GetBannerDTO) (entity.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.banners[dto.BannerID]
	if !ok {
		return entity.Banner{}, errors.NewDomainError(errors.ErrNoDataFound, "")
	}
	return b, nil
}

func (s *memoryStorage) newestFirst(publishedOnly bool) []entity.Banner {
	out := make([]entity.Banner, 0, len(s.banners))
	for _, b := range s.banners {
		if publishedOnly && !b.Published {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BannerID > out[j].BannerID })
	return out
}

func (s *memoryStorage) GetBanners(_ context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.newestFirst(false)
	if dto.Offset >= len(all) {
		return []entity.Banner{}, nil
	}
	all = all[dto.Offset:]
	if len(all) > dto.Limit {
		all = all[:dto.Limit]
	}
	return all, nil
}

func (s *memoryStorage) GetPublishedBanners(context.Context) ([]entity.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.newestFirst(true), nil
}

func (s *memoryStorage) UpdateBanner(_ context.Context, dto entity.UpdateBannerDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.banners[dto.BannerID]
	if !ok {
		return errors.NewDomainError(errors.ErrNoDataFound, "")
	}
	for field, value := range map[*string]*string{
		&b.Title: dto.Title, &b.Text: dto.Text, &b.Link: dto.Link,
		&b.Start: dto.Start, &b.End: dto.End,
	} {
		if value != nil {
			*field = *value
		}
	}
	if dto.Manual != nil {
		b.Manual = *dto.Manual
	}
	if dto.Published != nil {
		b.Published = *dto.Published
	}
	s.banners[dto.BannerID] = b
	return nil
}

type memoryCache struct {
	id *int64
}

func (c *memoryCache) GetActiveID(context.Context) (int64, bool, error) {
	if c.id == nil {
		return 0, false, nil
	}
	return *c.id, true, nil
}

func (c *memoryCache) SetActiveID(_ context.Context, id *int64) error {
	c.id = id
	return nil
}

type memoryTokens map[string]bool

func (t memoryTokens) CheckToken(_ context.Context, token string) (bool, error) {
	isAdmin, ok := t[token]
	if !ok {
		return false, errors.NewDomainError(errors.ErrUnauthorized, "")
	}
	return isAdmin, nil
}

func newTestServer(t *testing.T, opts entity.DisplayOptions) (*httptest.Server, *memoryCache) {
	t.Helper()

	cache := &memoryCache{}
	m := metrics.New()
	bannerService := service.NewBannerService(
		newMemoryStorage(), cache, render.NewRenderer(false), m, opts, time.UTC,
	)
	tokenService := service.NewTokenService(memoryTokens{"admin_token": true, "user_token": false})

	r := NewRouter(Usecases{
		CreateBanner:    usecase.NewCreateBannerUsecase(bannerService),
		DeleteBanner:    usecase.NewDeleteBannerUsecase(bannerService),
		GetBanner:       usecase.NewGetBannerUsecase(bannerService),
		GetBanners:      usecase.NewGetBannersUsecase(bannerService),
		UpdateBanner:    usecase.NewUpdateBannerUsecase(bannerService),
		GetActiveBanner: usecase.NewGetActiveBannerUsecase(bannerService),
		RenderBanner:    usecase.NewRenderBannerUsecase(bannerService),
		CheckToken:      usecase.NewCheckTokenUsecase(tokenService),
	}, m.Handler())

	s := httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s, cache
}

func testRequest(
	t *testing.T, ts *httptest.Server,
	method, path string, body []byte, token string,
) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(body))
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("token", token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(respBody)
}

func createBanner(t *testing.T, ts *httptest.Server, dto entity.CreateBannerDTO) int64 {
	t.Helper()

	body, err := json.Marshal(dto)
	require.NoError(t, err)

	resp, respBody := testRequest(t, ts, http.MethodPost, "/banner", body, "admin_token")
	require.Equal(t, http.StatusCreated, resp.StatusCode, respBody)

	var created struct {
		BannerID int64 `json:"banner_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(respBody), &created))

	return created.BannerID
}

var topOptions = entity.DisplayOptions{AutoRender: true, Location: entity.LocationTop}

func TestRouter_AdminAuth(t *testing.T) {
	ts, _ := newTestServer(t, topOptions)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		code   int
	}{
		{"list without token", http.MethodGet, "/banner", "", http.StatusUnauthorized},
		{"list unknown token", http.MethodGet, "/banner", "some_token", http.StatusUnauthorized},
		{"list as user", http.MethodGet, "/banner", "user_token", http.StatusForbidden},
		{"list as admin", http.MethodGet, "/banner", "admin_token", http.StatusOK},
		{"delete as user", http.MethodDelete, "/banner/1", "user_token", http.StatusForbidden},
		{"get missing as admin", http.MethodGet, "/banner/1", "admin_token", http.StatusNotFound},
		{"bad id", http.MethodGet, "/banner/abc", "admin_token", http.StatusBadRequest},
		{"active is public", http.MethodGet, "/banner/active", "", http.StatusNotFound},
		{"embed is public", http.MethodGet, "/embed/top", "", http.StatusOK},
		{"unknown hook", http.MethodGet, "/embed/sidebar", "", http.StatusBadRequest},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := testRequest(t, ts, tt.method, tt.path, nil, tt.token)
			require.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestRouter_BannerLifecycle(t *testing.T) {
	ts, cache := newTestServer(t, topOptions)

	expiredID := createBanner(t, ts, entity.CreateBannerDTO{
		Text:      "Winter sale",
		Start:     "2000-01-01 00:00",
		End:       "2000-01-31 23:59",
		Published: true,
	})
	manualID := createBanner(t, ts, entity.CreateBannerDTO{
		Text:      "<em>Big</em> event<script>alert(1)</script>",
		Link:      "https://example.com/event",
		Manual:    true,
		Published: true,
	})

	resp, body := testRequest(t, ts, http.MethodGet, "/embed/top", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	require.Equal(t,
		`<div class="event-banner" role="region" aria-label="Event banner">`+
			`<a class="event-banner__link" href="https://example.com/event"><em>Big</em> event</a></div>`,
		body,
	)
	require.NotNil(t, cache.id)
	require.Equal(t, manualID, *cache.id)

	resp, body = testRequest(t, ts, http.MethodGet, "/embed/bottom", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, body)

	resp, body = testRequest(t, ts, http.MethodGet, "/embed/on_demand", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "<em>Big</em> event")

	resp, body = testRequest(t, ts, http.MethodGet, "/banner/active", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var active entity.Banner
	require.NoError(t, json.Unmarshal([]byte(body), &active))
	require.Equal(t, manualID, active.BannerID)

	resp, body = testRequest(t, ts, http.MethodGet, "/banner?limit=10&offset=0", nil, "admin_token")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []entity.BannerWithStatus
	require.NoError(t, json.Unmarshal([]byte(body), &listed))
	require.Len(t, listed, 2)
	require.Equal(t, manualID, listed[0].BannerID)
	require.True(t, listed[0].Active)
	require.Equal(t, expiredID, listed[1].BannerID)
	require.False(t, listed[1].Active)

	update := []byte(`{"text": "Big event", "manual": false}`)
	resp, _ = testRequest(t, ts, http.MethodPatch, fmt.Sprintf("/banner/%d", manualID), update, "admin_token")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = testRequest(t, ts, http.MethodGet, fmt.Sprintf("/banner/%d", manualID), nil, "admin_token")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated entity.Banner
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	require.Equal(t, "Big event", updated.Text)
	require.False(t, updated.Manual)
	require.True(t, updated.Published, "fields missing from the patch are kept")

	resp, body = testRequest(t, ts, http.MethodGet, "/embed/top", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, body)
	require.Nil(t, cache.id)

	resp, _ = testRequest(t, ts, http.MethodDelete, fmt.Sprintf("/banner/%d", manualID), nil, "admin_token")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = testRequest(t, ts, http.MethodDelete, fmt.Sprintf("/banner/%d", manualID), nil, "admin_token")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_StickySelection(t *testing.T) {
	ts, cache := newTestServer(t, topOptions)

	olderID := createBanner(t, ts, entity.CreateBannerDTO{Text: "older", Manual: true, Published: true})

	_, body := testRequest(t, ts, http.MethodGet, "/embed/top", nil, "")
	require.Contains(t, body, "older")
	require.Equal(t, olderID, *cache.id)

	// a newer eligible banner does not displace the cached one
	createBanner(t, ts, entity.CreateBannerDTO{Text: "newer", Manual: true, Published: true})

	_, body = testRequest(t, ts, http.MethodGet, "/embed/top", nil, "")
	require.Contains(t, body, "older")
	require.Equal(t, olderID, *cache.id)
}

func TestRouter_OnDemandOnly(t *testing.T) {
	ts, _ := newTestServer(t, entity.DisplayOptions{AutoRender: true, Location: entity.LocationOnDemandOnly})

	createBanner(t, ts, entity.CreateBannerDTO{Text: "Sale", Manual: true, Published: true})

	for _, hook := range []string{"top", "bottom"} {
		_, body := testRequest(t, ts, http.MethodGet, "/embed/"+hook, nil, "")
		require.Empty(t, body, hook)
	}

	_, body := testRequest(t, ts, http.MethodGet, "/embed/on_demand", nil, "")
	require.Contains(t, body, "Sale")
}

func TestRouter_CreateValidation(t *testing.T) {
	ts, _ := newTestServer(t, topOptions)

	resp, _ := testRequest(t, ts, http.MethodPost, "/banner", []byte("{"), "admin_token")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := json.Marshal(entity.CreateBannerDTO{Text: "x", Link: "javascript:alert(1)"})
	require.NoError(t, err)
	resp, _ = testRequest(t, ts, http.MethodPost, "/banner", body, "admin_token")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = testRequest(t, ts, http.MethodGet, "/banner?limit=0", nil, "admin_token")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = testRequest(t, ts, http.MethodGet, "/banner?offset=-1", nil, "admin_token")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
