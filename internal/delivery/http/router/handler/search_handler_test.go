package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSearchUsecase captures the input the handler builds from the request.
type stubSearchUsecase struct {
	input  *usecase.SearchInput
	result *usecase.SearchResult
	err    error
}

func (s *stubSearchUsecase) Search(_ context.Context, input *usecase.SearchInput) (*usecase.SearchResult, error) {
	s.input = input

	return s.result, s.err
}

func TestSearchHandler_Search_BuildsInputFromQueryParams(t *testing.T) {
	stub := &stubSearchUsecase{result: &usecase.SearchResult{Entries: []*entity.SearchEntry{}}}
	handler := &SearchHandler{searchUC: stub, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search?query=tea&filter=Beverages&lat=25.0478&lng=121.5170&radius=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Search(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, stub.input)
	assert.Equal(t, "tea", stub.input.Query)
	assert.Equal(t, "Beverages", stub.input.Filter)
	require.NotNil(t, stub.input.UserLat)
	assert.Equal(t, 25.0478, *stub.input.UserLat)
	require.NotNil(t, stub.input.Radius)
	assert.Equal(t, 5.0, *stub.input.Radius)
	assert.Nil(t, stub.input.UserID)
}

func TestSearchHandler_Search_UnparseableGeoParamsBecomeNil(t *testing.T) {
	stub := &stubSearchUsecase{result: &usecase.SearchResult{}}
	handler := &SearchHandler{searchUC: stub, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search?query=tea&lat=abc&lng=&radius=xyz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Search(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, stub.input)
	assert.Nil(t, stub.input.UserLat)
	assert.Nil(t, stub.input.UserLng)
	assert.Nil(t, stub.input.Radius)
}

func TestSearchHandler_Search_IncludesResolvedIdentity(t *testing.T) {
	stub := &stubSearchUsecase{result: &usecase.SearchResult{}}
	handler := &SearchHandler{searchUC: stub, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search?query=tea", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", int64(42))

	err := handler.Search(c)
	require.NoError(t, err)

	require.NotNil(t, stub.input.UserID)
	assert.Equal(t, int64(42), *stub.input.UserID)
}
