package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canpestre/internal/domain/entity"
	"canpestre/internal/domain/repository"
	mockUC "canpestre/internal/mocks/usecase"
	"canpestre/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationHandler(uc usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{
		locationUC: uc,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newEchoContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestLocationHandler_CreateLocation_Mobile(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := newLocationHandler(mockLocationUC)

	stored := &entity.Location{ID: 1, MascotaID: 3}
	mockLocationUC.EXPECT().
		RegisterLocation(mock.Anything, mock.MatchedBy(func(n *entity.NormalizedLocation) bool {
			return n.MascotaID == 3 &&
				n.Latitude.Equal(entity.MustCoordinate("-12.046374"))
		})).
		Return(stored, nil)

	c, rec := newEchoContext(http.MethodPost, "/location/mobile/",
		`{"mascota":3,"latitud":-12.046374,"longitud":-77.042793}`)

	require.NoError(t, h.CreateLocation(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestLocationHandler_CreateLocation_MissingPetID(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := newLocationHandler(mockLocationUC)

	c, rec := newEchoContext(http.MethodPost, "/location/mobile/",
		`{"latitud":-12.0,"longitud":-77.0}`)

	require.NoError(t, h.CreateLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Error: ID de mascota no proporcionado", resp["message"])

	mockLocationUC.AssertNotCalled(t, "RegisterLocation", mock.Anything, mock.Anything)
}

func TestLocationHandler_CreateLocation_ZeroCoordinatesAccepted(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := newLocationHandler(mockLocationUC)

	mockLocationUC.EXPECT().
		RegisterLocation(mock.Anything, mock.MatchedBy(func(n *entity.NormalizedLocation) bool {
			return n.Latitude.Equal(entity.MustCoordinate("0")) &&
				n.Longitude.Equal(entity.MustCoordinate("0"))
		})).
		Return(&entity.Location{ID: 2, MascotaID: 5}, nil)

	c, rec := newEchoContext(http.MethodPost, "/location/location_list",
		`{"mascota":5,"latitude":0,"longitude":0}`)

	require.NoError(t, h.CreateLocation(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLocationHandler_CreateLocation_UnknownPet(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := newLocationHandler(mockLocationUC)

	mockLocationUC.EXPECT().
		RegisterLocation(mock.Anything, mock.Anything).
		Return(nil, repository.ErrLocationPetMissing)

	c, rec := newEchoContext(http.MethodPost, "/location/location_list",
		`{"mascota":99,"latitude":1,"longitude":1}`)

	require.NoError(t, h.CreateLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Error al registrar ubicación", resp["message"])
}

func TestLocationHandler_ListLocations_Latest404WhenEmpty(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := newLocationHandler(mockLocationUC)

	mockLocationUC.EXPECT().
		LatestLocation(mock.Anything, int64(3)).
		Return(nil, repository.ErrLocationNotFound)

	c, rec := newEchoContext(http.MethodGet, "/location/location_list?mascota_id=3&ultima=true", "")

	require.NoError(t, h.ListLocations(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No se encontró ubicación para esta mascota", resp["message"])
}

func TestLocationHandler_ListLocations_LatestRequiresPetID(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := newLocationHandler(mockLocationUC)

	c, rec := newEchoContext(http.MethodGet, "/location/location_list?ultima=true", "")

	require.NoError(t, h.ListLocations(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationHandler_ListLocations_DefaultWindow(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := newLocationHandler(mockLocationUC)

	mockLocationUC.EXPECT().
		ListLocations(mock.Anything, mock.MatchedBy(func(q usecase.LocationQuery) bool {
			return q.PetID != nil && *q.PetID == 3 && q.Since != nil && q.AfterID == nil
		})).
		Return([]*entity.Location{{ID: 1, MascotaID: 3}}, nil)

	c, rec := newEchoContext(http.MethodGet, "/location/location_list?mascota_id=3", "")

	require.NoError(t, h.ListLocations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_LatestLocations_CursorPaging(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := newLocationHandler(mockLocationUC)

	mockLocationUC.EXPECT().
		ListLocations(mock.Anything, mock.MatchedBy(func(q usecase.LocationQuery) bool {
			return q.AfterID != nil && *q.AfterID == 41 &&
				q.PetID != nil && *q.PetID == 3
		})).
		Return([]*entity.Location{{ID: 42, MascotaID: 3}}, nil)

	c, rec := newEchoContext(http.MethodGet, "/location/latest?mascota_id=3&last_id=41", "")

	require.NoError(t, h.LatestLocations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_LatestLocations_BadCursor(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := newLocationHandler(mockLocationUC)

	c, rec := newEchoContext(http.MethodGet, "/location/latest?last_id=abc", "")

	require.NoError(t, h.LatestLocations(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
