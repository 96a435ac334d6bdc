package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"canpestre/internal/domain/entity"
	mockSvc "canpestre/internal/mocks/service"
	mockUC "canpestre/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIngestService_HandleMessage_StoresAndForwards(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	mockForwarder := mockSvc.NewMockLocationForwarder(t)
	service := NewIngestService(mockLocationUC, mockForwarder, discardLogger())

	ctx := context.Background()
	payload := []byte(`{"mascota":3,"latitude":-12.046374,"longitude":-77.042793}`)

	stored := &entity.Location{ID: 1, MascotaID: 3}
	mockLocationUC.EXPECT().
		RegisterLocation(ctx, mock.MatchedBy(func(n *entity.NormalizedLocation) bool {
			return n.MascotaID == 3 &&
				n.Latitude.Equal(entity.MustCoordinate("-12.046374")) &&
				n.Longitude.Equal(entity.MustCoordinate("-77.042793"))
		})).
		Return(stored, nil)

	mockForwarder.EXPECT().
		Forward(ctx, mock.MatchedBy(func(n *entity.NormalizedLocation) bool {
			return n.MascotaID == 3
		})).
		Return(nil)

	err := service.HandleMessage(ctx, "ubicacion", payload)
	require.NoError(t, err)
}

func TestIngestService_HandleMessage_DuplicatesStoredTwice(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	mockForwarder := mockSvc.NewMockLocationForwarder(t)
	service := NewIngestService(mockLocationUC, mockForwarder, discardLogger())

	ctx := context.Background()
	payload := []byte(`{"mascota":3,"latitude":1.5,"longitude":2.5}`)

	// At-least-once delivery means the same payload can arrive twice; each
	// arrival becomes its own row.
	mockLocationUC.EXPECT().
		RegisterLocation(ctx, mock.Anything).
		Return(&entity.Location{ID: 1}, nil).
		Times(2)
	mockForwarder.EXPECT().
		Forward(ctx, mock.Anything).
		Return(nil).
		Times(2)

	require.NoError(t, service.HandleMessage(ctx, "ubicacion", payload))
	require.NoError(t, service.HandleMessage(ctx, "ubicacion", payload))
}

func TestIngestService_HandleMessage_MalformedPayloadSwallowed(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	mockForwarder := mockSvc.NewMockLocationForwarder(t)
	service := NewIngestService(mockLocationUC, mockForwarder, discardLogger())

	// Neither store nor forward may be touched for a broken message, and the
	// pipeline must keep running.
	err := service.HandleMessage(context.Background(), "ubicacion", []byte(`{"latitude":1}`))
	assert.NoError(t, err)

	mockLocationUC.AssertNotCalled(t, "RegisterLocation", mock.Anything, mock.Anything)
	mockForwarder.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
}

func TestIngestService_HandleMessage_StoreFaultStillForwards(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	mockForwarder := mockSvc.NewMockLocationForwarder(t)
	service := NewIngestService(mockLocationUC, mockForwarder, discardLogger())

	ctx := context.Background()
	payload := []byte(`{"mascota":9,"latitude":1.0,"longitude":2.0}`)

	mockLocationUC.EXPECT().
		RegisterLocation(ctx, mock.Anything).
		Return(nil, errors.New("database down"))

	mockForwarder.EXPECT().
		Forward(ctx, mock.Anything).
		Return(nil)

	err := service.HandleMessage(ctx, "ubicacion", payload)
	assert.NoError(t, err)
}

func TestIngestService_HandleMessage_ForwardFaultSwallowed(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	mockForwarder := mockSvc.NewMockLocationForwarder(t)
	service := NewIngestService(mockLocationUC, mockForwarder, discardLogger())

	ctx := context.Background()
	payload := []byte(`{"mascota":9,"latitude":1.0,"longitude":2.0}`)

	mockLocationUC.EXPECT().
		RegisterLocation(ctx, mock.Anything).
		Return(&entity.Location{ID: 4, MascotaID: 9}, nil)

	mockForwarder.EXPECT().
		Forward(ctx, mock.Anything).
		Return(errors.New("sink unreachable"))

	// "Saved but not forwarded" is a terminal, valid outcome.
	err := service.HandleMessage(ctx, "ubicacion", payload)
	assert.NoError(t, err)
}
