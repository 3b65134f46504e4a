package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/handler"
)

// mockDestinationServicer is a test double for handler.DestinationServicer.
type mockDestinationServicer struct {
	register func(ctx context.Context, cityName, province, country string, baseCost float64) (domain.DestinationView, error)
	list     func(ctx context.Context) ([]domain.DestinationView, error)
	update   func(ctx context.Context, id uuid.UUID, field, value string) (domain.DestinationView, error)
	delete   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDestinationServicer) Register(ctx context.Context, cityName, province, country string, baseCost float64) (domain.DestinationView, error) {
	return m.register(ctx, cityName, province, country, baseCost)
}
func (m *mockDestinationServicer) List(ctx context.Context) ([]domain.DestinationView, error) {
	return m.list(ctx)
}
func (m *mockDestinationServicer) Update(ctx context.Context, id uuid.UUID, field, value string) (domain.DestinationView, error) {
	return m.update(ctx, id, field, value)
}
func (m *mockDestinationServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.DestinationServicer = (*mockDestinationServicer)(nil)

func destinationFixture() domain.DestinationView {
	return domain.DestinationView{
		ID:       uuid.New(),
		CityID:   uuid.New(),
		City:     "Mendoza",
		Province: "Mendoza",
		Country:  "Argentina",
		BaseCost: 150000,
	}
}

// ---- POST /destinations --------------------------------------------------------

func TestCreateDestination_201(t *testing.T) {
	fixture := destinationFixture()
	h := newHTTPHandler(nil, &mockDestinationServicer{
		register: func(context.Context, string, string, string, float64) (domain.DestinationView, error) {
			return fixture, nil
		},
	}, nil)

	rec := doRequest(t, h, http.MethodPost, "/destinations", jsonBody(t, handler.CreateDestinationRequest{
		City:     "Mendoza",
		Province: "Mendoza",
		Country:  "Argentina",
		BaseCost: 150000,
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.DestinationView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, fixture.ID, got.ID)
	assert.Equal(t, "Mendoza", got.City)
}

func TestCreateDestination_422_NonPositiveCost(t *testing.T) {
	h := newHTTPHandler(nil, &mockDestinationServicer{
		register: func(context.Context, string, string, string, float64) (domain.DestinationView, error) {
			return domain.DestinationView{}, domain.ErrValidation
		},
	}, nil)

	rec := doRequest(t, h, http.MethodPost, "/destinations", jsonBody(t, handler.CreateDestinationRequest{
		City: "Mendoza", Province: "Mendoza", Country: "Argentina", BaseCost: -5,
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- PATCH /destinations/{id} -----------------------------------------------

func TestUpdateDestination_200(t *testing.T) {
	fixture := destinationFixture()
	var gotID uuid.UUID
	h := newHTTPHandler(nil, &mockDestinationServicer{
		update: func(_ context.Context, id uuid.UUID, _, _ string) (domain.DestinationView, error) {
			gotID = id
			return fixture, nil
		},
	}, nil)

	rec := doRequest(t, h, http.MethodPatch, "/destinations/"+fixture.ID.String(), jsonBody(t, handler.UpdateFieldRequest{
		Field: "baseCost",
		Value: "200000",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixture.ID, gotID)
}

func TestUpdateDestination_422_BadUUID(t *testing.T) {
	h := newHTTPHandler(nil, &mockDestinationServicer{}, nil)

	rec := doRequest(t, h, http.MethodPatch, "/destinations/not-a-uuid", jsonBody(t, handler.UpdateFieldRequest{
		Field: "city", Value: "Cordoba",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateDestination_404(t *testing.T) {
	h := newHTTPHandler(nil, &mockDestinationServicer{
		update: func(context.Context, uuid.UUID, string, string) (domain.DestinationView, error) {
			return domain.DestinationView{}, domain.ErrNotFound
		},
	}, nil)

	rec := doRequest(t, h, http.MethodPatch, "/destinations/"+uuid.NewString(), jsonBody(t, handler.UpdateFieldRequest{
		Field: "city", Value: "Cordoba",
	}))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "destination not found", resp.Error.Message)
}

// ---- DELETE /destinations/{id} -----------------------------------------------

func TestDeleteDestination_204(t *testing.T) {
	h := newHTTPHandler(nil, &mockDestinationServicer{
		delete: func(context.Context, uuid.UUID) error { return nil },
	}, nil)

	rec := doRequest(t, h, http.MethodDelete, "/destinations/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteDestination_409_HasSales(t *testing.T) {
	h := newHTTPHandler(nil, &mockDestinationServicer{
		delete: func(context.Context, uuid.UUID) error { return domain.ErrConflict },
	}, nil)

	rec := doRequest(t, h, http.MethodDelete, "/destinations/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "destination has sales on record", resp.Error.Message)
}
