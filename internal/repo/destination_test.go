package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/repo"
)

func cityFixture() domain.City {
	return domain.City{
		Name:     "Mendoza",
		Province: "Mendoza",
		Country:  "Argentina",
		BaseCost: 150000,
	}
}

func TestDestinationRepo_Create(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	got, err := r.Create(ctx, cityFixture())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.NotEqual(t, uuid.Nil, got.CityID)
	assert.Equal(t, "Mendoza", got.City)
	assert.Equal(t, 150000.0, got.BaseCost)
}

func TestDestinationRepo_Create_ReusesExactCity(t *testing.T) {
	// Two destinations for the same (name, province, country) triple share
	// one city row, and the stored base cost wins over the second request's.
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	first, err := r.Create(ctx, cityFixture())
	require.NoError(t, err)

	again := cityFixture()
	again.BaseCost = 999999
	second, err := r.Create(ctx, again)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "each registration is its own destination")
	assert.Equal(t, first.CityID, second.CityID, "the exact triple reuses the city")
	assert.Equal(t, 150000.0, second.BaseCost, "the existing city keeps its cost")
}

func TestDestinationRepo_Create_DifferentProvinceIsNewCity(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	first, err := r.Create(ctx, cityFixture())
	require.NoError(t, err)

	other := cityFixture()
	other.Province = "San Juan"
	second, err := r.Create(ctx, other)
	require.NoError(t, err)

	assert.NotEqual(t, first.CityID, second.CityID, "any differing triple component means a different city")
}

func TestDestinationRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationRepo_Update_BaseCost(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, cityFixture())
	require.NoError(t, err)

	got, err := r.Update(ctx, created.ID, domain.DestinationFieldBaseCost, "", 200000)

	require.NoError(t, err)
	assert.Equal(t, 200000.0, got.BaseCost)
}

func TestDestinationRepo_Update_SharedCityAffectsSiblings(t *testing.T) {
	// Updating through one destination edits the city row, which both
	// destinations display.
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	first, err := r.Create(ctx, cityFixture())
	require.NoError(t, err)
	second, err := r.Create(ctx, cityFixture())
	require.NoError(t, err)

	_, err = r.Update(ctx, first.ID, domain.DestinationFieldBaseCost, "", 175000)
	require.NoError(t, err)

	sibling, err := r.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 175000.0, sibling.BaseCost)
}

func TestDestinationRepo_Update_NotFound(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))

	_, err := r.Update(context.Background(), uuid.New(), domain.DestinationFieldCity, "Nowhere", 0)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationRepo_Delete_RemovesUnreferencedCity(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewDestinationRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, cityFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	var cityCount int
	err = tx.QueryRow(ctx, `SELECT count(*) FROM cities WHERE id = $1`, created.CityID).Scan(&cityCount)
	require.NoError(t, err)
	assert.Zero(t, cityCount, "the last destination takes its city with it")
}

func TestDestinationRepo_Delete_KeepsSharedCity(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	first, err := r.Create(ctx, cityFixture())
	require.NoError(t, err)
	second, err := r.Create(ctx, cityFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, first.ID))

	got, err := r.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, first.CityID, got.CityID, "a still-referenced city survives")
}

func TestDestinationRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationRepo_List_Ordered(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	mendoza := cityFixture()
	_, err := r.Create(ctx, mendoza)
	require.NoError(t, err)

	cordoba := domain.City{Name: "Cordoba", Province: "Cordoba", Country: "Argentina", BaseCost: 120000}
	_, err = r.Create(ctx, cordoba)
	require.NoError(t, err)

	views, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Cordoba", views[0].City)
	assert.Equal(t, "Mendoza", views[1].City)
}
