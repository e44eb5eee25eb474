package funds

import (
	"context"
	"errors"
	"testing"

	"github.com/aristath/fundfolio/internal/domain"
	testingpkg "github.com/aristath/fundfolio/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, cleanup := testingpkg.NewTestDB(t, "catalog")
	t.Cleanup(cleanup)
	return NewRepository(db.Conn(), zerolog.Nop())
}

func TestRepository_SeedAndLookup(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	n, err := repo.Seed(ctx, fixtureEntries())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	rec, err := repo.LookupFund(ctx, "SWEDEN USA INDEX", nil)
	require.NoError(t, err)

	// Every field survives the msgpack round trip
	expected := testingpkg.NewFundFixtures()[0]
	assert.Equal(t, expected, rec)

	rec, err = repo.LookupFund(ctx, "unknown", []string{"Tillväxtmarknad"})
	require.NoError(t, err)
	assert.Equal(t, testingpkg.FundEmerging, rec.Name)

	names, err := repo.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		testingpkg.FundEmerging,
		testingpkg.FundSwedenGermany,
		testingpkg.FundSwedenUSA,
	}, names)
}

func TestRepository_LookupFund_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.LookupFund(context.Background(), "ghost", []string{"phantom"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFundNotFound))
}

func TestRepository_UpsertReplacesAliases(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	rec := testingpkg.NewFundFixtures()[1]
	require.NoError(t, repo.Upsert(ctx, CatalogEntry{FundRecord: rec, Aliases: []string{"Old Alias"}}))

	rec.ProductFee = 0.9
	require.NoError(t, repo.Upsert(ctx, CatalogEntry{FundRecord: rec, Aliases: []string{"New Alias"}}))

	_, err := repo.LookupFund(ctx, "Old Alias", nil)
	assert.True(t, errors.Is(err, domain.ErrFundNotFound))

	got, err := repo.LookupFund(ctx, "new alias", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.9, got.ProductFee)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_NameBeatsAlias(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	records := testingpkg.NewFundFixtures()
	// The second fund claims the first fund's name as an alias
	require.NoError(t, repo.Upsert(ctx, CatalogEntry{FundRecord: records[1], Aliases: []string{records[0].Name}}))
	require.NoError(t, repo.Upsert(ctx, CatalogEntry{FundRecord: records[0]}))

	got, err := repo.LookupFund(ctx, records[0].Name, nil)
	require.NoError(t, err)
	assert.Equal(t, records[0].Name, got.Name)
}

func TestRepository_UpsertRequiresName(t *testing.T) {
	repo := newTestRepository(t)
	err := repo.Upsert(context.Background(), CatalogEntry{})
	assert.Error(t, err)
}
