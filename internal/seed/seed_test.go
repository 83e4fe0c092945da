package seed

import (
	"context"
	"testing"

	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	db := testutil.NewMigratedDB(t)
	ctx := context.Background()

	sum, err := Run(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, Summary{Stores: 2, Books: 4, Authors: 5}, sum)

	var eve model.Author
	require.NoError(t, db.Preload("Books").Where("first_name = ?", "Eve").First(&eve).Error)
	assert.Equal(t, "Porcello", eve.LastName)
	require.Len(t, eve.Books, 1)
	assert.Equal(t, "Learning GraphQL", eve.Books[0].Name)
	assert.Equal(t, "a", eve.Books[0].Tenant)

	var links int64
	require.NoError(t, db.Model(&model.BookAuthor{}).Count(&links).Error)
	assert.EqualValues(t, 5, links)
}

func TestRun_SkipsSeededDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := Run(ctx, db)
	require.NoError(t, err)

	sum, err := Run(ctx, db)
	require.NoError(t, err)
	assert.True(t, sum.Skipped)

	var count int64
	require.NoError(t, db.Model(&model.Author{}).Count(&count).Error)
	assert.EqualValues(t, 5, count)
}
