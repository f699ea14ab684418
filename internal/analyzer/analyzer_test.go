package analyzer

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/scrydb/scrydb/internal/db/controller/card"
	"github.com/scrydb/scrydb/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Card{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seed(t *testing.T, db *gorm.DB, cards []models.Card) {
	t.Helper()
	for _, c := range cards {
		require.NoError(t, db.Create(&c).Error)
	}
}

func TestRecommend(t *testing.T) {
	db := setupTestDB(t)

	seed(t, db, []models.Card{
		{Name: "Lightning Bolt", SetNames: "Limited Edition Alpha, Magic 2010", Deck: "Burn"},
		{Name: "Fireblast", SetNames: "Visions, Magic 2010", Deck: "Burn"},
		{Name: "Counterspell", SetNames: "Limited Edition Alpha", Deck: "Control"},
		{Name: "Giant Growth", SetNames: "Limited Edition Alpha"}, // not proxied
	})

	scores, err := Recommend(db, 0)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Limited Edition Alpha covers Bolt and Counterspell
	assert.Equal(t, "Limited Edition Alpha", scores[0].Set)
	assert.Equal(t, 2, scores[0].ProxiedCards)
	assert.Equal(t, []string{"Counterspell", "Lightning Bolt"}, scores[0].Cards)

	// Magic 2010 also covers two; ties break alphabetically, L < M
	assert.Equal(t, "Magic 2010", scores[1].Set)
	assert.Equal(t, 2, scores[1].ProxiedCards)

	assert.Equal(t, "Visions", scores[2].Set)
	assert.Equal(t, 1, scores[2].ProxiedCards)
}

func TestRecommendLimit(t *testing.T) {
	db := setupTestDB(t)

	seed(t, db, []models.Card{
		{Name: "Lightning Bolt", SetNames: "Limited Edition Alpha, Magic 2010", Deck: "Burn"},
		{Name: "Fireblast", SetNames: "Visions", Deck: "Burn"},
	})

	scores, err := Recommend(db, 1)
	require.NoError(t, err)
	require.Len(t, scores, 1)
}

func TestRecommendEmpty(t *testing.T) {
	db := setupTestDB(t)

	scores, err := Recommend(db, 0)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestRecommendNilDB(t *testing.T) {
	_, err := Recommend(nil, 0)
	require.ErrorIs(t, err, card.ErrDBNil)
}
