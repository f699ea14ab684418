package card

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/scrydb/scrydb/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.Card{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedCards inserts test data into the database.
func seedCards(t *testing.T, db *gorm.DB, cards []models.Card) {
	t.Helper()
	for _, c := range cards {
		err := db.Create(&c).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		cardName      string
		seedData      []models.Card
		expectedError error
		expectedRow   *models.Card
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			cardName:      "Lightning Bolt",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			cardName:      "",
			expectedError: ErrCardNameEmpty,
		},
		{
			name:          "card not found",
			dbParam:       db,
			cardName:      "Storm Crow",
			expectedError: ErrCardNotFound,
		},
		{
			name:     "successful get",
			dbParam:  db,
			cardName: "Lightning Bolt",
			seedData: []models.Card{
				{Name: "Lightning Bolt", SetNames: "Limited Edition Alpha", Rarity: "common", Colors: "R", CMC: "1", TypeLine: "Instant"},
			},
			expectedRow: &models.Card{Name: "Lightning Bolt", SetNames: "Limited Edition Alpha", Rarity: "common", Colors: "R", CMC: "1", TypeLine: "Instant"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM scryfall")
			}

			if tc.seedData != nil {
				seedCards(t, tc.dbParam, tc.seedData)
			}

			c, err := Get(tc.dbParam, tc.cardName)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedRow, c)
			}
		})
	}
}

func TestUpsert(t *testing.T) {
	db := setupTestDB(t)

	t.Run("nil database", func(t *testing.T) {
		err := Upsert(nil, &models.Card{Name: "Lightning Bolt"})
		require.ErrorIs(t, err, ErrDBNil)
	})

	t.Run("empty name", func(t *testing.T) {
		err := Upsert(db, &models.Card{})
		require.ErrorIs(t, err, ErrCardNameEmpty)
	})

	t.Run("insert then refresh keeps deck", func(t *testing.T) {
		db.Exec("DELETE FROM scryfall")

		err := Upsert(db, &models.Card{Name: "Sol Ring", SetNames: "Limited Edition Alpha", Rarity: "uncommon", CMC: "1", TypeLine: "Artifact"})
		require.NoError(t, err)

		// mark as proxied
		_, err = SetDeck(db, "Sol Ring", "Atraxa")
		require.NoError(t, err)

		// a later sync sees a new printing
		err = Upsert(db, &models.Card{Name: "Sol Ring", SetNames: "Commander 2016, Limited Edition Alpha", Rarity: "uncommon", CMC: "1", TypeLine: "Artifact"})
		require.NoError(t, err)

		c, err := Get(db, "Sol Ring")
		require.NoError(t, err)
		assert.Equal(t, "Commander 2016, Limited Edition Alpha", c.SetNames)
		assert.Equal(t, "Atraxa", c.Deck, "proxy mark should survive a re-sync")

		var count int64
		db.Model(&models.Card{}).Count(&count)
		assert.EqualValues(t, 1, count)
	})
}

func TestUpsertBatch(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		cards         []models.Card
		expectedError error
		expectedCount int64
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			cards:         []models.Card{{Name: "Lightning Bolt"}},
			expectedError: ErrDBNil,
		},
		{
			name:    "empty slice is a no-op",
			dbParam: db,
		},
		{
			name:          "card without name",
			dbParam:       db,
			cards:         []models.Card{{Name: "Lightning Bolt"}, {}},
			expectedError: ErrCardNameEmpty,
		},
		{
			name:    "successful batch",
			dbParam: db,
			cards: []models.Card{
				{Name: "Lightning Bolt", Colors: "R"},
				{Name: "Giant Growth", Colors: "G"},
				{Name: "Counterspell", Colors: "U"},
			},
			expectedCount: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM scryfall")
			}

			err := UpsertBatch(tc.dbParam, tc.cards)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)

				count, errC := Count(tc.dbParam)
				require.NoError(t, errC)
				assert.Equal(t, tc.expectedCount, count)
			}
		})
	}
}

func TestList(t *testing.T) {
	db := setupTestDB(t)

	_, err := List(nil, 0, 0)
	require.ErrorIs(t, err, ErrDBNil)

	seedCards(t, db, []models.Card{
		{Name: "Lightning Bolt"},
		{Name: "Giant Growth"},
		{Name: "Counterspell"},
	})

	all, err := List(db, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// ordered by name
	assert.Equal(t, "Counterspell", all[0].Name)
	assert.Equal(t, "Giant Growth", all[1].Name)
	assert.Equal(t, "Lightning Bolt", all[2].Name)

	page, err := List(db, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Giant Growth", page[0].Name)
}

func TestSetDeck(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		cardName      string
		deck          string
		seedData      []models.Card
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			cardName:      "Lightning Bolt",
			deck:          "Burn",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			cardName:      "",
			deck:          "Burn",
			expectedError: ErrCardNameEmpty,
		},
		{
			name:          "card not found",
			dbParam:       db,
			cardName:      "Storm Crow",
			deck:          "Birds",
			expectedError: ErrCardNotFound,
		},
		{
			name:     "successful set",
			dbParam:  db,
			cardName: "Lightning Bolt",
			deck:     "Burn",
			seedData: []models.Card{
				{Name: "Lightning Bolt", Colors: "R"},
			},
		},
		{
			name:     "clear deck",
			dbParam:  db,
			cardName: "Lightning Bolt",
			deck:     "",
			seedData: []models.Card{
				{Name: "Lightning Bolt", Colors: "R", Deck: "Burn"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM scryfall")
			}

			if tc.seedData != nil {
				seedCards(t, tc.dbParam, tc.seedData)
			}

			c, err := SetDeck(tc.dbParam, tc.cardName, tc.deck)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.deck, c.Deck)

				// Verify persistence
				var dbCard models.Card
				err = tc.dbParam.Where("name = ?", tc.cardName).First(&dbCard).Error
				require.NoError(t, err)
				assert.Equal(t, tc.deck, dbCard.Deck)
			}
		})
	}
}

func TestProxiedAndCounts(t *testing.T) {
	db := setupTestDB(t)

	_, err := Proxied(nil)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Count(nil)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = CountProxied(nil)
	require.ErrorIs(t, err, ErrDBNil)

	seedCards(t, db, []models.Card{
		{Name: "Lightning Bolt", Deck: "Burn"},
		{Name: "Giant Growth"},
		{Name: "Counterspell", Deck: "Control"},
		{Name: "Ancestral Recall", Deck: "Control"},
	})

	proxied, err := Proxied(db)
	require.NoError(t, err)
	require.Len(t, proxied, 3)
	// ordered by name
	assert.Equal(t, "Ancestral Recall", proxied[0].Name)
	assert.Equal(t, "Counterspell", proxied[1].Name)
	assert.Equal(t, "Lightning Bolt", proxied[2].Name)

	count, err := Count(db)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)

	proxiedCount, err := CountProxied(db)
	require.NoError(t, err)
	assert.EqualValues(t, 3, proxiedCount)
}
