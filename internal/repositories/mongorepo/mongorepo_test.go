package mongorepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"solotrip/internal/models/db_models"
	"solotrip/internal/repositories"
)

func toDoc(t *testing.T, v any) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestAccountRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		acc := &db_models.Account{Name: "Asha", Email: "asha@example.com", PasswordHash: "h"}

		require.NoError(mt, NewAccountRepository(mt.DB).Insert(context.Background(), acc))
		assert.NotEmpty(mt, acc.ID)
		assert.False(mt, acc.CreatedAt.IsZero())
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))
		err := NewAccountRepository(mt.DB).Insert(context.Background(), &db_models.Account{Email: "a@b.c"})
		assert.ErrorIs(mt, err, repositories.ErrDuplicateKey)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		stored := db_models.Account{BaseModel: db_models.BaseModel{ID: "u-1"}, Name: "Asha", Email: "asha@example.com"}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "solotrip.users", mtest.FirstBatch, toDoc(mt.T, stored)))

		got, err := NewAccountRepository(mt.DB).FindByEmail(context.Background(), "asha@example.com")
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, "u-1", got.ID)
		assert.Equal(mt, "Asha", got.Name)
	})

	mt.Run("not found is nil, nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "solotrip.users", mtest.FirstBatch))

		got, err := NewAccountRepository(mt.DB).FindById(context.Background(), "missing")
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})
}

func TestTripRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	created := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	trip := db_models.Trip{
		BaseModel: db_models.BaseModel{ID: "t-1", CreatedAt: created},
		UserID:    "u-1",
		City:      "Varanasi",
		Country:   "Verified",
		Days:      3,
		Interests: []string{"Culture", "Photography"},
		Plans: []db_models.DayPlan{{
			Day:    1,
			Places: []db_models.Place{{Name: "Dashashwamedh Ghat", MapsURL: "https://maps"}},
		}},
	}

	mt.Run("list by user", func(mt *mtest.T) {
		second := trip
		second.ID = "t-0"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "solotrip.trips", mtest.FirstBatch,
			toDoc(mt.T, trip), toDoc(mt.T, second)))

		trips, err := NewTripRepository(mt.DB).ListByUser(context.Background(), "u-1")
		require.NoError(mt, err)
		require.Len(mt, trips, 2)
		assert.Equal(mt, "t-1", trips[0].ID)
		assert.Equal(mt, []string{"Culture", "Photography"}, []string(trips[0].Interests))
		assert.Equal(mt, "Dashashwamedh Ghat", trips[0].Plans[0].Places[0].Name)
		assert.True(mt, created.Equal(trips[0].CreatedAt))
	})

	mt.Run("check existing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "solotrip.trips", mtest.FirstBatch, toDoc(mt.T, trip)))

		got, err := NewTripRepository(mt.DB).FindByUserCityDays(context.Background(), "u-1", "Varanasi", 3)
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, 3, got.Days)
	})

	mt.Run("delete reports match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		deleted, err := NewTripRepository(mt.DB).DeleteByUser(context.Background(), "u-1", "t-1")
		require.NoError(mt, err)
		assert.True(mt, deleted)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		deleted, err = NewTripRepository(mt.DB).DeleteByUser(context.Background(), "u-2", "t-1")
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})
}

func TestCommentAndExperienceRepositories(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("comments", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		c := &db_models.Comment{TripID: "t-1", UserID: "u-1", UserName: "Asha", Text: "Wow"}
		repo := NewCommentRepository(mt.DB)
		require.NoError(mt, repo.Insert(context.Background(), c))
		assert.NotEmpty(mt, c.ID)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "solotrip.comments", mtest.FirstBatch, toDoc(mt.T, c)))
		got, err := repo.ListByTrip(context.Background(), "t-1")
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, "Wow", got[0].Text)
	})

	mt.Run("experiences", func(mt *mtest.T) {
		rating := 5
		e := db_models.Experience{BaseModel: db_models.BaseModel{ID: "e-1"}, User: "Asha", Experience: "Boat ride", Location: "Varanasi", Rating: &rating}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "solotrip.experiences", mtest.FirstBatch, toDoc(mt.T, e)))

		got, err := NewExperienceRepository(mt.DB).ListByLocation(context.Background(), "vara(nasi")
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		require.NotNil(mt, got[0].Rating)
		assert.Equal(mt, 5, *got[0].Rating)
	})
}
