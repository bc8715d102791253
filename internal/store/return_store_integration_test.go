package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pallet-returns-dashboard/config"
	"pallet-returns-dashboard/internal/database"
	"pallet-returns-dashboard/internal/models"
	"pallet-returns-dashboard/internal/store"
)

type mongoEnv struct {
	Client *mongo.Client
	Coll   *mongo.Collection
	Store  *store.ReturnStore
}

func upMongo(t *testing.T) *mongoEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping docker based test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.Run("mongo", "7", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	env := &mongoEnv{}
	cfg := config.MongoConfig{DBName: "returnsDB", Collection: "returns", ConnectTimeout: 5 * time.Second}
	require.NoError(t, pool.Retry(func() error {
		cfg.URI = fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))
		client, err := database.Connect(context.Background(), cfg)
		if err != nil {
			return err
		}
		env.Client = client
		return nil
	}))
	t.Cleanup(func() { _ = env.Client.Disconnect(context.Background()) })

	env.Coll = database.ReturnsCollection(env.Client, cfg)
	require.NoError(t, database.EnsureIndexes(context.Background(), env.Coll, true))
	env.Store = store.NewReturnStore(env.Coll)
	return env
}

func fakeReturn(f *gofakeit.Faker) models.ReturnRequest {
	return models.ReturnRequest{
		CustomerName: f.Company(),
		ReturnDate:   models.NewReturnDate(f.DateRange(time.Now().AddDate(0, -3, 0), time.Now())),
		PalletCount:  f.IntRange(1, 40),
		Remarks:      f.Sentence(4),
	}
}

func Test_Mongo_ReturnLifecycle(t *testing.T) {
	env := upMongo(t)
	ctx := context.Background()
	f := gofakeit.New(42)

	first := fakeReturn(f)
	require.NoError(t, env.Store.Insert(ctx, &first))
	require.Equal(t, models.StatusPending, first.Status)
	require.NotEmpty(t, first.ID)

	second := fakeReturn(f)
	second.ID = models.RecordID(f.UUID())
	second.OrderID = "ORD123"
	require.NoError(t, env.Store.Insert(ctx, &second))

	all, err := env.Store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, first.ID, all[0].ID)

	// a string _id is reachable both by itself and by orderId
	byID, err := env.Store.FindByIdentifier(ctx, string(second.ID))
	require.NoError(t, err)
	require.Equal(t, "ORD123", byID.OrderID)
	byOrder, err := env.Store.FindByIdentifier(ctx, "ORD123")
	require.NoError(t, err)
	require.Equal(t, second.ID, byOrder.ID)

	// only the patched fields change
	updated, err := env.Store.UpdateFields(ctx, string(first.ID), models.StatusPatch(models.StatusRejected))
	require.NoError(t, err)
	require.Equal(t, models.StatusRejected, updated.Status)
	require.Equal(t, first.CustomerName, updated.CustomerName)
	require.Equal(t, first.PalletCount, updated.PalletCount)
	require.Equal(t, first.ReturnDate.String(), updated.ReturnDate.String())
	require.Equal(t, first.Remarks, updated.Remarks)

	// any transition is allowed
	back, err := env.Store.UpdateFields(ctx, string(first.ID), models.StatusPatch(models.StatusPending))
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, back.Status)

	_, err = env.Store.UpdateFields(ctx, "ORD-missing", models.StatusPatch(models.StatusCompleted))
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, env.Store.Delete(ctx, "ORD-missing"), store.ErrNotFound)
	n, err := env.Store.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	require.NoError(t, env.Store.Delete(ctx, "ORD123"))
	n, err = env.Store.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func Test_Mongo_DuplicateOrderID(t *testing.T) {
	env := upMongo(t)
	ctx := context.Background()
	f := gofakeit.New(7)

	a := fakeReturn(f)
	a.OrderID = "ORD-dup"
	require.NoError(t, env.Store.Insert(ctx, &a))

	b := fakeReturn(f)
	b.OrderID = "ORD-dup"
	require.ErrorIs(t, env.Store.Insert(ctx, &b), store.ErrDuplicateOrderID)
}

func Test_Mongo_LegacyStringDates(t *testing.T) {
	env := upMongo(t)
	ctx := context.Background()

	// documents written by the previous frontend kept returnDate as a string
	_, err := env.Coll.InsertOne(ctx, bson.M{
		"_id":          "9b2f0c1e-legacy",
		"orderId":      "ORD-legacy",
		"customerName": "ABC Company",
		"returnDate":   "2025-10-01",
		"palletCount":  3,
		"status":       "Pending",
	})
	require.NoError(t, err)

	r, err := env.Store.FindByIdentifier(ctx, "ORD-legacy")
	require.NoError(t, err)
	require.Equal(t, "2025-10-01", r.ReturnDate.String())
	require.Equal(t, models.RecordID("9b2f0c1e-legacy"), r.ID)
}
