package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"MentorMarket/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func startMongo(t *testing.T) *MongoDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB test in short mode")
	}
	ctx := context.Background()

	var (
		container testcontainers.Container
		err       error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("docker not available: %v", r)
			}
		}()
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "mongo:7",
				ExposedPorts: []string{"27017/tcp"},
				WaitingFor:   wait.ForLog("Waiting for connections"),
				Tmpfs:        map[string]string{"/data/db": "rw"},
			},
			Started: true,
		})
	}()
	if err != nil {
		t.Skipf("Docker not available, skipping MongoDB test: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	client, err := connect(connectCtx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s", host, port.Port())))
	require.NoError(t, err)

	db := NewMongoDB(client, "mentor_test", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, db.ensureIndexes(connectCtx))
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	return db
}

func TestMongoMentorLifecycle(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()

	ada, err := db.CreateMentor(ctx, entity.NewMentor(&entity.RegisterRequest{
		Name:         "Ada",
		Expertise:    map[string]interface{}{"primary": "Systems"},
		Location:     "Boston",
		Availability: []interface{}{"Mon 9-10", map[string]interface{}{"day": "Tue"}},
	}))
	require.NoError(t, err)
	require.NotEmpty(t, ada.ID)

	_, err = db.CreateMentor(ctx, entity.NewMentor(&entity.RegisterRequest{
		Name: "Grace", Expertise: "Compilers", Location: "St. (Paul)",
	}))
	require.NoError(t, err)

	found, err := db.FindMentorsByLocation(ctx, "bos")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ada.ID, found[0].ID)
	data, err := json.Marshal(found[0])
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"name":"Ada","expertise":{"primary":"Systems"},"location":"Boston","availability":["Mon 9-10",{"day":"Tue"}]}`, ada.ID), string(data))

	found, err = db.FindMentorsByLocation(ctx, ". (p")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, []interface{}{}, found[0].Availability)

	found, err = db.FindMentorsByLocation(ctx, "chicago")
	require.NoError(t, err)
	assert.Empty(t, found)

	got, err := db.GetMentor(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, got.Availability, 2)
	assert.Equal(t, "Mon 9-10", got.Availability[0])

	_, err = db.GetMentor(ctx, entity.NewMentorID())
	assert.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, db.Ping(ctx))
}
