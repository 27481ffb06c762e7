package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api-be/internal/criteria"
	"notes-api-be/internal/dto"
	"notes-api-be/internal/entity"
	"notes-api-be/internal/pkg/apperror"
	"notes-api-be/internal/repository/specification"
	"notes-api-be/internal/repository/unitofwork"
	"notes-api-be/internal/service"
	"notes-api-be/pkg/database"
)

func setupDB(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	return unitofwork.NewRepositoryFactory(gormDB)
}

func createUser(t *testing.T, factory unitofwork.RepositoryFactory, login string) int64 {
	t.Helper()
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	user := &entity.User{Login: login}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	return user.Id
}

func TestNoteRepositoryRoundtrip(t *testing.T) {
	factory := setupDB(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	ownerID := createUser(t, factory, "roundtrip-"+time.Now().Format("150405.000000"))

	note := &entity.Note{Content: "integration roundtrip", UserId: &ownerID}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	require.NotZero(t, note.Id)
	t.Cleanup(func() {
		_, _ = uow.NoteRepository().Delete(context.Background(), note.Id)
	})

	found, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "integration roundtrip", found.Content)
	require.NotNil(t, found.UserId)
	assert.Equal(t, ownerID, *found.UserId)
	assert.False(t, found.CreatedAt.IsZero())

	exists, err := uow.NoteRepository().Exists(ctx, note.Id)
	require.NoError(t, err)
	assert.True(t, exists)

	// Deleting twice must both succeed; only the first removes a row.
	deleted, err := uow.NoteRepository().Delete(ctx, note.Id)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = uow.NoteRepository().Delete(ctx, note.Id)
	require.NoError(t, err)
	assert.False(t, deleted)

	gone, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestNoteServiceLifecycle(t *testing.T) {
	factory := setupDB(t)
	ctx := context.Background()
	svc := service.NewNoteService(factory, nil, nil)

	ownerID := createUser(t, factory, "lifecycle-"+time.Now().Format("150405.000000"))

	created, err := svc.Create(ctx, &ownerID, &dto.NoteRequest{Content: "first draft"})
	require.NoError(t, err)
	require.NotZero(t, created.Id)
	t.Cleanup(func() {
		_ = svc.Delete(context.Background(), &ownerID, created.Id)
	})

	shown, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "first draft", shown.Content)

	patched, err := svc.PartialUpdate(ctx, &ownerID, created.Id, &dto.NotePatchRequest{
		Id:      &created.Id,
		Content: dto.OptionalString{Set: true, Valid: true, Value: "second draft"},
	})
	require.NoError(t, err)
	assert.Equal(t, "second draft", patched.Content)
	assert.Equal(t, created.CreatedAt.Unix(), patched.CreatedAt.Unix())

	replaced, err := svc.Replace(ctx, &ownerID, created.Id, &dto.NoteRequest{
		Id:      &created.Id,
		Content: "final draft",
	})
	require.NoError(t, err)
	assert.Equal(t, "final draft", replaced.Content)

	require.NoError(t, svc.Delete(ctx, &ownerID, created.Id))

	_, err = svc.Show(ctx, created.Id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestNoteListFilteringAndCount(t *testing.T) {
	factory := setupDB(t)
	ctx := context.Background()
	svc := service.NewNoteService(factory, nil, nil)

	ownerID := createUser(t, factory, "filtering-"+time.Now().Format("150405.000000"))
	otherID := createUser(t, factory, "bystander-"+time.Now().Format("150405.000000"))

	marker := "marker-" + time.Now().Format("150405.000000")
	contents := []string{marker + " alpha", marker + " beta", "unrelated " + marker}
	for _, content := range contents {
		resp, err := svc.Create(ctx, &ownerID, &dto.NoteRequest{Content: content})
		require.NoError(t, err)
		id := resp.Id
		t.Cleanup(func() {
			_ = svc.Delete(context.Background(), &ownerID, id)
		})
	}
	foreign, err := svc.Create(ctx, &otherID, &dto.NoteRequest{Content: marker + " foreign"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = svc.Delete(context.Background(), &otherID, foreign.Id)
	})

	crit := &criteria.NoteCriteria{
		Content: &criteria.StringFilter{Contains: &marker},
	}
	page, err := dto.ParsePageable("0", "50", []string{"content,asc"})
	require.NoError(t, err)

	// Owner scoping keeps the other identity's note out even though it
	// matches the content filter.
	list, err := svc.List(ctx, &ownerID, crit, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
	require.Len(t, list.Items, 3)
	for _, item := range list.Items {
		require.NotNil(t, item.UserId)
		assert.Equal(t, ownerID, *item.UserId)
	}

	count, err := svc.Count(ctx, &ownerID, &criteria.NoteCriteria{
		Content: &criteria.StringFilter{Contains: &marker},
	})
	require.NoError(t, err)
	assert.Equal(t, list.Total, count)

	// A client-supplied owner filter cannot widen the scope.
	widened := &criteria.NoteCriteria{
		Content: &criteria.StringFilter{Contains: &marker},
		UserID:  &criteria.RangeFilter[int64]{Equals: &otherID},
	}
	list, err = svc.List(ctx, &ownerID, widened, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
}
