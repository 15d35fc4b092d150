package memstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/infrastructure/memstore"
)

func TestUserRepository_CaseInsensitiveLookups(t *testing.T) {
	store := memstore.NewStore(memstore.Seed())
	repo := memstore.NewUserRepository(store)
	ctx := context.Background()

	byEmail, err := repo.GetUserByEmail(ctx, "QUEEN@VIBRA.APP")
	require.NoError(t, err)
	assert.Equal(t, "user-1", byEmail.ID)

	byUsername, err := repo.GetUserByUsername(ctx, "CryptoQueen")
	require.NoError(t, err)
	assert.Equal(t, "user-1", byUsername.ID)

	_, err = repo.GetUserByEmail(ctx, "nobody@vibra.app")
	assert.ErrorIs(t, err, contract.ErrUserNotFound)
}

func TestUserRepository_CreateRejectsDuplicateID(t *testing.T) {
	store := memstore.NewStore(memstore.Seed())
	repo := memstore.NewUserRepository(store)

	err := repo.CreateUser(context.Background(), &entity.User{ID: "user-1"})
	assert.ErrorIs(t, err, contract.ErrDuplicateEntry)
}

func TestUserRepository_UpdateIsVisibleToReads(t *testing.T) {
	store := memstore.NewStore(memstore.Seed())
	repo := memstore.NewUserRepository(store)
	ctx := context.Background()

	user, err := repo.GetUserByID(ctx, "user-3")
	require.NoError(t, err)
	user.Username = "dave_renamed"

	_, err = repo.UpdateUser(ctx, user)
	require.NoError(t, err)

	fresh, err := repo.GetUserByID(ctx, "user-3")
	require.NoError(t, err)
	assert.Equal(t, "dave_renamed", fresh.Username)
}

func TestVideoRepository_ReadsAreIsolatedCopies(t *testing.T) {
	store := memstore.NewStore(memstore.Seed())
	repo := memstore.NewVideoRepository(store)
	ctx := context.Background()

	videos, err := repo.ListVideos(ctx)
	require.NoError(t, err)
	videos[0].Likes = 0
	videos[0].Tags[0] = "mutated"

	fresh, err := repo.ListVideos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12400), fresh[0].Likes)
	assert.Equal(t, "bitcoin", fresh[0].Tags[0])
}

func TestVideoRepository_ListByUser(t *testing.T) {
	store := memstore.NewStore(memstore.Seed())
	repo := memstore.NewVideoRepository(store)

	videos, err := repo.ListVideosByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "video-1", videos[0].ID)
	assert.Equal(t, "video-3", videos[1].ID)
}

func TestCommentRepository_ListByVideo(t *testing.T) {
	store := memstore.NewStore(memstore.Seed())
	repo := memstore.NewCommentRepository(store)

	comments, err := repo.ListCommentsByVideo(context.Background(), "video-1")
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestReportRepository_UpdateStatus(t *testing.T) {
	store := memstore.NewStore(memstore.Seed())
	repo := memstore.NewReportRepository(store)
	ctx := context.Background()

	updated, err := repo.UpdateReportStatus(ctx, "report-1", entity.ReportStatusDismissed)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusDismissed, updated.Status)

	fresh, err := repo.GetReportByID(ctx, "report-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusDismissed, fresh.Status)

	_, err = repo.UpdateReportStatus(ctx, "report-999", entity.ReportStatusResolved)
	assert.ErrorIs(t, err, contract.ErrReportNotFound)
}
