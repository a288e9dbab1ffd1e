package character_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
	character "github.com/KirkDiggler/vtm-builder/internal/repositories/character"
)

func TestRedisRepository_StorageFailures(t *testing.T) {
	ctx := context.Background()
	boom := stderrors.New("connection reset")

	newRepo := func(t *testing.T) (character.Repository, redismock.ClientMock) {
		db, mock := redismock.NewClientMock()
		repo, err := character.NewRedis(&character.RedisConfig{Client: db})
		require.NoError(t, err)
		return repo, mock
	}

	t.Run("get error is internal", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectGet(testCharKey).SetErr(boom)

		_, err := repo.Get(ctx, character.GetInput{ID: testCharID})
		assert.True(t, errors.IsInternal(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt json is internal", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectGet(testCharKey).SetVal("{not json")

		_, err := repo.Get(ctx, character.GetInput{ID: testCharID})
		assert.True(t, errors.IsInternal(err))
	})

	t.Run("exists error stops create", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExists(testCharKey).SetErr(boom)

		_, err := repo.Create(ctx, character.CreateInput{Character: &vtm.Character{ID: testCharID, PlayerID: testPlayerID}})
		assert.True(t, errors.IsInternal(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("index read error stops list", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectSMembers(testPlayerKey).SetErr(boom)

		_, err := repo.ListByPlayerID(ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
