package postgres

import (
	"context"
	"errors"
	"testing"

	"devdash/internal/domain/archive"
	"devdash/internal/domain/listing"
	"devdash/internal/infrastructure/storage"
	"devdash/internal/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	a := m.Called(args...)
	return pgconn.NewCommandTag(a.String(0)), a.Error(1)
}

func (m *MockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	a := m.Called(args...)
	return nil, a.Error(0)
}

func (m *MockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	a := m.Called(args...)
	return a.Get(0).(pgx.Row)
}

type row struct {
	payload []byte
	err     error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

func archiveStore(q querier) *Store[archive.Archive] {
	return NewStore(q, "archives", func(a archive.Archive) string { return a.ID },
		storage.JSONCodec[archive.Archive]{}, logger.Discard())
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		q := new(MockQuerier)
		q.On("QueryRow", "archives", "1").
			Return(row{payload: []byte(`{"id":"1","name":"E-commerce Platform v1.0","status":"completed","downloads":12}`)})

		got, err := archiveStore(q).Get(ctx, "1")

		require.NoError(t, err)
		assert.Equal(t, "E-commerce Platform v1.0", got.Name)
		assert.Equal(t, 12, got.Downloads)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockQuerier)
		q.On("QueryRow", "archives", "9").Return(row{err: pgx.ErrNoRows})

		_, err := archiveStore(q).Get(ctx, "9")

		assert.ErrorIs(t, err, listing.ErrNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		q := new(MockQuerier)
		q.On("QueryRow", "archives", "1").Return(row{err: errors.New("conn closed")})

		_, err := archiveStore(q).Get(ctx, "1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, listing.ErrNotFound)
	})
}

func TestStore_Create(t *testing.T) {
	ctx := context.Background()
	rec := archive.Archive{ID: "4", Name: "Snapshot", Status: archive.StatusArchived}

	t.Run("inserted", func(t *testing.T) {
		q := new(MockQuerier)
		q.On("Exec", "archives", "4", mock.Anything).Return("INSERT 0 1", nil)

		_, err := archiveStore(q).Create(ctx, rec)

		assert.NoError(t, err)
		q.AssertExpectations(t)
	})

	t.Run("conflict", func(t *testing.T) {
		q := new(MockQuerier)
		q.On("Exec", "archives", "4", mock.Anything).Return("INSERT 0 0", nil)

		_, err := archiveStore(q).Create(ctx, rec)

		assert.ErrorIs(t, err, listing.ErrDuplicateID)
	})
}

func TestStore_UpdateRemove_NotFound(t *testing.T) {
	ctx := context.Background()
	q := new(MockQuerier)
	q.On("Exec", "archives", "7", mock.Anything).Return("UPDATE 0", nil)
	q.On("Exec", "archives", "7").Return("UPDATE 0", nil)

	_, err := archiveStore(q).Update(ctx, archive.Archive{ID: "7"})
	assert.ErrorIs(t, err, listing.ErrNotFound)

	err = archiveStore(q).Remove(ctx, "7")
	assert.ErrorIs(t, err, listing.ErrNotFound)
}

func TestStore_Seed(t *testing.T) {
	ctx := context.Background()
	q := new(MockQuerier)
	q.On("Exec", "archives", "1", mock.Anything).Return("INSERT 0 0", nil)
	q.On("Exec", "archives", "2", mock.Anything).Return("INSERT 0 1", nil)

	err := archiveStore(q).Seed(ctx, []archive.Archive{{ID: "1"}, {ID: "2"}})

	assert.NoError(t, err)
	q.AssertNumberOfCalls(t, "Exec", 2)
}

func TestStore_List_QueryError(t *testing.T) {
	q := new(MockQuerier)
	q.On("Query", "archives").Return(errors.New("boom"))

	_, err := archiveStore(q).List(context.Background())

	assert.Error(t, err)
}
