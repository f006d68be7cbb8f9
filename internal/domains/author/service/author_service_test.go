package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-lite/internal/domains/author/model"
	"library-lite/internal/domains/author/repository"
)

func newTestService(t *testing.T, names ...string) (ServiceInterface, []model.Author) {
	t.Helper()
	seed := make([]model.Author, 0, len(names))
	for _, n := range names {
		a, err := model.NewAuthor(uuid.New(), n)
		require.NoError(t, err)
		seed = append(seed, *a)
	}
	return NewAuthorService(repository.NewMemoryRepository(seed)), seed
}

func TestAuthorService_GetAll(t *testing.T) {
	svc, seed := newTestService(t, "Brandon Sanderson", "J. K. Rowling", "George R. R. Martin")

	authors, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 3)
	for i, a := range authors {
		assert.Equal(t, seed[i].ID(), a.ID)
		assert.Equal(t, seed[i].Name(), a.Name)
	}
}

func TestAuthorService_GetAllEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	authors, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, authors)
	assert.Empty(t, authors)
}

func TestAuthorService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, model.CreateAuthorRequest{Name: "Ursula K. Le Guin"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created, got)
}

func TestAuthorService_CreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	a, err := svc.Create(ctx, model.CreateAuthorRequest{Name: "Same"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, model.CreateAuthorRequest{Name: "Same"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAuthorService_CreateBypassedValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), model.CreateAuthorRequest{Name: ""})
	assert.ErrorIs(t, err, model.ErrEmptyName)

	authors, _ := svc.GetAll(context.Background())
	assert.Empty(t, authors)
}

func TestAuthorService_Update(t *testing.T) {
	ctx := context.Background()
	svc, seed := newTestService(t, "Old Name", "Other")

	updated, found, err := svc.Update(ctx, seed[0].ID(), model.UpdateAuthorRequest{Name: "New Name"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.AuthorResponse{ID: seed[0].ID(), Name: "New Name"}, updated)

	authors, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, seed[1].ID(), authors[0].ID)
	assert.Equal(t, model.AuthorResponse{ID: seed[0].ID(), Name: "New Name"}, authors[1])
}

func TestAuthorService_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "Only")

	_, found, err := svc.Update(ctx, uuid.New(), model.UpdateAuthorRequest{Name: "X"})
	require.NoError(t, err)
	assert.False(t, found)

	authors, _ := svc.GetAll(ctx)
	assert.Equal(t, "Only", authors[0].Name)
}

func TestAuthorService_UpdateBypassedValidation(t *testing.T) {
	ctx := context.Background()
	svc, seed := newTestService(t, "Keep")

	_, _, err := svc.Update(ctx, seed[0].ID(), model.UpdateAuthorRequest{Name: " "})
	assert.True(t, errors.Is(err, model.ErrEmptyName))

	got, _, _ := svc.GetByID(ctx, seed[0].ID())
	assert.Equal(t, "Keep", got.Name)
}

func TestAuthorService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, seed := newTestService(t, "Gone")

	deleted, err := svc.Delete(ctx, seed[0].ID())
	require.NoError(t, err)
	assert.True(t, deleted)

	_, found, err := svc.GetByID(ctx, seed[0].ID())
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err = svc.Delete(ctx, seed[0].ID())
	require.NoError(t, err)
	assert.False(t, deleted)
}
