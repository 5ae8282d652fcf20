package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book/model"
	"library-backend/pkg/database"
)

type fakeBookRepo struct {
	books map[uuid.UUID]*model.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uuid.UUID]*model.Book)}
}

func (f *fakeBookRepo) Create(ctx context.Context, book *model.Book) error {
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book, ok := f.books[id]
	if !ok {
		return nil, model.NewBookNotFoundError(id)
	}
	cp := *book
	return &cp, nil
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.Book, error) {
	out := make([]model.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, book *model.Book) error {
	if _, ok := f.books[book.ID]; !ok {
		return model.NewBookNotFoundError(book.ID)
	}
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	book, ok := f.books[id]
	if !ok {
		return model.NewBookNotFoundError(id)
	}
	if book.AvailableCopies != book.TotalCopies {
		return model.ErrBookOnLoan
	}
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) BorrowCopy(ctx context.Context, q database.Querier, id uuid.UUID) error {
	book, ok := f.books[id]
	if !ok {
		return model.NewBookNotFoundError(id)
	}
	if book.AvailableCopies <= 0 {
		return model.NewBookNotAvailableError(id)
	}
	book.AvailableCopies--
	return nil
}

func (f *fakeBookRepo) RestoreCopy(ctx context.Context, q database.Querier, id uuid.UUID) error {
	book, ok := f.books[id]
	if !ok {
		return model.NewBookNotFoundError(id)
	}
	if book.AvailableCopies >= book.TotalCopies {
		return model.NewAllCopiesInError(id)
	}
	book.AvailableCopies++
	return nil
}

func newService() (ServiceInterface, *fakeBookRepo) {
	repo := newFakeBookRepo()
	return NewService(repo, nil), repo
}

func TestCreateBook(t *testing.T) {
	t.Run("new book starts with every copy available", func(t *testing.T) {
		svc, _ := newService()

		resp, err := svc.CreateBook(context.Background(), model.CreateBookRequest{
			Title:       "The Go Programming Language",
			Author:      "Donovan & Kernighan",
			TotalCopies: 4,
		})

		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCopies)
		assert.Equal(t, 4, resp.AvailableCopies)
	})

	t.Run("rejects a non-positive copy count", func(t *testing.T) {
		svc, repo := newService()

		_, err := svc.CreateBook(context.Background(), model.CreateBookRequest{
			Title:       "Ghost Book",
			Author:      "Nobody",
			TotalCopies: 0,
		})

		assert.Error(t, err)
		assert.True(t, model.IsValidationError(err))
		assert.Empty(t, repo.books)
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.CreateBook(context.Background(), model.CreateBookRequest{
			Author:      "Nobody",
			TotalCopies: 1,
		})

		assert.ErrorIs(t, err, model.ErrInvalidBookInput)
	})
}

func TestUpdateBook(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("updates title and author only", func(t *testing.T) {
		svc, repo := newService()

		created, err := svc.CreateBook(context.Background(), model.CreateBookRequest{
			Title:       "Draft Title",
			Author:      "Draft Author",
			TotalCopies: 2,
		})
		require.NoError(t, err)
		repo.books[created.ID].AvailableCopies = 1

		resp, err := svc.UpdateBook(context.Background(), created.ID, model.UpdateBookRequest{
			Title: str("Final Title"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Final Title", resp.Title)
		assert.Equal(t, "Draft Author", resp.Author)
		assert.Equal(t, 2, resp.TotalCopies, "copy counts are immutable through update")
		assert.Equal(t, 1, resp.AvailableCopies)
	})

	t.Run("fails for an unknown book", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.UpdateBook(context.Background(), uuid.New(), model.UpdateBookRequest{
			Title: str("Anything"),
		})

		assert.ErrorIs(t, err, model.ErrBookNotFound)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("deletes when every copy is in", func(t *testing.T) {
		svc, repo := newService()

		created, err := svc.CreateBook(context.Background(), model.CreateBookRequest{
			Title:       "Short-lived",
			Author:      "Anon",
			TotalCopies: 1,
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteBook(context.Background(), created.ID))
		assert.Empty(t, repo.books)
	})

	t.Run("refuses while copies are on loan", func(t *testing.T) {
		svc, repo := newService()

		created, err := svc.CreateBook(context.Background(), model.CreateBookRequest{
			Title:       "Popular",
			Author:      "Anon",
			TotalCopies: 2,
		})
		require.NoError(t, err)
		repo.books[created.ID].AvailableCopies = 1

		err = svc.DeleteBook(context.Background(), created.ID)

		assert.ErrorIs(t, err, model.ErrBookOnLoan)
		assert.Len(t, repo.books, 1)
	})
}

func TestCheckAvailability(t *testing.T) {
	svc, repo := newService()

	created, err := svc.CreateBook(context.Background(), model.CreateBookRequest{
		Title:       "On the Shelf",
		Author:      "Anon",
		TotalCopies: 1,
	})
	require.NoError(t, err)

	avail, err := svc.CheckAvailability(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, avail.Available)
	assert.Equal(t, 1, avail.Copies)

	repo.books[created.ID].AvailableCopies = 0

	avail, err = svc.CheckAvailability(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Equal(t, 0, avail.Copies)
}

func TestBorrowAndReturnCopy(t *testing.T) {
	svc, _ := newService()

	created, err := svc.CreateBook(context.Background(), model.CreateBookRequest{
		Title:       "Single Copy",
		Author:      "Anon",
		TotalCopies: 1,
	})
	require.NoError(t, err)

	borrowed, err := svc.BorrowCopy(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, borrowed.AvailableCopies)

	// No copies left: the guarded decrement refuses.
	_, err = svc.BorrowCopy(context.Background(), created.ID)
	assert.ErrorIs(t, err, model.ErrBookNotAvailable)

	returned, err := svc.ReturnCopy(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, returned.AvailableCopies)

	// Every copy is in: the guarded increment refuses.
	_, err = svc.ReturnCopy(context.Background(), created.ID)
	assert.ErrorIs(t, err, model.ErrAllCopiesIn)
}
