package notes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/color-notes/internal/entity"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateNote(ctx context.Context, accountID int64, in entity.NoteInput) (int64, error) {
	args := m.Called(ctx, accountID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListNotes(ctx context.Context, accountID int64, filter entity.ListFilter) ([]entity.Note, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Note), args.Error(1)
}

func (m *MockRepository) GetNote(ctx context.Context, accountID, id int64) (entity.Note, error) {
	args := m.Called(ctx, accountID, id)
	return args.Get(0).(entity.Note), args.Error(1)
}

func (m *MockRepository) UpdateNote(ctx context.Context, accountID, id int64, in entity.NoteInput) (int64, error) {
	args := m.Called(ctx, accountID, id, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) DeleteNote(ctx context.Context, accountID, id int64) (int64, error) {
	args := m.Called(ctx, accountID, id)
	return args.Get(0).(int64), args.Error(1)
}

func setupUsecase(t *testing.T) (*Usecase, *MockRepository) {
	t.Helper()

	repo := new(MockRepository)
	uc, err := New(NewOptions(repo))
	require.NoError(t, err)

	return uc, repo
}

func TestNew_RequiresRepository(t *testing.T) {
	_, err := New(NewOptions(nil))
	assert.Error(t, err)
}

func TestUsecase_CreateNote(t *testing.T) {
	uc, repo := setupUsecase(t)
	ctx := context.Background()
	in := entity.NoteInput{Title: "Groceries", Content: "milk", Color: "#FFFFFF"}

	repo.On("CreateNote", ctx, int64(1), in).Return(int64(10), nil).Once()

	id, err := uc.CreateNote(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	repo.AssertExpectations(t)
}

func TestUsecase_ErrorsKeepTheirIdentity(t *testing.T) {
	uc, repo := setupUsecase(t)
	ctx := context.Background()
	rule := &entity.DomainRuleError{Message: "constraint violated: note_cor_check"}

	repo.On("GetNote", ctx, int64(1), int64(5)).Return(entity.Note{}, entity.ErrNoteNotFound)
	repo.On("DeleteNote", ctx, int64(1), int64(5)).Return(int64(0), entity.ErrNoteNotFound)
	repo.On("UpdateNote", ctx, int64(1), int64(6), mock.Anything).Return(int64(0), rule)

	_, err := uc.GetNote(ctx, 1, 5)
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)

	_, err = uc.DeleteNote(ctx, 1, 5)
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)

	_, err = uc.UpdateNote(ctx, 1, 6, entity.NoteInput{})
	var ruleErr *entity.DomainRuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, rule.Message, ruleErr.Message)

	repo.AssertExpectations(t)
}

func TestUsecase_ListNotes(t *testing.T) {
	uc, repo := setupUsecase(t)
	ctx := context.Background()
	filter := entity.ListFilter{Color: "#BBF7D0", Order: entity.OrderTitleAsc}
	notes := []entity.Note{{ID: 1, AccountID: 1, Title: "a", CreatedAt: time.Now()}}

	repo.On("ListNotes", ctx, int64(1), filter).Return(notes, nil).Once()
	repo.On("ListNotes", ctx, int64(2), filter).Return(nil, errors.New("connection reset")).Once()

	got, err := uc.ListNotes(ctx, 1, filter)
	require.NoError(t, err)
	assert.Equal(t, notes, got)

	_, err = uc.ListNotes(ctx, 2, filter)
	assert.ErrorContains(t, err, "connection reset")

	repo.AssertExpectations(t)
}
