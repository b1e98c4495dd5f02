package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wordregistry/internal/domain"
	"wordregistry/internal/repository"
	"wordregistry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestWordService_List(t *testing.T) {
	tests := []struct {
		name          string
		mockWords     []domain.Word
		mockError     error
		expected      []domain.Word
		expectedError bool
	}{
		{
			name: "words in creation order",
			mockWords: []domain.Word{
				*testutil.NewTestWord("1", "zebra"),
				*testutil.NewTestWord("2", "apple"),
			},
			expected: []domain.Word{
				*testutil.NewTestWord("1", "zebra"),
				*testutil.NewTestWord("2", "apple"),
			},
		},
		{
			name:      "nil from store becomes empty list",
			mockWords: nil,
			expected:  []domain.Word{},
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("List", ctx).Return(tt.mockWords, tt.mockError)

			service := NewWordService(mockRepo)

			words, err := service.List(ctx)

			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrStorage)
				assert.Nil(t, words)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, words)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_Add(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		normalized string
		mockReturn *domain.Word
		mockError  error
		expected   *domain.Word
		expectedIs error
	}{
		{
			name:       "plain word",
			input:      "hello",
			normalized: "hello",
			mockReturn: testutil.NewTestWord("1", "hello"),
			expected:   testutil.NewTestWord("1", "hello"),
		},
		{
			name:       "whitespace and mixed case",
			input:      "  HeLLo\t",
			normalized: "hello",
			mockReturn: testutil.NewTestWord("1", "hello"),
			expected:   testutil.NewTestWord("1", "hello"),
		},
		{
			name:       "empty text",
			input:      "",
			expectedIs: domain.ErrValidation,
		},
		{
			name:       "whitespace only",
			input:      "   ",
			expectedIs: domain.ErrValidation,
		},
		{
			name:       "database error",
			input:      "hello",
			normalized: "hello",
			mockError:  fmt.Errorf("connection refused"),
			expectedIs: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)

			// Only set up mock if input is valid
			if tt.normalized != "" {
				mockRepo.On("Create", ctx, tt.normalized).Return(tt.mockReturn, tt.mockError)
			}

			service := NewWordService(mockRepo)

			word, err := service.Add(ctx, tt.input)

			if tt.expectedIs != nil {
				assert.ErrorIs(t, err, tt.expectedIs)
				assert.Nil(t, word)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, word)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_Add_ValidationMessage(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	service := NewWordService(mockRepo)

	_, err := service.Add(ctx, " \n ")

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "text", vErr.Field)
	assert.Equal(t, "text is required", vErr.Message)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWordService_Add_Duplicate(t *testing.T) {
	existing := testutil.NewTestWord("7", "hello")

	tests := []struct {
		name          string
		findReturn    *domain.Word
		findError     error
		expectedIs    error
		expectedExist *domain.Word
	}{
		{
			name:          "conflicting word is reported",
			findReturn:    existing,
			expectedIs:    domain.ErrDuplicate,
			expectedExist: existing,
		},
		{
			name:       "conflicting word deleted meanwhile",
			findReturn: nil,
			expectedIs: domain.ErrDuplicate,
		},
		{
			name:       "read back fails",
			findError:  fmt.Errorf("connection reset"),
			expectedIs: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("Create", ctx, "hello").Return(nil, repository.ErrDuplicateText)
			mockRepo.On("FindByText", ctx, "hello").Return(tt.findReturn, tt.findError)

			service := NewWordService(mockRepo)

			word, err := service.Add(ctx, " Hello ")

			assert.Nil(t, word)
			assert.ErrorIs(t, err, tt.expectedIs)

			var dupErr *domain.DuplicateEntryError
			if errors.As(err, &dupErr) {
				assert.Equal(t, "hello", dupErr.Text)
				assert.Equal(t, tt.expectedExist, dupErr.Existing)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_Update(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		input      string
		normalized string
		mockReturn *domain.Word
		mockError  error
		expected   *domain.Word
		expectedIs error
	}{
		{
			name:       "updated and normalized",
			id:         "3",
			input:      " WORLD ",
			normalized: "world",
			mockReturn: testutil.NewTestWord("3", "world"),
			expected:   testutil.NewTestWord("3", "world"),
		},
		{
			name:       "empty text",
			id:         "3",
			input:      "",
			expectedIs: domain.ErrValidation,
		},
		{
			name:       "unknown id",
			id:         "404",
			input:      "x",
			normalized: "x",
			mockReturn: nil,
			expectedIs: domain.ErrNotFound,
		},
		{
			name:       "database error",
			id:         "3",
			input:      "world",
			normalized: "world",
			mockError:  fmt.Errorf("connection refused"),
			expectedIs: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)

			if tt.normalized != "" {
				mockRepo.On("Update", ctx, tt.id, tt.normalized).Return(tt.mockReturn, tt.mockError)
			}

			service := NewWordService(mockRepo)

			word, err := service.Update(ctx, tt.id, tt.input)

			if tt.expectedIs != nil {
				assert.ErrorIs(t, err, tt.expectedIs)
				assert.Nil(t, word)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, word)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_Update_NotFoundCarriesID(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("Update", ctx, "abc", "x").Return(nil, nil)

	service := NewWordService(mockRepo)

	_, err := service.Update(ctx, "abc", "x")

	var nfErr *domain.NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "abc", nfErr.ID)
}

func TestWordService_Update_TextHeldByAnotherWord(t *testing.T) {
	holder := testutil.NewTestWord("1", "taken")

	t.Run("unique on update enabled", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("Update", ctx, "2", "taken").Return(nil, repository.ErrDuplicateText)
		mockRepo.On("FindByText", ctx, "taken").Return(holder, nil)

		service := NewWordService(mockRepo)

		word, err := service.Update(ctx, "2", "Taken")

		assert.Nil(t, word)
		var dupErr *domain.DuplicateEntryError
		require.True(t, errors.As(err, &dupErr))
		assert.Equal(t, holder, dupErr.Existing)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unique on update disabled", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("Update", ctx, "2", "taken").Return(nil, repository.ErrDuplicateText)

		service := NewWordService(mockRepo, WithUniqueOnUpdate(false))

		word, err := service.Update(ctx, "2", "Taken")

		assert.Nil(t, word)
		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.NotErrorIs(t, err, domain.ErrDuplicate)
		mockRepo.AssertNotCalled(t, "FindByText", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestWordService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		deleted    bool
		mockError  error
		expectedIs error
	}{
		{
			name:    "deleted",
			id:      "1",
			deleted: true,
		},
		{
			name:       "unknown id",
			id:         "2",
			deleted:    false,
			expectedIs: domain.ErrNotFound,
		},
		{
			name:       "database error",
			id:         "3",
			mockError:  fmt.Errorf("connection refused"),
			expectedIs: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("Delete", ctx, tt.id).Return(tt.deleted, tt.mockError)

			service := NewWordService(mockRepo)

			err := service.Delete(ctx, tt.id)

			if tt.expectedIs != nil {
				assert.ErrorIs(t, err, tt.expectedIs)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_Ping(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("Ping", ctx).Return(nil).Once()
	mockRepo.On("Ping", ctx).Return(fmt.Errorf("no reachable servers")).Once()

	service := NewWordService(mockRepo)

	assert.NoError(t, service.Ping(ctx))
	assert.ErrorIs(t, service.Ping(ctx), domain.ErrStorage)
	mockRepo.AssertExpectations(t)
}
