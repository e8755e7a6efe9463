package service

import (
	"errors"
	"fmt"
	"testing"

	"wordcards/internal/domain"
	"wordcards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inDeck(deck []domain.UserWord, q domain.Question) bool {
	for _, uw := range deck {
		if uw.ID == q.UserWordID && uw.Target == q.Target && uw.Translation == q.Translation {
			return true
		}
	}
	return false
}

func countOf(options []string, s string) int {
	n := 0
	for _, o := range options {
		if o == s {
			n++
		}
	}
	return n
}

func TestCardService_Draw(t *testing.T) {
	deck := []domain.UserWord{
		testutil.NewTestUserWord(1, 123, "Hello", "Привет"),
		testutil.NewTestUserWord(2, 123, "Car", "Машина"),
		testutil.NewTestUserWord(3, 123, "Peace", "Мир"),
	}

	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("GetUserWords", int64(123)).Return(deck, nil)
	mockRepo.On("RandomTargets", "Hello", DistractorCount).Return([]string{"Car", "Peace", "Green"}, nil).Maybe()
	mockRepo.On("RandomTargets", "Car", DistractorCount).Return([]string{"Hello", "Peace", "Green"}, nil).Maybe()
	mockRepo.On("RandomTargets", "Peace", DistractorCount).Return([]string{"Hello", "Car", "Green"}, nil).Maybe()

	service := NewCardService(mockRepo, testutil.NewTestRand(), testutil.NewTestLogger())

	for i := 0; i < 20; i++ {
		card, err := service.Draw(123)
		require.NoError(t, err)

		assert.True(t, inDeck(deck, card.Question), "question must come from the deck")
		assert.Len(t, card.Options, DistractorCount+1)
		assert.Equal(t, 1, countOf(card.Options, card.Target), "target must appear exactly once")
	}
}

func TestCardService_Draw_EmptyDeck(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("GetUserWords", int64(123)).Return([]domain.UserWord{}, nil)

	service := NewCardService(mockRepo, testutil.NewTestRand(), testutil.NewTestLogger())

	card, err := service.Draw(123)

	assert.Nil(t, card)
	assert.True(t, errors.Is(err, domain.ErrNoWords))
	mockRepo.AssertNotCalled(t, "RandomTargets", "", DistractorCount)
}

func TestCardService_Draw_DatabaseError(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("GetUserWords", int64(123)).Return(nil, fmt.Errorf("db error"))

	service := NewCardService(mockRepo, testutil.NewTestRand(), testutil.NewTestLogger())

	card, err := service.Draw(123)

	assert.Nil(t, card)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNoWords))
}

func TestCardService_Options(t *testing.T) {
	tests := []struct {
		name          string
		distractors   []string
		mockError     error
		expectedCount int
	}{
		{
			name:          "full set",
			distractors:   []string{"Hello", "Peace", "Green"},
			expectedCount: 4,
		},
		{
			name:          "small dictionary degrades",
			distractors:   []string{"Hello"},
			expectedCount: 2,
		},
		{
			name:          "no other words",
			distractors:   []string{},
			expectedCount: 1,
		},
		{
			name:          "duplicates and target are dropped",
			distractors:   []string{"Hello", "Hello", "Car"},
			expectedCount: 2,
		},
		{
			name:          "lookup error leaves target only",
			mockError:     fmt.Errorf("db error"),
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("RandomTargets", "Car", DistractorCount).Return(tt.distractors, tt.mockError)

			service := NewCardService(mockRepo, testutil.NewTestRand(), testutil.NewTestLogger())

			options := service.Options("Car")

			assert.Len(t, options, tt.expectedCount)
			assert.Equal(t, 1, countOf(options, "Car"))
			for _, d := range tt.distractors {
				if d != "Car" {
					assert.Equal(t, 1, countOf(options, d))
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCardService_Options_Shuffles(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("RandomTargets", "Car", DistractorCount).Return([]string{"Hello", "Peace", "Green"}, nil)

	service := NewCardService(mockRepo, testutil.NewTestRand(), testutil.NewTestLogger())

	positions := map[int]bool{}
	for i := 0; i < 50; i++ {
		options := service.Options("Car")
		for idx, o := range options {
			if o == "Car" {
				positions[idx] = true
			}
		}
	}

	assert.Greater(t, len(positions), 1, "correct answer should not always sit in the same slot")
}
