package services_test

import (
	"context"
	"testing"

	"github.com/daybookhq/daybook-backend/internal/apperrors"
	"github.com/daybookhq/daybook-backend/internal/core/domain"
	portssvc "github.com/daybookhq/daybook-backend/internal/core/ports/services"
	"github.com/daybookhq/daybook-backend/internal/core/services"
	"github.com/daybookhq/daybook-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, userID, entryID)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.Error(1)
}

func (m *MockJournalRepository) FindEntriesByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, userID)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	return entries, args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	service         portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo)
}

func validEntryRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Title:   "A good day",
		Content: "Went for a long walk",
		Date:    "2025-06-20",
		Mood:    "happy",
	}
}

// --- ListEntries Tests ---
func (suite *JournalServiceTestSuite) TestListEntries_PreservesRepoOrder() {
	ctx := context.Background()
	userID := uuid.NewString()

	// Repo returns newest first; the service must not reorder
	stored := []domain.JournalEntry{
		{EntryID: "newest", UserID: userID, Title: "Today"},
		{EntryID: "older", UserID: userID, Title: "Yesterday"},
	}
	suite.mockJournalRepo.On("FindEntriesByUser", ctx, userID).Return(stored, nil).Once()

	entries, err := suite.service.ListEntries(ctx, userID, "")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("newest", entries[0].EntryID)
	suite.Equal("older", entries[1].EntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_FiltersByTag() {
	ctx := context.Background()
	userID := uuid.NewString()

	stored := []domain.JournalEntry{
		{EntryID: "a", UserID: userID, Title: "Trip", Tags: []string{"travel"}},
		{EntryID: "b", UserID: userID, Title: "Dinner", Tags: []string{"food"}},
	}
	suite.mockJournalRepo.On("FindEntriesByUser", ctx, userID).Return(stored, nil).Once()

	entries, err := suite.service.ListEntries(ctx, userID, "travel")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("a", entries[0].EntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

// --- CreateEntry Tests ---
func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := validEntryRequest()
	req.Tags = []string{"walk", "walk", "outdoors"}

	suite.mockJournalRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.UserID == userID &&
			e.Mood == domain.MoodHappy &&
			len(e.Tags) == 2
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal([]string{"walk", "outdoors"}, entry.Tags)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_TrimsWhitespace() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := validEntryRequest()
	req.Title = "  A good day  "

	suite.mockJournalRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Title == "A good day"
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal("A good day", entry.Title)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InvalidMood() {
	ctx := context.Background()
	req := validEntryRequest()
	req.Mood = "furious"

	entry, err := suite.service.CreateEntry(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SaveError() {
	ctx := context.Background()

	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(assert.AnError).Once()

	entry, err := suite.service.CreateEntry(ctx, uuid.NewString(), validEntryRequest())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

// --- UpdateEntry Tests ---
func (suite *JournalServiceTestSuite) TestUpdateEntry_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	entryID := uuid.NewString()

	existing := &domain.JournalEntry{
		EntryID:   entryID,
		UserID:    userID,
		Title:     "A good day",
		Content:   "Went for a long walk",
		EntryDate: "2025-06-20",
		Mood:      domain.MoodHappy,
	}
	suite.mockJournalRepo.On("FindEntryByID", ctx, userID, entryID).Return(existing, nil).Once()
	suite.mockJournalRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.EntryID == entryID && e.Mood == domain.MoodCalm
	})).Return(nil).Once()

	req := dto.UpdateJournalEntryRequest{
		Title:   "A good day",
		Content: "Went for a long walk, then meditated",
		Date:    "2025-06-20",
		Mood:    "calm",
	}
	entry, err := suite.service.UpdateEntry(ctx, userID, entryID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.MoodCalm, entry.Mood)
	suite.Equal("Went for a long walk, then meditated", entry.Content)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestUpdateEntry_TrimsWhitespace() {
	ctx := context.Background()
	userID := uuid.NewString()
	entryID := uuid.NewString()

	existing := &domain.JournalEntry{
		EntryID:   entryID,
		UserID:    userID,
		Title:     "A good day",
		Content:   "Went for a long walk",
		EntryDate: "2025-06-20",
		Mood:      domain.MoodHappy,
	}
	suite.mockJournalRepo.On("FindEntryByID", ctx, userID, entryID).Return(existing, nil).Once()
	suite.mockJournalRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Title == "A better day"
	})).Return(nil).Once()

	req := dto.UpdateJournalEntryRequest{
		Title:   " A better day ",
		Content: "Went for a long walk",
		Date:    "2025-06-20",
		Mood:    "happy",
	}
	entry, err := suite.service.UpdateEntry(ctx, userID, entryID, req)

	suite.Require().NoError(err)
	suite.Equal("A better day", entry.Title)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestUpdateEntry_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("FindEntryByID", ctx, userID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	req := dto.UpdateJournalEntryRequest{Title: "x", Content: "y", Date: "2025-06-20", Mood: "sad"}
	entry, err := suite.service.UpdateEntry(ctx, userID, entryID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(entry)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
