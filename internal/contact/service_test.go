package contact

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/verandalabs/veranda-stays/backend/internal/cache"
	"github.com/verandalabs/veranda-stays/backend/internal/config"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
)

// mockRepository is a mock implementation of Repository
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, message *ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ContactMessage), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, message *ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(ctx context.Context, opts FilterOptions) ([]ContactMessage, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]ContactMessage), args.Get(1).(int64), args.Error(2)
}

// testLogger is a no-op logger for service tests
type testLogger struct{}

func (l *testLogger) LogInfo(msg string, fields map[string]interface{})      {}
func (l *testLogger) LogDebug(message string, fields map[string]interface{}) {}
func (l *testLogger) LogWarn(message string, fields map[string]interface{})  {}
func (l *testLogger) LogError(err error, msg string) error                   { return err }

func newTestService(repo Repository) Service {
	cfg := &config.ContactConfig{MaxMessageLength: 100}
	return NewService(repo, cache.NewMemoryStore(), cache.DefaultTiers(), cfg, &testLogger{})
}

func enquiry() SubmitMessageRequest {
	return SubmitMessageRequest{
		Name:    "Ama Mensah",
		Email:   "ama@example.com",
		Subject: "Long stay discount",
		Body:    "Do you offer discounts for stays over a month?",
	}
}

func TestSubmitMessage_RejectsInvalidEmail(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	req := enquiry()
	req.Email = "not-an-address"

	_, err := svc.SubmitMessage(context.Background(), req)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitMessage_RejectsOverlongBody(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	req := enquiry()
	req.Body = strings.Repeat("a", 101)

	_, err := svc.SubmitMessage(context.Background(), req)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "body", validationErr.Field)
	assert.Equal(t, apperrors.ErrMsgMessageLength, validationErr.Message)
}

func TestSubmitMessage_RejectsBlankBody(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	req := enquiry()
	req.Body = "   "

	_, err := svc.SubmitMessage(context.Background(), req)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "body", validationErr.Field)
}

func TestSubmitMessage_StartsAsNew(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(nil)

	message, err := svc.SubmitMessage(ctx, enquiry())
	require.NoError(t, err)
	assert.Equal(t, StatusNew, message.Status)
	assert.Equal(t, "Ama Mensah", message.Name)
}

func TestSubmitMessage_InvalidatesListCache(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("List", ctx, mock.Anything).Return([]ContactMessage{}, int64(0), nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	opts := FilterOptions{Status: string(StatusNew)}
	_, err := svc.ListMessages(ctx, opts)
	require.NoError(t, err)
	_, err = svc.ListMessages(ctx, opts)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "List", 1)

	_, err = svc.SubmitMessage(ctx, enquiry())
	require.NoError(t, err)

	_, err = svc.ListMessages(ctx, opts)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "List", 2)
}

func TestGetMessage_ServesSecondReadFromCache(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	message := &ContactMessage{ID: uuid.New(), Name: "Ama", Email: "ama@example.com", Body: "Hi", Status: StatusNew}
	repo.On("GetByID", ctx, message.ID).Return(message, nil)

	_, err := svc.GetMessage(ctx, message.ID)
	require.NoError(t, err)
	_, err = svc.GetMessage(ctx, message.ID)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestMarkMessageStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	err := svc.MarkMessageStatus(context.Background(), uuid.New(), "ARCHIVED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestMarkMessageStatus_NormalizesCase(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	message := &ContactMessage{ID: uuid.New(), Status: StatusNew}
	repo.On("GetByID", ctx, message.ID).Return(message, nil)
	repo.On("Update", ctx, message).Return(nil)

	require.NoError(t, svc.MarkMessageStatus(ctx, message.ID, "read"))
	assert.Equal(t, StatusRead, message.Status)
}

func TestMarkMessageStatus_NoOpWhenUnchanged(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	message := &ContactMessage{ID: uuid.New(), Status: StatusRead}
	repo.On("GetByID", ctx, message.ID).Return(message, nil)

	require.NoError(t, svc.MarkMessageStatus(ctx, message.ID, "READ"))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkMessageStatus_DropsCachedEntity(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	message := &ContactMessage{ID: uuid.New(), Status: StatusNew}
	repo.On("GetByID", ctx, message.ID).Return(message, nil)
	repo.On("Update", ctx, message).Return(nil)

	_, err := svc.GetMessage(ctx, message.ID)
	require.NoError(t, err)

	require.NoError(t, svc.MarkMessageStatus(ctx, message.ID, "REPLIED"))

	_, err = svc.GetMessage(ctx, message.ID)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetByID", 3)
}

func TestDeleteMessage_PropagatesMissing(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	id := uuid.New()
	repo.On("Delete", ctx, id).Return(ErrMessageNotFound)

	err := svc.DeleteMessage(ctx, id)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
