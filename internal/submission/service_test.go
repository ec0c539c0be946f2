package submission_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aigrade/submit-api/internal/submission"
	"github.com/aigrade/submit-api/pkg/email"
)

// MockEmailSender is a mock implementation of email.EmailSender for testing.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func validPayload() submission.Payload {
	return submission.Payload{Name: "Alice", Email: "a@x.com"}
}

func TestService_Process(t *testing.T) {
	t.Parallel()

	t.Run("sends team and user messages on success", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.SendTo == "team@aigrade.site" && p.ReplyTo == "a@x.com" && p.Tag == "team-notification"
		})).Return(nil).Once()
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.SendTo == "a@x.com" && p.Subject == submission.UserSubject && p.Tag == "user-confirmation"
		})).Return(nil).Once()

		svc := submission.NewService(sender, submission.Config{
			TeamEmail:           "team@aigrade.site",
			RequireNameAndEmail: true,
			IncludeUTM:          true,
		}, nil)

		require.NoError(t, svc.Process(context.Background(), validPayload()))
		sender.AssertExpectations(t)
	})

	t.Run("rejects missing name or email under strict validation", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		svc := submission.NewService(sender, submission.Config{
			TeamEmail:           "team@aigrade.site",
			RequireNameAndEmail: true,
		}, nil)

		err := svc.Process(context.Background(), submission.Payload{Name: "Alice"})
		assert.ErrorIs(t, err, submission.ErrMissingNameOrEmail)

		err = svc.Process(context.Background(), submission.Payload{Email: "a@x.com"})
		assert.ErrorIs(t, err, submission.ErrMissingNameOrEmail)

		sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("skips team message when no team inbox configured", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.SendTo == "a@x.com"
		})).Return(nil).Once()

		svc := submission.NewService(sender, submission.Config{RequireNameAndEmail: false}, nil)
		require.NoError(t, svc.Process(context.Background(), validPayload()))
		sender.AssertNumberOfCalls(t, "SendEmail", 1)
	})

	t.Run("skips user confirmation when submitter left no address", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.SendTo == "team@aigrade.site"
		})).Return(nil).Once()

		svc := submission.NewService(sender, submission.Config{
			TeamEmail:           "team@aigrade.site",
			RequireNameAndEmail: false,
		}, nil)

		require.NoError(t, svc.Process(context.Background(), submission.Payload{Name: "Bob"}))
		sender.AssertNumberOfCalls(t, "SendEmail", 1)
	})

	t.Run("sends nothing when no recipients at all", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		svc := submission.NewService(sender, submission.Config{RequireNameAndEmail: false}, nil)

		require.NoError(t, svc.Process(context.Background(), submission.Payload{Name: "Bob"}))
		sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("surfaces send failure", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		sender.On("SendEmail", mock.Anything, mock.Anything).Return(assert.AnError)

		svc := submission.NewService(sender, submission.Config{
			TeamEmail:           "team@aigrade.site",
			RequireNameAndEmail: true,
		}, nil)

		err := svc.Process(context.Background(), validPayload())
		assert.ErrorIs(t, err, submission.ErrSendFailed)
	})
}

func TestNewService_PanicsOnNilSender(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		submission.NewService(nil, submission.Config{}, nil)
	})
}
