package portfolio

import (
	"context"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"noiruxe.app/portfolio/business/message"
	"noiruxe.app/portfolio/model"
)

func TestSubmitMessage(t *testing.T) {
	ts := newTestService(t)
	ts.messages.EXPECT().
		Submit(gomock.Any(), &message.Submission{
			Name:           "Ada",
			Email:          "ada@example.com",
			Message:        "Hello",
			IdempotencyKey: "key-1",
		}).
		Return(model.Record{"id": "m1", "is_read": false}, nil)

	resp, err := ts.SubmitMessage(context.Background(), &SubmitMessageRequest{
		IdempotencyKey: "key-1",
		Name:           "Ada",
		Email:          "ada@example.com",
		Message:        "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", resp.Message.ID())
}

func TestSubmitMessageRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *SubmitMessageRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &SubmitMessageRequest{Name: "Ada", Email: "ada@example.com", Message: "Hi"},
		},
		{
			name:          "invalid_email",
			request:       &SubmitMessageRequest{Name: "Ada", Email: "ada", Message: "Hi"},
			expectedError: "email",
		},
		{
			name:          "missing_message",
			request:       &SubmitMessageRequest{Name: "Ada", Email: "ada@example.com"},
			expectedError: "required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

func TestMarkMessageRead(t *testing.T) {
	ts := newTestService(t)
	ts.messages.EXPECT().MarkRead(gomock.Any(), "m1").Return(model.Record{"id": "m1", "is_read": true}, nil)

	resp, err := ts.MarkMessageRead(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, true, resp.Message["is_read"])

	ts.messages.EXPECT().MarkRead(gomock.Any(), "m2").
		Return(nil, &errs.Error{Code: errs.NotFound, Message: "message not found"})
	_, err = ts.MarkMessageRead(context.Background(), "m2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message not found")
}
