package message_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"noiruxe.app/portfolio/business/message"
	"noiruxe.app/portfolio/mocks/backend/backend_client"
	"noiruxe.app/portfolio/model"
)

func TestSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := backend_client.NewMockClient(ctrl)
	b := message.NewMessageBusiness(client)

	client.EXPECT().
		Create(gomock.Any(), model.ResourceMessages, model.Record{
			"name":    "Ana",
			"email":   "ana@example.com",
			"subject": nil,
			"message": "Hello there",
			"is_read": false,
		}).
		Return(model.Record{"id": "1"}, nil)

	rec, err := b.Submit(context.Background(), &message.Submission{
		Name:    "Ana",
		Email:   " ana@example.com ",
		Subject: "  ",
		Message: "Hello there",
	})

	require.NoError(t, err)
	assert.Equal(t, "1", rec.ID())
}

func TestMarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := backend_client.NewMockClient(ctrl)
	b := message.NewMessageBusiness(client)

	client.EXPECT().MarkRead(gomock.Any(), "4").Return(model.Record{"id": "4", "is_read": true}, nil)
	rec, err := b.MarkRead(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "true", rec.Text("is_read"))

	client.EXPECT().MarkRead(gomock.Any(), "5").Return(nil, errors.New("down"))
	_, err = b.MarkRead(context.Background(), "5")
	assert.ErrorContains(t, err, "failed to mark message as read")
}
