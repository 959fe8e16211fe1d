package portfolio

import (
	"context"
	"testing"
	"time"

	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"noiruxe.app/portfolio/mocks/business/admin_business"
	"noiruxe.app/portfolio/mocks/business/message_business"
	"noiruxe.app/portfolio/mocks/business/testimonial_business"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

type testService struct {
	*Service
	admin        *admin_business.MockBusiness
	testimonials *testimonial_business.MockBusiness
	messages     *message_business.MockBusiness
	temporal     *mocks.Client
}

func newTestService(t *testing.T) *testService {
	ctrl := gomock.NewController(t)
	ts := &testService{
		admin:        admin_business.NewMockBusiness(ctrl),
		testimonials: testimonial_business.NewMockBusiness(ctrl),
		messages:     message_business.NewMockBusiness(ctrl),
		temporal:     mocks.NewClient(t),
	}
	ts.Service = &Service{
		admin:         ts.admin,
		testimonials:  ts.testimonials,
		messages:      ts.messages,
		temporal:      ts.temporal,
		reminderAfter: time.Hour,
	}
	return ts
}

// runSync makes signalModeration run inline for the duration of the test.
func runSync(t *testing.T) {
	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		if err := fn(context.Background()); err != nil {
			t.Logf("async %s: %v", op, err)
		}
	}
	t.Cleanup(func() { runAsync = prev })
}
