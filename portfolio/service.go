package portfolio

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"
	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/business/admin"
	"noiruxe.app/portfolio/business/message"
	"noiruxe.app/portfolio/business/testimonial"
	"noiruxe.app/portfolio/workflow"
)

const taskQueue = "portfolio-moderation"

var validate = validator.New()

//encore:service
type Service struct {
	admin        admin.Business
	testimonials testimonial.Business
	messages     message.Business

	// temporal is nil when no Temporal host is configured.
	temporal      client.Client
	worker        worker.Worker
	reminderAfter time.Duration
}

func initService() (*Service, error) {
	backendClient := backend.NewClient(cfg.BackendURL(),
		backend.WithTimeout(time.Duration(cfg.BackendTimeoutSeconds())*time.Second),
	)

	rlog.Info("Initializing portfolio service", "backend", cfg.BackendURL())
	svc := &Service{
		admin:         admin.NewAdminBusiness(backendClient, serviceTranslator{}),
		testimonials:  testimonial.NewTestimonialBusiness(backendClient),
		messages:      message.NewMessageBusiness(backendClient),
		reminderAfter: time.Duration(cfg.ReminderHours()) * time.Hour,
	}

	host := cfg.TemporalHost()
	if host == "" {
		rlog.Warn("Temporal host not configured, moderation workflows disabled")
		return svc, nil
	}

	c, err := client.Dial(client.Options{
		HostPort:  host,
		Namespace: cfg.TemporalNamespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(backendClient, logNotifier{})
	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.Moderation)
	w.RegisterActivity(workflow.CheckStatusActivity)
	w.RegisterActivity(workflow.RemindActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("Temporal worker started", "host", host, "task_queue", taskQueue)
	svc.temporal = c
	svc.worker = w
	return svc, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
