package portfolio

import (
	"context"
	"errors"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	"go.uber.org/mock/gomock"

	"noiruxe.app/portfolio/business/admin"
	"noiruxe.app/portfolio/model"
	"noiruxe.app/portfolio/workflow"
)

func TestListResources(t *testing.T) {
	testCases := []struct {
		name          string
		items         []model.Record
		err           error
		expectedItems []model.Record
		expectedError string
	}{
		{
			name:          "returns_backend_order",
			items:         []model.Record{{"id": "2"}, {"id": "1"}},
			expectedItems: []model.Record{{"id": "2"}, {"id": "1"}},
		},
		{
			name:          "empty_list_is_not_null",
			items:         nil,
			expectedItems: []model.Record{},
		},
		{
			name:          "backend_failure",
			err:           &errs.Error{Code: errs.Unavailable, Message: "failed to load skills"},
			expectedError: "failed to load skills",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			ts.admin.EXPECT().List(gomock.Any(), model.ResourceSkills).Return(tc.items, tc.err)

			resp, err := ts.ListResources(context.Background(), "skills")
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedItems, resp.Items)
		})
	}
}

func TestCreateResource(t *testing.T) {
	testCases := []struct {
		name           string
		resource       string
		saveResult     *admin.SaveResult
		saveError      error
		temporalError  error
		expectWorkflow bool
		expectedError  string
	}{
		{
			name:       "skill_created",
			resource:   "skills",
			saveResult: &admin.SaveResult{Record: model.Record{"id": "s1"}, Items: []model.Record{{"id": "s1"}}},
		},
		{
			name:           "testimonial_starts_moderation",
			resource:       "testimonials",
			saveResult:     &admin.SaveResult{Record: model.Record{"id": "t1", "status": "pending"}},
			expectWorkflow: true,
		},
		{
			name:           "workflow_failure_does_not_fail_request",
			resource:       "testimonials",
			saveResult:     &admin.SaveResult{Record: model.Record{"id": "t2", "status": "pending"}},
			temporalError:  errors.New("temporal unavailable"),
			expectWorkflow: true,
		},
		{
			name:          "save_failure",
			resource:      "skills",
			saveError:     &errs.Error{Code: errs.InvalidArgument, Message: "name_en is required"},
			expectedError: "name_en is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			req := &CreateResourceRequest{IdempotencyKey: "key-1", Form: model.Form{"name_en": "Go"}}

			ts.admin.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, r *admin.SaveRequest) (*admin.SaveResult, error) {
					assert.Equal(t, model.ResourceType(tc.resource), r.Resource)
					assert.Equal(t, model.OpCreate, r.Op)
					assert.Equal(t, "key-1", r.IdempotencyKey)
					assert.Equal(t, req.Form, r.Form)
					return tc.saveResult, tc.saveError
				})
			if tc.expectWorkflow {
				ts.temporal.On("ExecuteWorkflow",
					mock.Anything,
					mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
						return o.ID == workflow.WorkflowID(tc.saveResult.Record.ID()) && o.TaskQueue == taskQueue
					}),
					mock.Anything,
					mock.Anything,
				).Return(nil, tc.temporalError).Once()
			}

			resp, err := ts.CreateResource(context.Background(), tc.resource, req)
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.saveResult.Record, resp.Record)
			assert.NotNil(t, resp.Items)
		})
	}
}

func TestUpdateResource(t *testing.T) {
	ts := newTestService(t)
	form := model.Form{"title_en": "Portfolio"}

	ts.admin.EXPECT().
		Save(gomock.Any(), &admin.SaveRequest{Resource: model.ResourceProjects, Op: model.OpUpdate, ID: "p1", Form: form}).
		Return(&admin.SaveResult{Record: model.Record{"id": "p1"}, Items: []model.Record{{"id": "p1"}}}, nil)

	resp, err := ts.UpdateResource(context.Background(), "projects", "p1", &UpdateResourceRequest{Form: form})
	require.NoError(t, err)
	assert.Equal(t, "p1", resp.Record.ID())
	assert.Len(t, resp.Items, 1)
}

func TestDeleteResource(t *testing.T) {
	t.Run("testimonial_signals_workflow", func(t *testing.T) {
		runSync(t)
		ts := newTestService(t)
		ts.admin.EXPECT().Delete(gomock.Any(), model.ResourceTestimonials, "t1").Return([]model.Record{}, nil)
		ts.temporal.On("SignalWorkflow",
			mock.Anything,
			"testimonial-t1",
			"",
			workflow.ModerationSignalName,
			mock.MatchedBy(func(s workflow.ModerationSignal) bool { return s.Action == workflow.ActionDelete }),
		).Return(nil).Once()

		resp, err := ts.DeleteResource(context.Background(), "testimonials", "t1")
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
	})

	t.Run("other_resource_no_signal", func(t *testing.T) {
		ts := newTestService(t)
		ts.admin.EXPECT().Delete(gomock.Any(), model.ResourceHobbies, "h1").Return(nil, nil)

		resp, err := ts.DeleteResource(context.Background(), "hobbies", "h1")
		require.NoError(t, err)
		assert.NotNil(t, resp.Items)
	})

	t.Run("failure", func(t *testing.T) {
		ts := newTestService(t)
		ts.admin.EXPECT().Delete(gomock.Any(), model.ResourceHobbies, "h1").
			Return(nil, &errs.Error{Code: errs.Unavailable, Message: "failed to delete hobby"})

		_, err := ts.DeleteResource(context.Background(), "hobbies", "h1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete hobby")
	})

	t.Run("reload_failure_still_signals", func(t *testing.T) {
		runSync(t)
		ts := newTestService(t)
		ts.admin.EXPECT().Delete(gomock.Any(), model.ResourceTestimonials, "t2").
			Return(nil, &admin.ReloadError{Err: &errs.Error{Code: errs.Unavailable, Message: "failed to load testimonials"}})
		ts.temporal.On("SignalWorkflow",
			mock.Anything,
			"testimonial-t2",
			"",
			workflow.ModerationSignalName,
			mock.Anything,
		).Return(nil).Once()

		_, err := ts.DeleteResource(context.Background(), "testimonials", "t2")

		var e *errs.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "failed to load testimonials", e.Message)
	})
}

func TestService_WithoutTemporal(t *testing.T) {
	ts := newTestService(t)
	ts.Service.temporal = nil
	ts.admin.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(&admin.SaveResult{Record: model.Record{"id": "t1"}}, nil)

	_, err := ts.CreateResource(context.Background(), "testimonials", &CreateResourceRequest{Form: model.Form{}})
	require.NoError(t, err)
}

func TestCreateResourceRequest_Validation(t *testing.T) {
	assert.NoError(t, (&CreateResourceRequest{Form: model.Form{"name_en": "Go"}}).Validate())
	assert.Error(t, (&CreateResourceRequest{}).Validate())
	assert.Error(t, (&UpdateResourceRequest{}).Validate())
}
