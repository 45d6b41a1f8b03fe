package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craneworks/craneops-backend-go/internal/domain/auth"
	"github.com/craneworks/craneops-backend-go/internal/domain/leave"
	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/domain/workentry"
	"github.com/craneworks/craneops-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrAccountDeactivated, http.StatusForbidden},
		{task.ErrTaskNotFound, http.StatusNotFound},
		{task.ErrTaskClosed, http.StatusConflict},
		{task.ErrAssignmentExists, http.StatusConflict},
		{task.ErrWorkerNotEligible, http.StatusUnprocessableEntity},
		{workentry.ErrWorkEntryLocked, http.StatusConflict},
		{workentry.ErrNotEntryOwner, http.StatusForbidden},
		{leave.ErrOverlappingLeave, http.StatusConflict},
		{leave.ErrInsufficientBalance, http.StatusBadRequest},
		{fmt.Errorf("something unexpected"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.want, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("%w: missing certificate", task.ErrWorkerNotEligible))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "must be a valid email address"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "must be a valid email address", body.Error.Details["email"])
}
