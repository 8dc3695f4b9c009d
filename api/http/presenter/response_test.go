package presenter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/interview/pkg/interview"
	"github.com/artem13815/interview/pkg/resume"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{resume.ErrUnsupportedFormat, http.StatusUnsupportedMediaType},
		{&resume.ParseFailure{Format: "PDF", Cause: errors.New("bad xref")}, http.StatusUnprocessableEntity},
		{&interview.ValidationError{Field: "email", Message: "bad"}, http.StatusBadRequest},
		{fmt.Errorf("lookup: %w", interview.ErrNotFound), http.StatusNotFound},
		{interview.ErrSessionActive, http.StatusConflict},
		{interview.ErrStaleQuestion, http.StatusConflict},
		{interview.ErrBusy, http.StatusConflict},
		{interview.ErrDiscarded, http.StatusConflict},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}
