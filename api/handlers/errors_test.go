package handlers

import (
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "github.com/danooki/2509-PlaceTimelineBackEnd/core/errors"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var statusErr huma.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error %v is not a huma.StatusError", err)
	}
	return statusErr.GetStatus()
}

func TestToHumaError_Nil(t *testing.T) {
	if toHumaError(nil) != nil {
		t.Error("toHumaError(nil) should return nil")
	}
}

func TestToHumaError_NotFound(t *testing.T) {
	err := toHumaError(&coreerrors.NotFoundError{Resource: "place", ID: "atlantis"})

	if got := statusOf(t, err); got != 404 {
		t.Errorf("status = %d, want 404", got)
	}
}

func TestToHumaError_Validation(t *testing.T) {
	err := toHumaError(&coreerrors.ValidationError{Field: "query", Message: "too short"})

	if got := statusOf(t, err); got != 400 {
		t.Errorf("status = %d, want 400", got)
	}
}

func TestToHumaError_ExternalAPIStatuses(t *testing.T) {
	cases := []struct {
		upstream int
		want     int
	}{
		{502, 503},
		{500, 503},
		{429, 429},
		{404, 400},
		{0, 500},
	}

	for _, tc := range cases {
		err := toHumaError(&coreerrors.ExternalAPIError{API: "wikipedia search", StatusCode: tc.upstream})
		if got := statusOf(t, err); got != tc.want {
			t.Errorf("upstream %d: status = %d, want %d", tc.upstream, got, tc.want)
		}
	}
}

func TestToHumaError_Unknown(t *testing.T) {
	err := toHumaError(errors.New("something broke"))

	if got := statusOf(t, err); got != 500 {
		t.Errorf("status = %d, want 500", got)
	}
}
