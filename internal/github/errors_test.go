package github

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmissionError_MessageOnly(t *testing.T) {
	err := &SubmissionError{Message: "Request failed: Network Error"}
	require.Equal(t, "Request failed: Network Error", err.Error())
}

func TestSubmissionError_WithStatusAndBody(t *testing.T) {
	err := &SubmissionError{
		Message:      "HTTP error occurred while creating the issue.",
		StatusCode:   400,
		ResponseBody: "Bad Request",
	}
	require.Equal(t,
		"HTTP error occurred while creating the issue. | Status code: 400 | Response: Bad Request",
		err.Error())
}

func TestSubmissionError_StatusWithoutBody(t *testing.T) {
	err := &SubmissionError{Message: "Failed to create issue.", StatusCode: 204}
	require.Equal(t, "Failed to create issue. | Status code: 204", err.Error())
}
