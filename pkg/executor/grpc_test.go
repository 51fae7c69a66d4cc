package executor

import (
	"testing"

	"github.com/pm-runner/pmrunner/pkg/models"
	executorv1 "github.com/pm-runner/pmrunner/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProtoRequest(t *testing.T) {
	in := ExecuteInput{
		ID:         "task-1-sub-2",
		Prompt:     "Add a health endpoint",
		WorkingDir: "/work/repo",
	}

	req := toProtoRequest(in)
	assert.Equal(t, "task-1-sub-2", req.Id)
	assert.Equal(t, "Add a health endpoint", req.Prompt)
	assert.Equal(t, "/work/repo", req.WorkingDir)
}

func TestFromProtoResponse(t *testing.T) {
	t.Run("full result", func(t *testing.T) {
		resp := &executorv1.ExecuteResponse{
			Executed:      true,
			Output:        "edited the server and its tests",
			FilesModified: []string{"api/server.go", "api/server_test.go"},
			VerifiedFiles: []*executorv1.VerifiedFile{
				{Path: "api/server.go", Exists: true},
				{Path: "api/missing.go", Exists: false},
			},
			UnverifiedFiles: []string{"api/scratch.go"},
			DurationMs:      4200,
			Status:          "COMPLETE",
			Cwd:             "/work/repo",
		}

		result := fromProtoResponse(resp)
		assert.True(t, result.Executed)
		assert.Equal(t, "edited the server and its tests", result.Output)
		assert.Equal(t, []string{"api/server.go", "api/server_test.go"}, result.FilesModified)
		require.Len(t, result.VerifiedFiles, 2)
		assert.Equal(t, models.VerifiedFile{Path: "api/server.go", Exists: true}, result.VerifiedFiles[0])
		assert.Equal(t, models.VerifiedFile{Path: "api/missing.go", Exists: false}, result.VerifiedFiles[1])
		assert.Equal(t, []string{"api/scratch.go"}, result.UnverifiedFiles)
		assert.Equal(t, int64(4200), result.DurationMS)
		assert.Equal(t, models.ResultStatusComplete, result.Status)
		assert.Equal(t, "/work/repo", result.CWD)
		assert.Empty(t, result.Error)
	})

	t.Run("error result", func(t *testing.T) {
		resp := &executorv1.ExecuteResponse{
			Executed: true,
			Status:   "ERROR",
			Error:    "agent process exited 1",
		}
		result := fromProtoResponse(resp)
		assert.Equal(t, models.ResultStatusError, result.Status)
		assert.Equal(t, "agent process exited 1", result.Error)
	})

	t.Run("unknown status becomes INVALID", func(t *testing.T) {
		resp := &executorv1.ExecuteResponse{Status: "PARTIAL"}
		result := fromProtoResponse(resp)
		assert.Equal(t, models.ResultStatusInvalid, result.Status)
	})

	t.Run("missing status becomes INVALID", func(t *testing.T) {
		result := fromProtoResponse(&executorv1.ExecuteResponse{})
		assert.Equal(t, models.ResultStatusInvalid, result.Status)
	})
}

func TestFromProtoStatus(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want models.ResultStatus
	}{
		{"complete", "COMPLETE", models.ResultStatusComplete},
		{"incomplete", "INCOMPLETE", models.ResultStatusIncomplete},
		{"error", "ERROR", models.ResultStatusError},
		{"timeout", "TIMEOUT", models.ResultStatusTimeout},
		{"no evidence", "NO_EVIDENCE", models.ResultStatusNoEvidence},
		{"lowercase rejected", "complete", models.ResultStatusInvalid},
		{"empty rejected", "", models.ResultStatusInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fromProtoStatus(tt.wire))
		})
	}
}
