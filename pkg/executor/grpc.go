package executor

import (
	"context"
	"fmt"

	"github.com/pm-runner/pmrunner/pkg/models"
	executorv1 "github.com/pm-runner/pmrunner/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client implements Executor by calling the executor sidecar via gRPC.
type Client struct {
	conn   *grpc.ClientConn
	client executorv1.ExecutorServiceClient
}

// NewClient creates a new gRPC executor client.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to executor service at %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: executorv1.NewExecutorServiceClient(conn),
	}, nil
}

// Execute runs one prompt on the executor sidecar and converts the wire
// response into a TaskResult.
func (c *Client) Execute(ctx context.Context, in ExecuteInput) (*models.TaskResult, error) {
	resp, err := c.client.Execute(ctx, toProtoRequest(in))
	if err != nil {
		return nil, fmt.Errorf("gRPC Execute call failed: %w", err)
	}
	return fromProtoResponse(resp), nil
}

// IsAvailable reports whether the agent binary is runnable on the executor
// host. Transport errors count as unavailable.
func (c *Client) IsAvailable(ctx context.Context) bool {
	resp, err := c.client.CheckAvailability(ctx, &executorv1.AvailabilityRequest{})
	if err != nil {
		return false
	}
	return resp.Available
}

// CheckAuth reports the agent backend's authentication state.
func (c *Client) CheckAuth(ctx context.Context) models.AuthStatus {
	resp, err := c.client.CheckAuth(ctx, &executorv1.AuthRequest{})
	if err != nil {
		return models.AuthStatus{OK: false, Reason: fmt.Sprintf("auth check failed: %v", err)}
	}
	return models.AuthStatus{OK: resp.Ok, Reason: resp.Reason}
}

// Close releases the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoRequest(in ExecuteInput) *executorv1.ExecuteRequest {
	return &executorv1.ExecuteRequest{
		Id:         in.ID,
		Prompt:     in.Prompt,
		WorkingDir: in.WorkingDir,
	}
}

func fromProtoResponse(resp *executorv1.ExecuteResponse) *models.TaskResult {
	result := &models.TaskResult{
		Executed:        resp.Executed,
		Output:          resp.Output,
		FilesModified:   resp.FilesModified,
		UnverifiedFiles: resp.UnverifiedFiles,
		DurationMS:      resp.DurationMs,
		Status:          fromProtoStatus(resp.Status),
		CWD:             resp.Cwd,
		Error:           resp.Error,
	}
	for _, f := range resp.VerifiedFiles {
		result.VerifiedFiles = append(result.VerifiedFiles, models.VerifiedFile{
			Path:   f.Path,
			Exists: f.Exists,
		})
	}
	return result
}

// fromProtoStatus maps the wire status onto the known set; anything the
// sidecar sends outside the contract becomes INVALID.
func fromProtoStatus(s string) models.ResultStatus {
	status := models.ResultStatus(s)
	if !status.IsValid() {
		return models.ResultStatusInvalid
	}
	return status
}
