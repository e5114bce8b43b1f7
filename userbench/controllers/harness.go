package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"userbench/userbench/types"
	"userbench/userbench/utils/jsonutils"
	"userbench/userbench/utils/logging"

	"go.uber.org/zap"
)

const (
	MsgCreateMissingFields = "Please enter both username and email"
	MsgMissingID           = "Please enter a user ID"
	MsgUpdateNothing       = "Please enter a username or email to update"
)

// UsersAPI is the remote surface the harness drives. *usersapi.Client
// satisfies it.
type UsersAPI interface {
	List(ctx context.Context) (json.RawMessage, error)
	Create(ctx context.Context, req types.CreateUserRequest) (json.RawMessage, error)
	Get(ctx context.Context, id string) (json.RawMessage, error)
	Update(ctx context.Context, id string, req types.UpdateUserRequest) (json.RawMessage, error)
	Delete(ctx context.Context, id string) error
}

type CreateForm struct {
	Username string
	Email    string
}

type LookupForm struct {
	ID string
}

type UpdateForm struct {
	ID       string
	Username string
	Email    string
}

// Result is what one operation prints into its output block.
type Result struct {
	Output string
	Failed bool
	// ClearInputs is set after a successful create or update.
	ClearInputs bool
}

// HarnessController runs the five user operations. It holds no per-call
// state, so overlapping calls are independent.
type HarnessController struct {
	api UsersAPI
}

func NewHarnessController(api UsersAPI) *HarnessController {
	return &HarnessController{api: api}
}

func (c *HarnessController) ListUsers(ctx context.Context) Result {
	defer logging.LogDuration(ctx, "HarnessController.ListUsers")()
	raw, err := c.api.List(ctx)
	if err != nil {
		return failure("list", err)
	}
	return Result{Output: formatJSON(raw)}
}

func (c *HarnessController) CreateUser(ctx context.Context, form CreateForm) Result {
	username := strings.TrimSpace(form.Username)
	email := strings.TrimSpace(form.Email)
	if username == "" || email == "" {
		return Result{Output: MsgCreateMissingFields, Failed: true}
	}

	defer logging.LogDuration(ctx, "HarnessController.CreateUser")()
	raw, err := c.api.Create(ctx, types.CreateUserRequest{Username: username, Email: email})
	if err != nil {
		return failure("create", err)
	}
	logging.AppLogger.Info("user created", zap.String("username", username))
	return Result{Output: formatJSON(raw), ClearInputs: true}
}

func (c *HarnessController) GetUser(ctx context.Context, form LookupForm) Result {
	id := strings.TrimSpace(form.ID)
	if id == "" {
		return Result{Output: MsgMissingID, Failed: true}
	}

	defer logging.LogDuration(ctx, "HarnessController.GetUser")()
	raw, err := c.api.Get(ctx, id)
	if err != nil {
		return failure("get", err, zap.String("id", id))
	}
	return Result{Output: formatJSON(raw)}
}

func (c *HarnessController) UpdateUser(ctx context.Context, form UpdateForm) Result {
	id := strings.TrimSpace(form.ID)
	if id == "" {
		return Result{Output: MsgMissingID, Failed: true}
	}
	var req types.UpdateUserRequest
	if v := strings.TrimSpace(form.Username); v != "" {
		req.Username = &v
	}
	if v := strings.TrimSpace(form.Email); v != "" {
		req.Email = &v
	}
	if req.Empty() {
		return Result{Output: MsgUpdateNothing, Failed: true}
	}

	defer logging.LogDuration(ctx, "HarnessController.UpdateUser")()
	raw, err := c.api.Update(ctx, id, req)
	if err != nil {
		return failure("update", err, zap.String("id", id))
	}
	logging.AppLogger.Info("user updated", zap.String("id", id))
	return Result{Output: formatJSON(raw), ClearInputs: true}
}

func (c *HarnessController) DeleteUser(ctx context.Context, form LookupForm) Result {
	id := strings.TrimSpace(form.ID)
	if id == "" {
		return Result{Output: MsgMissingID, Failed: true}
	}

	defer logging.LogDuration(ctx, "HarnessController.DeleteUser")()
	if err := c.api.Delete(ctx, id); err != nil {
		return failure("delete", err, zap.String("id", id))
	}
	logging.AppLogger.Info("user deleted", zap.String("id", id))
	return Result{Output: fmt.Sprintf("User %s deleted successfully", id)}
}

func failure(op string, err error, fields ...zap.Field) Result {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	logging.ErrorLogger.Error("harness operation failed", fields...)
	return Result{Output: formatError(err), Failed: true}
}

func formatJSON(raw json.RawMessage) string {
	return jsonutils.Pretty(raw)
}

// formatError is the single place errors become display text. The usersapi
// errors already carry the exact strings shown to the user.
func formatError(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
