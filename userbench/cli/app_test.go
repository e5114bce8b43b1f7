package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"userbench/userbench/controllers"
	"userbench/userbench/services/usersapi"
	"userbench/userbench/types"
	"userbench/userbench/utils/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	calls  []string
	update types.UpdateUserRequest
	err    error
}

func (s *stubAPI) List(ctx context.Context) (json.RawMessage, error) {
	s.calls = append(s.calls, "list")
	return json.RawMessage(`[]`), s.err
}

func (s *stubAPI) Create(ctx context.Context, req types.CreateUserRequest) (json.RawMessage, error) {
	s.calls = append(s.calls, "create:"+req.Username+":"+req.Email)
	return json.RawMessage(`{"id":1}`), s.err
}

func (s *stubAPI) Get(ctx context.Context, id string) (json.RawMessage, error) {
	s.calls = append(s.calls, "get:"+id)
	return json.RawMessage(`{"id":1}`), s.err
}

func (s *stubAPI) Update(ctx context.Context, id string, req types.UpdateUserRequest) (json.RawMessage, error) {
	s.calls = append(s.calls, "update:"+id)
	s.update = req
	return json.RawMessage(`{"id":1}`), s.err
}

func (s *stubAPI) Delete(ctx context.Context, id string) error {
	s.calls = append(s.calls, "delete:"+id)
	return s.err
}

func newTestApp(api controllers.UsersAPI, input string) (*App, *bytes.Buffer) {
	color.Disable()
	var out bytes.Buffer
	return NewApp(controllers.NewHarnessController(api), strings.NewReader(input), &out), &out
}

func TestRun_Subcommands(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		args     []string
		wantCall string
		wantOut  string
	}{
		{"list", []string{"list"}, "list", "[]"},
		{"create", []string{"create", "-username", "ann", "-email", "a@example.com"}, "create:ann:a@example.com", `"id": 1`},
		{"get", []string{"get", "7"}, "get:7", `"id": 1`},
		{"update", []string{"update", "7", "-email", "n@example.com"}, "update:7", `"id": 1`},
		{"delete", []string{"delete", "7"}, "delete:7", "User 7 deleted successfully"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAPI{}
			app, out := newTestApp(api, "")

			code := app.Run(ctx, tt.args)

			assert.Equal(t, ExitOK, code)
			assert.Equal(t, []string{tt.wantCall}, api.calls)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestRun_UpdateSendsOnlyGivenFlags(t *testing.T) {
	api := &stubAPI{}
	app, _ := newTestApp(api, "")

	require.Equal(t, ExitOK, app.Run(context.Background(), []string{"update", "3", "-username", "zed"}))
	require.NotNil(t, api.update.Username)
	assert.Equal(t, "zed", *api.update.Username)
	assert.Nil(t, api.update.Email)
}

func TestRun_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		api := &stubAPI{}
		app, out := newTestApp(api, "")
		assert.Equal(t, ExitFail, app.Run(ctx, []string{"create", "-username", "ann"}))
		assert.Contains(t, out.String(), controllers.MsgCreateMissingFields)
		assert.Empty(t, api.calls)
	})

	t.Run("not found", func(t *testing.T) {
		app, out := newTestApp(&stubAPI{err: usersapi.ErrUserNotFound}, "")
		assert.Equal(t, ExitFail, app.Run(ctx, []string{"get", "99"}))
		assert.Equal(t, "User not found\n", out.String())
	})

	t.Run("unknown command", func(t *testing.T) {
		app, out := newTestApp(&stubAPI{}, "")
		assert.Equal(t, ExitUsage, app.Run(ctx, []string{"frobnicate"}))
		assert.Contains(t, out.String(), `unknown command "frobnicate"`)
	})

	t.Run("bad flag", func(t *testing.T) {
		app, _ := newTestApp(&stubAPI{}, "")
		assert.Equal(t, ExitUsage, app.Run(ctx, []string{"create", "-nope"}))
	})

	t.Run("no args", func(t *testing.T) {
		app, out := newTestApp(&stubAPI{}, "")
		assert.Equal(t, ExitUsage, app.Run(ctx, nil))
		assert.Contains(t, out.String(), "Usage:")
	})
}

func TestRun_Shell(t *testing.T) {
	api := &stubAPI{}
	app, out := newTestApp(api, "list\n\nget 4\nnope\ndelete\nexit\nlist\n")

	assert.Equal(t, ExitOK, app.Run(context.Background(), []string{"shell"}))

	assert.Equal(t, []string{"list", "get:4"}, api.calls)
	assert.True(t, strings.HasPrefix(out.String(), `Type "help" for commands, "exit" to quit.`))
	assert.Contains(t, out.String(), `unknown command "nope"`)
	assert.Contains(t, out.String(), controllers.MsgMissingID)
}
