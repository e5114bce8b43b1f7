// Package cli drives the users API harness from a terminal, either as one-shot
// subcommands or as an interactive shell.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"userbench/userbench/controllers"
	"userbench/userbench/utils/color"
)

const (
	ExitOK    = 0
	ExitFail  = 1
	ExitUsage = 2
)

const usage = `Usage:
  userbench list
  userbench create -username NAME -email EMAIL
  userbench get ID
  userbench update ID [-username NAME] [-email EMAIL]
  userbench delete ID
  userbench shell
  userbench help`

var errUsage = errors.New("usage")

type App struct {
	harness *controllers.HarnessController
	in      io.Reader
	out     io.Writer
}

func NewApp(harness *controllers.HarnessController, in io.Reader, out io.Writer) *App {
	return &App{harness: harness, in: in, out: out}
}

// Run executes one subcommand and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ExitUsage
	}
	if args[0] == "shell" {
		a.runShell(ctx)
		return ExitOK
	}

	res, err := a.exec(ctx, args)
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(a.out, color.ColorError(err.Error()))
		}
		fmt.Fprintln(a.out, usage)
		return ExitUsage
	}
	if res == nil {
		return ExitOK
	}
	a.print(*res)
	if res.Failed {
		return ExitFail
	}
	return ExitOK
}

func (a *App) print(res controllers.Result) {
	if res.Failed {
		fmt.Fprintln(a.out, color.ColorError(res.Output))
		return
	}
	fmt.Fprintln(a.out, res.Output)
}

// exec returns a nil result for commands that only print help.
func (a *App) exec(ctx context.Context, args []string) (*controllers.Result, error) {
	cmd, rest := args[0], args[1:]
	var res controllers.Result

	switch cmd {
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil, nil

	case "list", "ls":
		if len(rest) != 0 {
			return nil, fmt.Errorf("list takes no arguments")
		}
		res = a.harness.ListUsers(ctx)

	case "create":
		fs := a.flagSet(cmd)
		username := fs.String("username", "", "username of the new user")
		email := fs.String("email", "", "email of the new user")
		if err := fs.Parse(rest); err != nil {
			return nil, errUsage
		}
		res = a.harness.CreateUser(ctx, controllers.CreateForm{Username: *username, Email: *email})

	case "get":
		id, _, err := splitID(rest)
		if err != nil {
			return nil, err
		}
		res = a.harness.GetUser(ctx, controllers.LookupForm{ID: id})

	case "update":
		id, flags, err := splitID(rest)
		if err != nil {
			return nil, err
		}
		fs := a.flagSet(cmd)
		username := fs.String("username", "", "new username")
		email := fs.String("email", "", "new email")
		if err := fs.Parse(flags); err != nil {
			return nil, errUsage
		}
		res = a.harness.UpdateUser(ctx, controllers.UpdateForm{ID: id, Username: *username, Email: *email})

	case "delete", "rm":
		id, _, err := splitID(rest)
		if err != nil {
			return nil, err
		}
		res = a.harness.DeleteUser(ctx, controllers.LookupForm{ID: id})

	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}
	return &res, nil
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// splitID takes the leading positional id. A missing id is passed through as
// empty so the harness reports it the same way the web page does.
func splitID(args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", args, nil
	}
	return args[0], args[1:], nil
}

// runShell reads commands until EOF, "exit" or "quit".
func (a *App) runShell(ctx context.Context) {
	scanner := bufio.NewScanner(a.in)
	fmt.Fprintln(a.out, color.ColorInfo(`Type "help" for commands, "exit" to quit.`))
	for {
		fmt.Fprint(a.out, color.ColorPrompt("userbench> "))
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if parts[0] == "exit" || parts[0] == "quit" {
			return
		}
		if parts[0] == "shell" {
			fmt.Fprintln(a.out, color.ColorWarning("already in shell"))
			continue
		}

		res, err := a.exec(ctx, parts)
		if err != nil {
			if !errors.Is(err, errUsage) {
				fmt.Fprintln(a.out, color.ColorError(err.Error()))
			}
			continue
		}
		if res != nil {
			a.print(*res)
		}
	}
}
