package login

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
	"traineeportal/cmd/cli/tools/prompt/credentials"
	"traineeportal/pkg/auth"
	"traineeportal/pkg/store"
)

type (
	LoginCmd struct {
		App *app.App
	}
)

func (*LoginCmd) Name() string     { return "login" }
func (*LoginCmd) Synopsis() string { return "log in to the portal" }
func (*LoginCmd) Usage() string {
	return `Usage: portal login <NATIONAL_ID>

Log in with the national id and password, and keep the session locally
`
}

func (p *LoginCmd) SetFlags(f *flag.FlagSet) {
}

func (p *LoginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: missing national id")
		return subcommands.ExitUsageError
	}

	password, err := credentials.Password("password")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to read password: %s\n", err)
		return subcommands.ExitFailure
	}

	res, err := p.App.Auth.Login(ctx, auth.Credentials{
		NationalID: f.Arg(0),
		Password:   password,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: login failed:", err)
		return subcommands.ExitFailure
	}

	err = p.App.Store.SetSession(store.Session{
		Token:      res.AccessToken,
		TraineeID:  res.Trainee.ID,
		Name:       res.Trainee.Name,
		NationalID: res.Trainee.NationalID,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to save session:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("logged in as", res.Trainee.Name)
	return subcommands.ExitSuccess
}
