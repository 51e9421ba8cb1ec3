package profile

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
)

type (
	ProfileCmd struct {
		App *app.App
	}
)

func (*ProfileCmd) Name() string     { return "profile" }
func (*ProfileCmd) Synopsis() string { return "show the logged-in trainee" }
func (*ProfileCmd) Usage() string {
	return `profile:
  Show the profile of the logged-in trainee
`
}

func (p *ProfileCmd) SetFlags(f *flag.FlagSet) {
}

func (p *ProfileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	token, err := p.App.Token()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return subcommands.ExitFailure
	}

	t, err := p.App.Auth.Profile(ctx, token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to load profile:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Name:        " + t.Name)
	fmt.Println("National ID: " + t.NationalID)
	fmt.Println("Phone:       " + t.Phone)
	fmt.Println("Program:     " + t.Program)

	return subcommands.ExitSuccess
}
