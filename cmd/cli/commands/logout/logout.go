package logout

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
)

type (
	LogoutCmd struct {
		App *app.App
	}
)

func (*LogoutCmd) Name() string     { return "logout" }
func (*LogoutCmd) Synopsis() string { return "drop the local session" }
func (*LogoutCmd) Usage() string {
	return `logout:
  Drop the locally stored session token
`
}

func (p *LogoutCmd) SetFlags(f *flag.FlagSet) {
}

func (p *LogoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := p.App.Store.ClearSession(); err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to clear session:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("logged out")
	return subcommands.ExitSuccess
}
