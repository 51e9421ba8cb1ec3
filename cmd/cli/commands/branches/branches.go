package branches

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
	"traineeportal/pkg/branch"
)

type (
	BranchesCmd struct {
		App *app.App

		set bool
	}
)

func (*BranchesCmd) Name() string     { return "branches" }
func (*BranchesCmd) Synopsis() string { return "list branches or select the active one" }
func (*BranchesCmd) Usage() string {
	return `branches [-set <BRANCH_ID>]:
  List the regional branches, or select the branch all requests go to
`
}

func (p *BranchesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.set, "set", false, "select the active branch")
}

func (p *BranchesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.set {
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "error: the command is expecting a branch id")
			f.Usage()
			return subcommands.ExitUsageError
		}

		id := f.Arg(0)
		if err := branch.Activate(p.App.Config, id); err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to select branch:", err)
			return subcommands.ExitFailure
		}
		if err := p.App.Store.SetBranch(id); err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to save branch selection:", err)
			return subcommands.ExitFailure
		}
		fmt.Println(id)
		return subcommands.ExitSuccess
	}

	active, _ := p.App.Store.Branch()

	fmt.Println("ID | NAME | BASE URL")
	fmt.Println("-- | ---- | --------")
	for _, b := range branch.All() {
		marker := ""
		if b.ID == active {
			marker = " (active)"
		}
		fmt.Println(b.ID+marker, "|", b.IntlName, "|", b.BaseURL)
	}

	return subcommands.ExitSuccess
}
