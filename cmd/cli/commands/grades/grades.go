package grades

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
)

type (
	GradesCmd struct {
		App *app.App
	}
)

func (*GradesCmd) Name() string     { return "grades" }
func (*GradesCmd) Synopsis() string { return "show the grade report" }
func (*GradesCmd) Usage() string {
	return `grades:
  Show the grade report
`
}

func (p *GradesCmd) SetFlags(f *flag.FlagSet) {
}

func (p *GradesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	token, err := p.App.Token()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return subcommands.ExitFailure
	}

	env, err := p.App.Schedule.Grades(ctx, token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to load grades:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("COURSE | TERM | SCORE | PERCENT")
	fmt.Println("------ | ---- | ----- | -------")
	for _, g := range env.Data.Grades {
		fmt.Printf("%s | %s | %.0f/%.0f | %.2f%%\n", g.Course, g.Term, g.Score, g.Max, g.Percent)
	}
	fmt.Printf("\naverage: %.2f%%\n", env.Data.Average)

	return subcommands.ExitSuccess
}
