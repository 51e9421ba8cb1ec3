package schedule

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
)

type (
	ScheduleCmd struct {
		App *app.App
	}
)

func (*ScheduleCmd) Name() string     { return "schedule" }
func (*ScheduleCmd) Synopsis() string { return "show the weekly schedule" }
func (*ScheduleCmd) Usage() string {
	return `schedule:
  Show the weekly schedule
`
}

func (p *ScheduleCmd) SetFlags(f *flag.FlagSet) {
}

func (p *ScheduleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	token, err := p.App.Token()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return subcommands.ExitFailure
	}

	env, err := p.App.Schedule.Week(ctx, token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to load schedule:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("DAY | TIME | COURSE | ROOM")
	fmt.Println("--- | ---- | ------ | ----")
	for _, s := range env.Data.Sessions {
		fmt.Println(s.Day, "|", s.StartTime+"-"+s.EndTime, "|", s.Course, "|", s.Room)
	}

	return subcommands.ExitSuccess
}
