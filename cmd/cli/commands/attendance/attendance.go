package attendance

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
)

type (
	AttendanceCmd struct {
		App *app.App
	}
)

func (*AttendanceCmd) Name() string     { return "attendance" }
func (*AttendanceCmd) Synopsis() string { return "show attendance records" }
func (*AttendanceCmd) Usage() string {
	return `attendance:
  Show per-content attendance and the overall rate
`
}

func (p *AttendanceCmd) SetFlags(f *flag.FlagSet) {
}

func (p *AttendanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	token, err := p.App.Token()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return subcommands.ExitFailure
	}

	env, err := p.App.Attendance.Records(ctx, token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to load attendance:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("CONTENT | PRESENT | ABSENT | RATE")
	fmt.Println("------- | ------- | ------ | ----")
	for _, rec := range env.Data.Records {
		fmt.Printf("%s | %d | %d | %.2f%%\n", rec.Content, rec.Stats.Present, rec.Stats.Absent, rec.Stats.AttendanceRate)
	}
	fmt.Printf("\noverall: %d/%d (%.2f%%)\n", env.Data.Stats.Present, env.Data.Stats.Total, env.Data.Stats.AttendanceRate)

	return subcommands.ExitSuccess
}
