package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
	"traineeportal/cmd/cli/commands/attendance"
	"traineeportal/cmd/cli/commands/branches"
	"traineeportal/cmd/cli/commands/contents"
	"traineeportal/cmd/cli/commands/grades"
	"traineeportal/cmd/cli/commands/login"
	"traineeportal/cmd/cli/commands/logout"
	"traineeportal/cmd/cli/commands/material"
	"traineeportal/cmd/cli/commands/profile"
	"traineeportal/cmd/cli/commands/requests"
	"traineeportal/cmd/cli/commands/schedule"
	"traineeportal/cmd/cli/commands/signup"
	"traineeportal/cmd/cli/commands/version"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	subcommands.Register(subcommands.HelpCommand(), "help")
	subcommands.Register(subcommands.FlagsCommand(), "help")
	subcommands.Register(subcommands.CommandsCommand(), "help")
	subcommands.Register(&version.VersionCmd{}, "help")

	subcommands.Register(&branches.BranchesCmd{App: a}, "account")
	subcommands.Register(&login.LoginCmd{App: a}, "account")
	subcommands.Register(&logout.LogoutCmd{App: a}, "account")
	subcommands.Register(&signup.SignupCmd{App: a}, "account")
	subcommands.Register(&profile.ProfileCmd{App: a}, "account")

	subcommands.Register(&schedule.ScheduleCmd{App: a}, "studies")
	subcommands.Register(&grades.GradesCmd{App: a}, "studies")
	subcommands.Register(&attendance.AttendanceCmd{App: a}, "studies")
	subcommands.Register(&contents.ContentsCmd{App: a}, "studies")
	subcommands.Register(&material.MaterialCmd{App: a}, "studies")
	subcommands.Register(&requests.RequestsCmd{App: a}, "studies")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
