package contents

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
)

type (
	ContentsCmd struct {
		App *app.App

		lectures bool
	}
)

func (*ContentsCmd) Name() string     { return "contents" }
func (*ContentsCmd) Synopsis() string { return "browse training contents and lectures" }
func (*ContentsCmd) Usage() string {
	return `contents [-lectures <CONTENT_ID>]:
  List training contents, or the lectures of one content
`
}

func (p *ContentsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.lectures, "lectures", false, "list the lectures of a training content")
}

func (p *ContentsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	token, err := p.App.Token()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return subcommands.ExitFailure
	}

	if p.lectures {
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "error: the command is expecting a content id")
			return subcommands.ExitUsageError
		}

		env, err := p.App.Contents.Lectures(ctx, token, f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to load lectures:", err)
			return subcommands.ExitFailure
		}

		fmt.Println("ID | TITLE | DATE | FILE")
		fmt.Println("-- | ----- | ---- | ----")
		for _, l := range env.Data.Lectures {
			file := "-"
			if l.HasFile {
				file = "yes"
			}
			fmt.Println(l.ID, "|", l.Title, "|", l.Date, "|", file)
		}
		return subcommands.ExitSuccess
	}

	env, err := p.App.Contents.Contents(ctx, token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to load training contents:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("ID | NAME | INSTRUCTOR | LECTURES")
	fmt.Println("-- | ---- | ---------- | --------")
	for _, c := range env.Data.Contents {
		fmt.Println(c.ID, "|", c.Name, "|", c.Instructor, "|", c.LectureCount)
	}

	return subcommands.ExitSuccess
}
