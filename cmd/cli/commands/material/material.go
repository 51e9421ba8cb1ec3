package material

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"

	"traineeportal/cmd/cli/app"
)

type (
	MaterialCmd struct {
		App *app.App

		output string
	}
)

func (*MaterialCmd) Name() string     { return "material" }
func (*MaterialCmd) Synopsis() string { return "download a lecture's material file" }
func (*MaterialCmd) Usage() string {
	return `Usage: portal material -o <FILE> <LECTURE_ID>

Download the document attached to a lecture
`
}

func (p *MaterialCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "material.pdf", "destination file")
}

func (p *MaterialCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: missing lecture id")
		return subcommands.ExitUsageError
	}

	token, err := p.App.Token()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return subcommands.ExitFailure
	}

	out, err := os.OpenFile(p.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to open destination file:", err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	pg := progressbar.New(-1)
	pg.Describe(fmt.Sprintf("[%s] Downloading material...", f.Arg(0)))
	defer func() {
		pg.Finish()
		pg.Clear()
		pg.Close()
	}()

	n, err := p.App.Contents.DownloadMaterial(ctx, token, f.Arg(0), io.MultiWriter(out, pg))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to download material:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("\nwrote %d bytes to %s\n", n, p.output)
	return subcommands.ExitSuccess
}
