package requests

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
	portalrequests "traineeportal/pkg/requests"
)

type (
	RequestsCmd struct {
		App *app.App

		submit  bool
		reqType string
		subject string
		body    string
	}
)

func (*RequestsCmd) Name() string     { return "requests" }
func (*RequestsCmd) Synopsis() string { return "list or file trainee requests" }
func (*RequestsCmd) Usage() string {
	return `requests [-new -type <TYPE> -subject <SUBJECT> [-body <BODY>]]:
  List the requests filed with the branch office, or file a new one
`
}

func (p *RequestsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.submit, "new", false, "file a new request")
	f.StringVar(&p.reqType, "type", "", "request type (enrollment-letter, transcript, excused-absence)")
	f.StringVar(&p.subject, "subject", "", "request subject")
	f.StringVar(&p.body, "body", "", "request body")
}

func (p *RequestsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	token, err := p.App.Token()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return subcommands.ExitFailure
	}

	if p.submit {
		if p.reqType == "" || p.subject == "" {
			fmt.Fprintln(os.Stderr, "error: -type and -subject are required")
			f.Usage()
			return subcommands.ExitUsageError
		}

		created, err := p.App.Requests.Submit(ctx, token, portalrequests.NewRequest{
			Type:    p.reqType,
			Subject: p.subject,
			Body:    p.body,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to file request:", err)
			return subcommands.ExitFailure
		}
		fmt.Println(created.ID)
		return subcommands.ExitSuccess
	}

	env, err := p.App.Requests.All(ctx, token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to load requests:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("ID | TYPE | SUBJECT | STATUS")
	fmt.Println("-- | ---- | ------- | ------")
	for _, r := range env.Data.Requests {
		fmt.Println(r.ID, "|", r.Type, "|", r.Subject, "|", r.Status)
	}

	return subcommands.ExitSuccess
}
