package signup

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"traineeportal/cmd/cli/app"
	"traineeportal/cmd/cli/tools/prompt/credentials"
	"traineeportal/pkg/auth"
)

type (
	SignupCmd struct {
		App *app.App
	}
)

func (*SignupCmd) Name() string     { return "signup" }
func (*SignupCmd) Synopsis() string { return "create a portal account" }
func (*SignupCmd) Usage() string {
	return `Usage: portal signup <NATIONAL_ID>

Walk through the signup chain: verify the national id, confirm the SMS code,
then choose a password. Finishes back at the login screen.
`
}

func (p *SignupCmd) SetFlags(f *flag.FlagSet) {
}

func (p *SignupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: missing national id")
		return subcommands.ExitUsageError
	}

	flow := auth.NewSignup(p.App.Auth)

	res, err := flow.VerifyIdentity(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: identity verification failed:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("a confirmation code was sent to", res.MaskedPhone)

	code, err := credentials.Line("confirmation code")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to read code: %s\n", err)
		return subcommands.ExitFailure
	}
	if err := flow.VerifyPhone(ctx, code); err != nil {
		fmt.Fprintln(os.Stderr, "error: phone verification failed:", err)
		return subcommands.ExitFailure
	}

	password, err := credentials.Password("choose a password")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to read password: %s\n", err)
		return subcommands.ExitFailure
	}
	if err := flow.CreatePassword(ctx, password); err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to create password:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("account created, you can now log in")
	return subcommands.ExitSuccess
}
