package commands

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pass-meter/pass-meter/audit"
	"github.com/pass-meter/pass-meter/policy"
	"github.com/pass-meter/pass-meter/quiet"
	"github.com/pass-meter/pass-meter/scanners"
	"github.com/pass-meter/pass-meter/scanners/filescanner"
)

type AuditCommand struct {
	File          string `short:"f" long:"file" description:"the file to audit, one password per line" value-name:"FILE"`
	Policy        string `long:"policy" description:"path to a policy file" value-name:"PATH"`
	ShowPasswords bool   `long:"show-passwords" description:"allow passwords to be shown in output"`
	Debug         bool   `long:"debug" description:"enables debug logging"`
}

func (command *AuditCommand) Execute(args []string) error {
	logger := lager.NewLogger("audit")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.DEBUG))
	}

	pol := policy.Default()
	if command.Policy != "" {
		bs, err := ioutil.ReadFile(command.Policy)
		if err != nil {
			return err
		}

		pol, err = policy.Load(bs)
		if err != nil {
			return err
		}
	}

	var input io.Reader = os.Stdin
	name := "STDIN"

	if command.File != "" {
		fh, err := os.Open(command.File)
		if err != nil {
			return err
		}
		defer fh.Close()

		input = fh
		name = command.File
	}

	var quietLogger lager.Logger = quiet.NewLogger()
	if command.Debug {
		quietLogger = logger
	}

	handler := newFindingCounter(command.ShowPasswords)

	auditor := audit.NewAuditor(pol)
	err := auditor.Audit(quietLogger, filescanner.New(input, name), handler.HandleFinding)
	if err != nil {
		return err
	}

	if handler.count > 0 {
		fmt.Println()
		fmt.Printf("%d weak password(s) found.\n", handler.count)
		os.Exit(3)
	}

	fmt.Println(green("OK"), "no weak passwords found.")

	return nil
}

func newFindingCounter(showPasswords bool) *findingCounter {
	return &findingCounter{
		showPasswords: showPasswords,
	}
}

type findingCounter struct {
	count         int
	showPasswords bool
}

func (c *findingCounter) HandleFinding(logger lager.Logger, finding scanners.Finding) error {
	c.count++

	output := fmt.Sprintf("%s %s:%d %s", red("[WEAK]"), finding.Line.Path, finding.Line.LineNumber, strings.Join(finding.Reasons, "; "))
	if c.showPasswords {
		output = output + fmt.Sprintf(" [%s]", finding.Candidate())
	}
	fmt.Println(output)

	logger.Debug("weak-password-found", lager.Data{"count": c.count})

	return nil
}
