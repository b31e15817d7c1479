package commands

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"
	"github.com/kardianos/osext"

	"github.com/pass-meter/pass-meter/audit"
	"github.com/pass-meter/pass-meter/policy"
	"github.com/pass-meter/pass-meter/strength"
)

type CheckCommand struct {
	Policy       string `long:"policy" description:"path to a policy file to check the password against" value-name:"PATH"`
	ShowPassword bool   `long:"show-password" description:"allow the password to be shown in output"`
	Quiet        bool   `short:"q" long:"quiet" description:"only print the strength label"`
	Debug        bool   `long:"debug" description:"enables debug logging"`
}

func (command *CheckCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := lager.NewLogger("check")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.DEBUG))
	}

	candidate, err := readCandidate(args)
	if err != nil {
		return err
	}

	evaluation := strength.Evaluate(candidate)
	logger.Debug("evaluated", lager.Data{
		"score":        evaluation.Score,
		"entropy-bits": evaluation.EntropyBits,
	})

	if command.Quiet {
		fmt.Println(evaluation.Label)
	} else {
		command.printReport(candidate, evaluation)
	}

	if command.Policy == "" {
		return nil
	}

	bs, err := ioutil.ReadFile(command.Policy)
	if err != nil {
		return err
	}

	pol, err := policy.Load(bs)
	if err != nil {
		return err
	}

	_, reasons := audit.NewAuditor(pol).Flag(candidate)
	if len(reasons) > 0 {
		fmt.Println()
		for _, reason := range reasons {
			fmt.Println(red("[POLICY]"), reason)
		}
		os.Exit(3)
	}

	return nil
}

// readCandidate takes the password from the first positional argument,
// or failing that the first line of STDIN.
func readCandidate(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", nil
}

func (command *CheckCommand) printReport(candidate string, evaluation strength.Evaluation) {
	shown := strings.Repeat("•", utf8.RuneCountInString(candidate))
	if command.ShowPassword {
		shown = candidate
	}

	color := colorForScore(evaluation.Score)

	fmt.Println("Password:", shown)
	fmt.Printf("Strength: %s (score %d/5)\n", color(evaluation.Label.String()), evaluation.Score)
	fmt.Printf("Entropy:  %.1f bits\n", evaluation.EntropyBits)
	fmt.Println()

	printCriterion("Length ≥ 8", evaluation.Criteria.Length)
	printCriterion("Uppercase letter (A–Z)", evaluation.Criteria.Upper)
	printCriterion("Lowercase letter (a–z)", evaluation.Criteria.Lower)
	printCriterion("Number (0–9)", evaluation.Criteria.Digit)
	printCriterion("Special character (!@#...)", evaluation.Criteria.Special)
	fmt.Println()

	if len(evaluation.Suggestions) == 0 {
		fmt.Println(green("Great! Your password meets all criteria."))
		return
	}

	fmt.Println("Suggestions:")
	for _, suggestion := range evaluation.Suggestions {
		fmt.Println("-", suggestion)
	}
}

func printCriterion(name string, ok bool) {
	if ok {
		fmt.Println(green("✔"), name)
	} else {
		fmt.Println(red("✖"), name)
	}
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `pass-meter update`.")
	}
}
