package textscanner

import (
	"strings"

	"github.com/pass-meter/pass-meter/audit"
	"github.com/pass-meter/pass-meter/scanners/filescanner"
)

func New(text string) audit.Scanner {
	reader := strings.NewReader(text)

	return filescanner.New(reader, "text")
}
