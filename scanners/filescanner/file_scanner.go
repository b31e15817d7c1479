package filescanner

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/pass-meter/pass-meter/scanners"
)

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
	err          error
}

func New(r io.Reader, name string) *fileScanner {
	return &fileScanner{
		path:         name,
		bufioScanner: bufio.NewScanner(r),
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("file-scanner")

	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err)
		s.err = err
		return false
	}

	if success {
		s.lineNumber++
	}

	return success
}

func (s *fileScanner) Line(logger lager.Logger) *scanners.Line {
	return &scanners.Line{
		Content:    []byte(s.bufioScanner.Text()),
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.err
}
