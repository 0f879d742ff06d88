/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package diag

import (
	"fmt"
	"io"
	"log"
	"os"
)

// StderrSink logs diagnostics to an io.Writer (stderr by default). Call
// SetOutput(io.Discard) to silence it entirely; assigning Output alone
// does not redirect a sink whose logger has already been created.
type StderrSink struct {
	Output io.Writer
	logger *log.Logger
}

// NewStderrSink returns a StderrSink writing to os.Stderr.
func NewStderrSink() *StderrSink {
	s := &StderrSink{Output: os.Stderr}
	s.logger = log.New(s.Output, "", 0)
	return s
}

// SetOutput reconfigures the sink's destination.
func (s *StderrSink) SetOutput(w io.Writer) {
	s.Output = w
	s.logger = log.New(w, "", 0)
}

func (s *StderrSink) Error(d Diagnostic) {
	if s.logger == nil {
		s.logger = log.New(s.Output, "", 0)
	}
	loc := ""
	if d.Node != nil {
		loc = fmt.Sprintf(" (%s:%d:%d)", d.Src, d.Node.Line, d.Node.Column)
	}
	s.logger.Printf("%s[%s/%s]: %s%s", d.Kind, d.Group, d.Label, d.Message, loc)
}
