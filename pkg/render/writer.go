// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/report"
)

// Writer prints reports to an output stream.
type Writer struct {
	output io.Writer
	color  bool
}

// Option is a functional option for configuring Writer instances.
type Option func(*Writer)

// WithColor forces color on or off regardless of the output.
func WithColor(enabled bool) Option {
	return func(w *Writer) {
		w.color = enabled
	}
}

// NewWriter creates a Writer for output. If output is nil, os.Stdout is
// used. Color is enabled when output is a terminal and NO_COLOR is unset.
func NewWriter(output io.Writer, opts ...Option) *Writer {
	if output == nil {
		output = os.Stdout
	}
	w := &Writer{
		output: output,
		color:  colorSupported(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewStdoutWriter creates a Writer that prints to os.Stdout.
func NewStdoutWriter() *Writer {
	return NewWriter(os.Stdout)
}

// Write renders rep and writes it to the output.
func (w *Writer) Write(ctx context.Context, rep *report.Report) error {
	if rep == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "report is nil")
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeTimeout, "report output canceled", err)
	}

	s := styler{}
	if w.color {
		s = colorStyler()
	}

	if _, err := io.WriteString(w.output, s.render(rep)); err != nil {
		slog.Error("failed to write report", slog.String("error", err.Error()))
		return errors.Wrap(errors.ErrCodeInternal, "failed to write report", err)
	}
	return nil
}

func colorStyler() styler {
	header := color.New(color.Bold, color.FgCyan)
	header.EnableColor()
	unavailable := color.New(color.FgYellow)
	unavailable.EnableColor()

	return styler{
		header:      func(s string) string { return header.Sprint(s) },
		unavailable: func(s string) string { return unavailable.Sprint(s) },
	}
}

// colorSupported reports whether out is a terminal and NO_COLOR is unset.
func colorSupported(out io.Writer) bool {
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
