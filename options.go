// Copyright 2026 The oppenfmt Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oppenfmt

import "go.uber.org/zap"

// Options configures a Printer. Margin controls line wrapping; Logger
// is ambient debug tracing.
type Options struct {
	// Margin is the maximum line width in columns. It must be positive.
	Margin int

	// Logger receives Debug-level tracing of scanner/printer decisions.
	// Defaults to a no-op logger.
	Logger *zap.SugaredLogger

	// IndentUnit is the number of columns a caller's nesting level adds,
	// for use with width.Indent when computing Group/Space offsets
	// instead of hand-picking literal column counts. It does not change
	// how the printer itself resolves offsets; zero defaults to 1 (no
	// scaling). Retrieve the defaulted value via Printer.IndentUnit.
	IndentUnit int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
	if o.IndentUnit <= 0 {
		o.IndentUnit = 1
	}
	return o
}
