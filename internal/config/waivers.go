/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config records diagnostic waivers from configuration files and
// applies them to source locations during reporting. It is independent of
// the passes; they coexist in the same compiler.
package config

import (
	"path"
)

// A FileLine is one source location with the set of diagnostics waived for
// it.
type FileLine struct {
	Filename string
	Lineno   int
	waived   map[string]bool
}

func NewFileLine(filename string, lineno int) *FileLine {
	return &FileLine{Filename: filename, Lineno: lineno}
}

func (fl *FileLine) waive(code string) {
	if fl.waived == nil {
		fl.waived = make(map[string]bool)
	}
	fl.waived[code] = true
}

// Waived reports whether the diagnostic code has been suppressed for this
// location.
func (fl *FileLine) Waived(code string) bool {
	return fl.waived[code]
}

type ignore struct {
	code    string
	pattern string
	min     int
	max     int
}

var ignores []ignore

// AddIgnore records a suppression of a diagnostic code for every line of
// filename (a path.Match pattern) between min and max inclusive. max <= 0
// means no upper bound.
func AddIgnore(code string, filename string, min int, max int) {
	ignores = append(ignores, ignore{code: code, pattern: filename, min: min, max: max})
}

// ApplyIgnores marks the location with every recorded suppression that
// matches it.
func ApplyIgnores(fl *FileLine) {
	for _, ig := range ignores {
		if fl.Lineno < ig.min {
			continue
		}
		if ig.max > 0 && fl.Lineno > ig.max {
			continue
		}
		if ok, err := path.Match(ig.pattern, fl.Filename); err == nil && ok {
			fl.waive(ig.code)
		}
	}
}

// Reset drops every recorded suppression; used between compilations.
func Reset() {
	ignores = nil
}
