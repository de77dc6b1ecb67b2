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

package hdlc

import (
	"github.com/verikit/hdlc/internal/opts"
)

// SetDebugLevel sets the verbosity of per-pass trace messages, and returns
// the previous value. The initial value comes from HDLC_DEBUG_LEVEL.
func SetDebugLevel(level int) int {
	old := opts.DebugLevel
	opts.DebugLevel = level
	return old
}

// SetDumpTreeLevel sets the threshold for writing .tree dumps after each
// pass, and returns the previous value. The initial value comes from
// HDLC_DUMP_TREE.
func SetDumpTreeLevel(level int) int {
	old := opts.DumpTreeLevel
	opts.DumpTreeLevel = level
	return old
}

// SetDumpDir sets the directory .tree dumps are written under, and returns
// the previous value. The initial value comes from HDLC_DUMP_DIR.
func SetDumpDir(dir string) string {
	old := opts.DumpDir
	opts.DumpDir = dir
	return old
}
