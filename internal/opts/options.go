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

package opts

// DebugLevel gates the per-pass trace messages: a pass logs a message when
// its level is at or below the configured value.
var DebugLevel = _DefaultDebugLevel

// DumpTreeLevel gates the .tree dumps written after each pass entry point.
var DumpTreeLevel = _DefaultDumpTreeLevel

// DumpDir is the directory the .tree dumps are written under.
var DumpDir = _DefaultDumpDir

func DumpEnabled(level int) bool {
	return DumpTreeLevel >= level
}

func DebugEnabled(level int) bool {
	return DebugLevel >= level
}
