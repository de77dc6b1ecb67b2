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

import (
	"os"
	"strconv"
)

var (
	_DefaultDebugLevel    = parseOrDefault("HDLC_DEBUG_LEVEL", 0)
	_DefaultDumpTreeLevel = parseOrDefault("HDLC_DUMP_TREE", 0)
	_DefaultDumpDir       = stringOrDefault("HDLC_DUMP_DIR", "obj_dir")
)

func parseOrDefault(key string, def int) int {
	if env := os.Getenv(key); env == "" {
		return def
	} else if val, err := strconv.ParseUint(env, 0, 32); err != nil {
		panic("hdlc: invalid value for " + key)
	} else {
		return int(val)
	}
}

func stringOrDefault(key string, def string) string {
	if env := os.Getenv(key); env == "" {
		return def
	} else {
		return env
	}
}
