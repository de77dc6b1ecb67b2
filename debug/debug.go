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

package debug

import (
	"github.com/verikit/hdlc/internal/dead"
)

// A Stats records how many nodes the most recent dead-code pass removed,
// per category.
type Stats struct {
	Modules   int
	Cells     int
	Scopes    int
	Vars      int
	VarScopes int
	DTypes    int
	Assigns   int
}

// GetStats returns the deletion statistics of the most recent pass.
func GetStats() Stats {
	s := dead.GetStats()
	return Stats{
		Modules:   int(s.Modules),
		Cells:     int(s.Cells),
		Scopes:    int(s.Scopes),
		Vars:      int(s.Vars),
		VarScopes: int(s.VarScopes),
		DTypes:    int(s.DTypes),
		Assigns:   int(s.Assigns),
	}
}
