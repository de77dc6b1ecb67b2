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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyIgnores(t *testing.T) {
	defer Reset()
	AddIgnore("WIDTH", "rtl/*.v", 10, 20)
	AddIgnore("UNUSED", "*.sv", 1, 0)

	fl := NewFileLine("rtl/alu.v", 15)
	ApplyIgnores(fl)
	assert.True(t, fl.Waived("WIDTH"))
	assert.False(t, fl.Waived("UNUSED"))

	/* outside the line range */
	fl = NewFileLine("rtl/alu.v", 21)
	ApplyIgnores(fl)
	assert.False(t, fl.Waived("WIDTH"))

	/* open upper bound */
	fl = NewFileLine("core.sv", 9999)
	ApplyIgnores(fl)
	assert.True(t, fl.Waived("UNUSED"))

	/* non-matching file */
	fl = NewFileLine("tb/top.cpp", 15)
	ApplyIgnores(fl)
	assert.False(t, fl.Waived("WIDTH"))
	assert.False(t, fl.Waived("UNUSED"))
}

func TestResetDropsIgnores(t *testing.T) {
	AddIgnore("WIDTH", "*", 1, 0)
	Reset()

	fl := NewFileLine("any.v", 1)
	ApplyIgnores(fl)
	assert.False(t, fl.Waived("WIDTH"))
}
