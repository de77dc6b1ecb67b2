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

package ast

var (
    user1busy bool
    user1gen  uint32
)

// User1InUse is the rental handle for the per-node scratch counter. Exactly
// one pass may hold it at a time; Release must run on every exit path, so
// callers defer it right after acquisition.
type User1InUse struct {
    released bool
}

// AcquireUser1 rents the user1 slot for the calling pass. Bumping the
// generation resets every node's counter to zero without touching the tree.
func AcquireUser1() *User1InUse {
    if user1busy {
        panic("hdlc: user1 slot is already in use")
    }
    user1busy = true
    user1gen++
    return new(User1InUse)
}

func (self *User1InUse) Release() {
    if !self.released {
        self.released = true
        user1busy = false
    }
}

// User1 reads the scratch counter. A stale generation reads as zero.
func (self *NodeBase) User1() int {
    if self.user1gen != user1gen {
        return 0
    } else {
        return self.user1
    }
}

// User1Inc adjusts the scratch counter by delta. Decrements may drive the
// value negative between sweeps; only zero-ness at a sweep's start matters.
func (self *NodeBase) User1Inc(delta int) {
    if !user1busy {
        panic("hdlc: user1 access without rental")
    }
    if self.user1gen != user1gen {
        self.user1gen = user1gen
        self.user1 = 0
    }
    self.user1 += delta
}
