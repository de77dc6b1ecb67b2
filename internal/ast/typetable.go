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

// TypeTable owns every data type of the design and keeps a lookup cache
// keyed by type signature. Passes that delete DTypes clear the cache first
// and repair it when they are done; lookups in between are forbidden.
type TypeTable struct {
    NodeBase
    Types NodeList
    cache map[string]DType
}

func newTypeTable() *TypeTable {
    t := new(TypeTable)
    initNode(&t.NodeBase, t)
    t.Types.init(t)
    t.cache = make(map[string]DType)
    return t
}

func (self *TypeTable) AddType(dt DType) {
    self.Types.PushBack(dt)
    if self.cache != nil {
        self.cache[dt.Signature()] = dt
    }
}

// Find resolves a signature through the cache.
func (self *TypeTable) Find(sig string) DType {
    if self.cache == nil {
        panic("hdlc: type table lookup with a cleared cache")
    }
    return self.cache[sig]
}

func (self *TypeTable) ClearCache() {
    self.cache = nil
}

// RepairCache rebuilds the lookup cache from the surviving types.
func (self *TypeTable) RepairCache() {
    self.cache = make(map[string]DType)
    self.Types.ForEach(func(n Node) {
        dt := n.(DType)
        self.cache[dt.Signature()] = dt
    })
}

func (self *TypeTable) String() string {
    return "TYPETABLE"
}

func (self *TypeTable) EachChild(fn func(Node)) {
    self.Types.ForEach(fn)
}
