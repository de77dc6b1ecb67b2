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

import (
    `fmt`
)

type dtypeBase struct {
    NodeBase
}

func (self *dtypeBase) Generic() bool {
    return false
}

func (self *dtypeBase) VirtRefDTypep() DType {
    return nil
}

// BasicDType is a built-in primitive type. Generic basics are shared by the
// whole design and are never deleted.
type BasicDType struct {
    dtypeBase
    Keyword string
    Width   int
    generic bool
}

func NewBasicDType(keyword string, width int) *BasicDType {
    d := &BasicDType{Keyword: keyword, Width: width, generic: true}
    initNode(&d.NodeBase, d)
    d.dtype = d
    return d
}

func (self *BasicDType) Generic() bool {
    return self.generic
}

// SetGeneric controls whether the basic type is a shared built-in. Widthing
// narrows some basics into design-specific ones that may be reaped.
func (self *BasicDType) SetGeneric(generic bool) {
    self.generic = generic
}

func (self *BasicDType) Signature() string {
    return fmt.Sprintf("basic/%s/%d", self.Keyword, self.Width)
}

func (self *BasicDType) String() string {
    return fmt.Sprintf("BASICDTYPE %s w%d", self.Keyword, self.Width)
}

func (self *BasicDType) EachChild(fn func(Node)) {}

// RefDType is a named reference wrapper around another data type.
type RefDType struct {
    dtypeBase
    Name     string
    RefP     DType
    PackageP *Package
}

func NewRefDType(name string, refp DType) *RefDType {
    d := &RefDType{Name: name, RefP: refp}
    initNode(&d.NodeBase, d)
    d.dtype = d
    return d
}

func (self *RefDType) VirtRefDTypep() DType {
    return self.RefP
}

func (self *RefDType) Signature() string {
    return fmt.Sprintf("ref/%s", self.Name)
}

func (self *RefDType) String() string {
    return fmt.Sprintf("REFDTYPE %s", self.Name)
}

func (self *RefDType) EachChild(fn func(Node)) {}

// NodeClassDType is a struct or union type; it owns its member list.
// Members may be referenced individually while the parent itself is not.
type NodeClassDType struct {
    dtypeBase
    Name    string
    Packed  bool
    Members NodeList
}

func NewNodeClassDType(name string) *NodeClassDType {
    d := &NodeClassDType{Name: name}
    initNode(&d.NodeBase, d)
    d.dtype = d
    d.Members.init(d)
    return d
}

func (self *NodeClassDType) AddMember(m *MemberDType) {
    self.Members.PushBack(m)
}

func (self *NodeClassDType) Signature() string {
    return fmt.Sprintf("class/%s", self.Name)
}

func (self *NodeClassDType) String() string {
    return fmt.Sprintf("CLASSDTYPE %s", self.Name)
}

func (self *NodeClassDType) EachChild(fn func(Node)) {
    self.Members.ForEach(fn)
}

// MemberDType is one named member of a NodeClassDType. Its lifetime is
// dictated by the enclosing class type, never by its own counter.
type MemberDType struct {
    dtypeBase
    Name string
}

func NewMemberDType(name string, dtp DType) *MemberDType {
    d := &MemberDType{Name: name}
    initNode(&d.NodeBase, d)
    d.dtype = dtp
    return d
}

func (self *MemberDType) Signature() string {
    return fmt.Sprintf("member/%s", self.Name)
}

func (self *MemberDType) String() string {
    return fmt.Sprintf("MEMBERDTYPE %s", self.Name)
}

func (self *MemberDType) EachChild(fn func(Node)) {}
