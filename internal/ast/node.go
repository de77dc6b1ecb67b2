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

// Node is a single vertex of the netlist tree. Every concrete kind embeds
// NodeBase, which carries the tree links, the dtype back-pointers and the
// rented scratch counter.
type Node interface {
    Base() *NodeBase
    String() string
    IsOutputter() bool
    EachChild(fn func(Node))
}

// DType is a data-type node. DTypes live in the TypeTable and are referenced
// from ordinary nodes through dtype back-pointers; some DTypes reference
// themselves.
type DType interface {
    Node
    Generic() bool
    Signature() string
    VirtRefDTypep() DType
}

type NodeBase struct {
    self       Node
    list       *NodeList
    prev       Node
    next       Node
    dtype      DType
    childDType DType
    user1      int
    user1gen   uint32
    dead       bool
}

// NodeList is an intrusive doubly-linked child list. Nodes are spliced out
// in place, so iteration that captures the next link first survives deletion
// of the current node.
type NodeList struct {
    parent Node
    head   Node
    tail   Node
}

func initNode(b *NodeBase, self Node) {
    b.self = self
}

func (self *NodeList) init(parent Node) {
    self.parent = parent
}

func (self *NodeList) Empty() bool {
    return self.head == nil
}

func (self *NodeList) Head() Node {
    return self.head
}

func (self *NodeList) PushBack(n Node) {
    b := n.Base()

    /* must not be linked anywhere else */
    if b.list != nil {
        panic("hdlc: node is already linked")
    }

    /* splice onto the tail */
    b.list = self
    b.prev = self.tail

    if self.tail == nil {
        self.head = n
    } else {
        self.tail.Base().next = n
    }
    self.tail = n
}

func (self *NodeList) ForEach(fn func(Node)) {
    for n := self.head; n != nil; {
        p := n.Base().next
        fn(n)
        n = p
    }
}

func (self *NodeBase) Base() *NodeBase {
    return self
}

func (self *NodeBase) IsOutputter() bool {
    return false
}

func (self *NodeBase) Nextp() Node {
    return self.next
}

func (self *NodeBase) Backp() Node {
    return self.prev
}

func (self *NodeBase) Parentp() Node {
    if self.list == nil {
        return nil
    } else {
        return self.list.parent
    }
}

func (self *NodeBase) Deleted() bool {
    return self.dead
}

func (self *NodeBase) DTypep() DType {
    return self.dtype
}

func (self *NodeBase) SetDTypep(dt DType) {
    self.dtype = dt
}

func (self *NodeBase) ChildDTypep() DType {
    return self.childDType
}

func (self *NodeBase) SetChildDTypep(dt DType) {
    self.childDType = dt
}

// UnlinkFrBack splices the node out of its owning list and returns it, so a
// caller can chain the usual unlink-then-delete sequence.
func (self *NodeBase) UnlinkFrBack() Node {
    l := self.list

    /* unlinking a free node indicates a bookkeeping bug upstream */
    if l == nil {
        panic("hdlc: unlink of an unlinked node")
    }

    /* splice out of the sibling chain */
    if self.prev != nil {
        self.prev.Base().next = self.next
    } else {
        l.head = self.next
    }
    if self.next != nil {
        self.next.Base().prev = self.prev
    } else {
        l.tail = self.prev
    }

    self.list = nil
    self.prev = nil
    self.next = nil
    return self.self
}

// DeleteTree tears down the whole subtree under an already unlinked node.
// The nodes are only marked dead; memory is reclaimed by the collector once
// the candidate lists drop their references.
func (self *NodeBase) DeleteTree() {
    if self.list != nil {
        panic("hdlc: delete of a still linked node")
    }
    self.destroy()
}

func (self *NodeBase) destroy() {
    if self.dead {
        panic("hdlc: double delete")
    }
    self.dead = true
    self.self.EachChild(func(ch Node) {
        ch.Base().destroy()
    })
}
