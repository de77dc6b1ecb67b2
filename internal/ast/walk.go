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
    `github.com/oleiade/lane`
)

// DeleteQueue defers node removal decided in the middle of a traversal until
// the walk has unwound past the node. Deciding to delete and actually
// unlinking are decoupled so iterators never stand on a freed position.
type DeleteQueue struct {
    q *lane.Queue
}

func NewDeleteQueue() *DeleteQueue {
    return &DeleteQueue{q: lane.NewQueue()}
}

func (self *DeleteQueue) PushDelete(n Node) {
    self.q.Enqueue(n)
}

// Flush unlinks and destroys every queued node. Nodes whose enclosing tree
// was already torn down by an earlier flush entry are skipped.
func (self *DeleteQueue) Flush() {
    for !self.q.Empty() {
        n := self.q.Dequeue().(Node)
        b := n.Base()

        if b.Deleted() {
            continue
        }
        if b.list != nil {
            b.UnlinkFrBack()
        }
        b.DeleteTree()
    }
}

// WalkPreOrder visits every node of the subtree iteratively, parents before
// children. Expression subtrees can be pruned by returning false.
func WalkPreOrder(root Node, visit func(Node) bool) {
    s := lane.NewStack()
    s.Push(root)

    for !s.Empty() {
        n := s.Pop().(Node)
        if !visit(n) {
            continue
        }
        n.EachChild(func(ch Node) {
            s.Push(ch)
        })
    }
}
