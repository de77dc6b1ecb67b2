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
    `testing`

    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`
)

func TestNodeListLinkUnlink(t *testing.T) {
    m := NewModule("m", 2)
    a := NewVar("a")
    b := NewVar("b")
    c := NewVar("c")
    m.Stmts.PushBack(a)
    m.Stmts.PushBack(b)
    m.Stmts.PushBack(c)

    require.Equal(t, Node(a), m.Stmts.Head())
    require.Equal(t, Node(b), a.Nextp())
    require.Equal(t, Node(a), b.Backp())
    require.Equal(t, Node(m), b.Parentp())

    /* splice the middle node out */
    b.UnlinkFrBack()
    assert.Equal(t, Node(c), a.Nextp())
    assert.Equal(t, Node(a), c.Backp())
    assert.Nil(t, b.Parentp())

    /* unlink the head */
    a.UnlinkFrBack()
    assert.Equal(t, Node(c), m.Stmts.Head())
    assert.Nil(t, c.Backp())

    /* a free node cannot be unlinked again */
    assert.Panics(t, func() { a.UnlinkFrBack() })

    /* nor linked twice */
    m.Stmts.PushBack(a)
    assert.Panics(t, func() { m.Stmts.PushBack(a) })
}

func TestDeleteTree(t *testing.T) {
    m := NewModule("m", 3)
    s := NewTopScope("m")
    v := NewVar("v")
    m.Stmts.PushBack(s)
    m.Stmts.PushBack(v)

    nl := NewNetlist()
    nl.AddModule(m)

    m.UnlinkFrBack()
    m.DeleteTree()

    assert.True(t, m.Deleted())
    assert.True(t, s.Deleted())
    assert.True(t, v.Deleted())

    /* deleting twice is a bookkeeping bug */
    assert.Panics(t, func() { m.DeleteTree() })

    /* a linked node must be unlinked first */
    nl2 := NewNetlist()
    m2 := NewModule("m2", 3)
    nl2.AddModule(m2)
    assert.Panics(t, func() { m2.DeleteTree() })
}

func TestUser1Rental(t *testing.T) {
    v := NewVar("v")

    /* no rental, no access */
    assert.Panics(t, func() { v.User1Inc(1) })

    inuse := AcquireUser1()
    v.User1Inc(1)
    v.User1Inc(1)
    assert.Equal(t, 2, v.User1())

    /* double acquisition is a pass coordination bug */
    assert.Panics(t, func() { AcquireUser1() })
    inuse.Release()
    inuse.Release() // idempotent

    /* a new rental starts every counter back at zero */
    inuse = AcquireUser1()
    defer inuse.Release()
    assert.Equal(t, 0, v.User1())

    /* decrements may go negative between sweeps */
    v.User1Inc(-1)
    assert.Equal(t, -1, v.User1())
}

func TestUser1ReleasedOnPanic(t *testing.T) {
    func() {
        defer func() { _ = recover() }()
        inuse := AcquireUser1()
        defer inuse.Release()
        panic("pass aborted")
    }()

    /* the slot must be rentable again */
    inuse := AcquireUser1()
    inuse.Release()
}

func TestDeleteQueue(t *testing.T) {
    m := NewModule("m", 3)
    mp := NewModport("mp")
    td := NewTypedef("t", nil)
    m.Stmts.PushBack(mp)
    m.Stmts.PushBack(td)

    q := NewDeleteQueue()
    q.PushDelete(mp)
    q.PushDelete(td)
    q.Flush()

    assert.True(t, mp.Deleted())
    assert.True(t, td.Deleted())
    assert.True(t, m.Stmts.Empty())

    /* nodes already gone with an earlier entry are skipped */
    m2 := NewModule("m2", 3)
    mp2 := NewModport("mp2")
    m2.Stmts.PushBack(mp2)

    q.PushDelete(m2)
    q.PushDelete(mp2)
    assert.NotPanics(t, func() { q.Flush() })
    assert.True(t, m2.Deleted())
    assert.True(t, mp2.Deleted())
}

func TestWalkPreOrder(t *testing.T) {
    nl := NewNetlist()
    m := NewModule("m", 2)
    v := NewVar("v")
    m.Stmts.PushBack(v)
    nl.AddModule(m)

    var seen []string
    WalkPreOrder(nl, func(n Node) bool {
        seen = append(seen, n.String())
        return true
    })

    require.Contains(t, seen, "NETLIST")
    require.Contains(t, seen, "MODULE m l2")
    require.Contains(t, seen, "VAR v")

    /* the parent always comes before its children */
    assert.Less(t, indexOf(seen, "NETLIST"), indexOf(seen, "MODULE m l2"))
    assert.Less(t, indexOf(seen, "MODULE m l2"), indexOf(seen, "VAR v"))

    /* pruning skips the subtree */
    seen = nil
    WalkPreOrder(nl, func(n Node) bool {
        seen = append(seen, n.String())
        _, mod := n.(*Module)
        return !mod
    })
    assert.NotContains(t, seen, "VAR v")
}

func indexOf(ss []string, s string) int {
    for i, v := range ss {
        if v == s {
            return i
        }
    }
    return -1
}

func TestTypeTableCache(t *testing.T) {
    nl := NewNetlist()
    tt := nl.TypeTablep()

    dt := NewBasicDType("int", 32)
    tt.AddType(dt)
    require.Equal(t, DType(dt), tt.Find(dt.Signature()))

    /* lookups through a cleared cache are forbidden */
    tt.ClearCache()
    assert.Panics(t, func() { tt.Find(dt.Signature()) })

    /* repair rebuilds from the survivors only */
    gone := NewBasicDType("logic", 1)
    tt.RepairCache()
    tt.AddType(gone)
    gone.UnlinkFrBack()
    gone.DeleteTree()
    tt.RepairCache()
    assert.Equal(t, DType(dt), tt.Find(dt.Signature()))
    assert.Nil(t, tt.Find(gone.Signature()))
}

func TestDumpDeterministic(t *testing.T) {
    nl := NewNetlist()
    m := NewModule("m", 2)
    v := NewVar("v")
    v.IO = true
    m.Stmts.PushBack(v)
    nl.AddModule(m)

    first := DumpTreeString(nl)
    second := DumpTreeString(nl)
    require.Equal(t, first, second)
    assert.Contains(t, first, "MODULE m l2")
    assert.Contains(t, first, "  VAR v [IO]")
}
