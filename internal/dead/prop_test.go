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

package dead

import (
    `fmt`
    `testing`

    `github.com/brianvoe/gofakeit/v6`
    `github.com/davecgh/go-spew/spew`
    `github.com/stretchr/testify/require`
    `github.com/verikit/hdlc/internal/ast`
)

// randomDesign builds a netlist with a random mix of live and dead modules,
// vars, scopes and assignments. Protected nodes are returned so the caller
// can check they all survive.
func randomDesign(f *gofakeit.Faker) (*ast.Netlist, []ast.Node) {
    var protected []ast.Node

    nl := ast.NewNetlist()
    intdt := ast.NewBasicDType("int", 32)
    nl.TypeTablep().AddType(intdt)

    top := ast.NewModule("top", 2)
    nl.AddModule(top)

    mods := []*ast.Module{top}
    nmods := f.Number(1, 4)
    for i := 0; i < nmods; i++ {
        m := ast.NewModule(fmt.Sprintf("m_%s", f.LetterN(6)), f.Number(3, 6))
        nl.AddModule(m)
        mods = append(mods, m)

        /* maybe instantiate it from the top module */
        if f.Bool() {
            top.Stmts.PushBack(ast.NewCell(fmt.Sprintf("u_%d", i), m))
        }
    }

    for _, m := range mods {
        scp := ast.NewTopScope(m.Name)
        m.Stmts.PushBack(scp)

        nvars := f.Number(1, 5)
        for i := 0; i < nvars; i++ {
            v := ast.NewVar(fmt.Sprintf("v_%s", f.LetterN(6)))
            v.SetDTypep(intdt)
            m.Stmts.PushBack(v)
            vs := ast.NewVarScope(v, scp)
            vs.SetDTypep(intdt)
            scp.Vars.PushBack(vs)

            /* only the top module gets protected vars: an uninstantiated
             * module dies as a whole, taking its contents with it */
            if m == top && f.Bool() {
                if f.Bool() {
                    v.IO = true
                } else {
                    v.Public = true
                }
                protected = append(protected, v, vs)
            } else {
                v.Temp = true
            }

            /* a write whose RHS is a constant or, sometimes, an outputter */
            rhs := ast.Node(ast.NewConst(int64(f.Number(0, 1000))))
            if f.Bool() {
                rhs = ast.NewDisplay(v.Name)
            }
            ref := ast.NewVarRef(v, vs)
            ref.SetDTypep(intdt)
            asn := ast.NewAssign(ref, rhs)
            asn.SetDTypep(intdt)
            scp.Blocks.PushBack(asn)
        }
    }
    return nl, protected
}

// checkWellFormed walks the tree and asserts every reachable back-pointer target is
// itself still reachable and undeleted.
func checkWellFormed(t *testing.T, nl *ast.Netlist) {
    live := make(map[ast.Node]struct{})
    ast.WalkPreOrder(nl, func(n ast.Node) bool {
        require.False(t, n.Base().Deleted(), "deleted node still linked: %s\n%s", n, spew.Sdump(n.Base()))
        live[n] = struct{}{}
        return true
    })

    requireLive := func(n ast.Node, tgt ast.Node) {
        if _, ok := live[tgt]; !ok {
            t.Fatalf("dangling reference %s -> %s", n, tgt)
        }
    }

    for n := range live {
        if dtp := n.Base().DTypep(); dtp != nil {
            requireLive(n, dtp)
        }
        if dtp := n.Base().ChildDTypep(); dtp != nil {
            requireLive(n, dtp)
        }
        switch p := n.(type) {
            case *ast.Cell     : requireLive(n, p.ModP)
            case *ast.VarScope : requireLive(n, p.VarP); requireLive(n, p.ScopeP)
            case *ast.VarRef   : if p.VarP != nil { requireLive(n, p.VarP) }
                                 if p.VarScopeP != nil { requireLive(n, p.VarScopeP) }
            case *ast.Scope    : if p.Above != nil { requireLive(n, p.Above) }
            case *ast.CFunc    : if p.ScopeP != nil { requireLive(n, p.ScopeP) }
            case *ast.RefDType : if p.RefP != nil { requireLive(n, p.RefP) }
        }
    }
}

func TestDeadRandomizedNoDanglingRefs(t *testing.T) {
    f := gofakeit.New(12345)

    for round := 0; round < 50; round++ {
        nl, protected := randomDesign(f)

        AllScoped(nl)

        checkWellFormed(t, nl)
        for _, n := range protected {
            require.False(t, n.Base().Deleted(), "protected node deleted: %s", n)
        }
    }
}

func TestDeadRandomizedIdempotent(t *testing.T) {
    f := gofakeit.New(99)

    for round := 0; round < 20; round++ {
        nl, _ := randomDesign(f)

        All(nl)
        first := ast.DumpTreeString(nl)
        All(nl)
        require.Equal(t, first, ast.DumpTreeString(nl), "second pass changed the tree")
    }
}
