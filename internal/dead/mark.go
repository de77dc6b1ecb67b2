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
    `github.com/verikit/hdlc/internal/ast`
)

// deadVisitor walks the whole netlist once, crediting the user1 counter of
// every node a reference points at and gathering the per-kind candidate
// lists the sweepers run over afterwards.
type deadVisitor struct {
    modp         ast.ModuleNode
    varsp        []*ast.Var
    dtypesp      []ast.DType
    vscsp        []*ast.VarScope
    scopesp      []*ast.Scope
    cellsp       []*ast.Cell
    assignMap    map[*ast.VarScope][]*ast.Assign
    deletep      *ast.DeleteQueue
    elimUserVars bool
    elimDTypes   bool
    elimScopes   bool
    elimCells    bool
    sideEffect   bool
}

func newDeadVisitor(elimUserVars bool, elimDTypes bool, elimScopes bool, elimCells bool) *deadVisitor {
    return &deadVisitor{
        assignMap:    make(map[*ast.VarScope][]*ast.Assign),
        deletep:      ast.NewDeleteQueue(),
        elimUserVars: elimUserVars,
        elimDTypes:   elimDTypes,
        elimScopes:   elimScopes,
        elimCells:    elimCells,
    }
}

// checkAll credits the dtype back-pointers every node may carry. DTypes
// reference themselves; the self-loop is not counted.
func (self *deadVisitor) checkAll(n ast.Node) {
    b := n.Base()
    if dt := b.DTypep(); dt != nil && ast.Node(dt) != n {
        dt.Base().User1Inc(1)
    }
    if dt := b.ChildDTypep(); dt != nil {
        dt.Base().User1Inc(1)
    }
}

// checkDType records a deletion candidate and credits the inner reference of
// wrapper types. Generic built-ins stay; members live and die with their
// enclosing class type.
func (self *deadVisitor) checkDType(dtp ast.DType) {
    if !dtp.Generic() && self.elimDTypes {
        if _, member := dtp.(*ast.MemberDType); !member {
            self.dtypesp = append(self.dtypesp, dtp)
        }
    }
    if sub := dtp.VirtRefDTypep(); sub != nil {
        sub.Base().User1Inc(1)
    }
}

func (self *deadVisitor) mightElimVar(varp *ast.Var) bool {
    return !varp.Public && // can't elim publics!
        !varp.IO &&
        (varp.Temp ||
            (varp.Param && !varp.Trace) ||
            self.elimUserVars) // post-trace mode can kill most anything
}

func (self *deadVisitor) visitModule(modp ast.ModuleNode) {
    self.modp = modp
    modp.EachChild(self.visit)
    self.checkAll(modp)
    self.modp = nil
}

// creditPackage handles the late-stage packagep links. Past scoping they are
// no longer meaningful, so cell-elimination mode clears them instead; a kept
// link would prevent empty packages from being reaped.
func (self *deadVisitor) creditPackage(pkgp **ast.Package) {
    if *pkgp != nil {
        if self.elimCells {
            *pkgp = nil
        } else {
            (*pkgp).User1Inc(1)
        }
    }
}

func (self *deadVisitor) visit(n ast.Node) {
    switch p := n.(type) {
        case *ast.Package:
            self.visitModule(p)

        case *ast.Module:
            self.visitModule(p)

        case *ast.CFunc: {
            p.EachChild(self.visit)
            self.checkAll(p)
            if p.ScopeP != nil {
                p.ScopeP.User1Inc(1)
            }
        }

        case *ast.Scope: {
            p.EachChild(self.visit)
            self.checkAll(p)
            if p.Above != nil {
                p.Above.User1Inc(1)
            }
            if !p.IsTop() && p.Vars.Empty() && p.Blocks.Empty() && p.FinalClks.Empty() {
                self.scopesp = append(self.scopesp, p)
            }
        }

        case *ast.Cell: {
            p.EachChild(self.visit)
            self.checkAll(p)
            self.cellsp = append(self.cellsp, p)
            p.ModP.User1Inc(1)
        }

        case *ast.VarRef: {
            self.checkAll(p)
            if p.VarScopeP != nil {
                p.VarScopeP.User1Inc(1)
                p.VarScopeP.VarP.User1Inc(1)
            }
            if p.VarP != nil {
                p.VarP.User1Inc(1)
            }
            self.creditPackage(&p.PackageP)
        }

        case *ast.FTaskRef: {
            p.EachChild(self.visit)
            self.checkAll(p)
            self.creditPackage(&p.PackageP)
        }

        case *ast.EnumItemRef: {
            self.checkAll(p)
            self.creditPackage(&p.PackageP)
        }

        case *ast.RefDType: {
            p.EachChild(self.visit)
            self.checkDType(p)
            self.checkAll(p)
            self.creditPackage(&p.PackageP)
        }

        case *ast.Modport: {
            p.EachChild(self.visit)
            if self.elimCells && p.Vars.Empty() {
                self.deletep.PushDelete(p)
                return
            }
            self.checkAll(p)
        }

        case *ast.Typedef: {
            p.EachChild(self.visit)
            if self.elimCells && !p.Public {
                self.deletep.PushDelete(p)
                return
            }
            self.checkAll(p)
            // don't let packages with only public typedefs disappear
            if p.Public && self.modp != nil {
                if pkgp, ok := self.modp.(*ast.Package); ok {
                    pkgp.User1Inc(1)
                }
            }
        }

        case *ast.VarScope: {
            p.EachChild(self.visit)
            self.checkAll(p)
            if p.ScopeP != nil {
                p.ScopeP.User1Inc(1)
            }
            if self.mightElimVar(p.VarP) {
                self.vscsp = append(self.vscsp, p)
            }
        }

        case *ast.Var: {
            p.EachChild(self.visit)
            self.checkAll(p)
            // don't let packages with only public variables disappear
            if p.Public && self.modp != nil {
                if pkgp, ok := self.modp.(*ast.Package); ok {
                    pkgp.User1Inc(1)
                }
            }
            if self.mightElimVar(p) {
                self.varsp = append(self.varsp, p)
            }
        }

        case *ast.Assign: {
            /* a simple write to a variable that is never read can be
             * reaped together with the variable; anything with an
             * observable RHS has to stay */
            self.sideEffect = false
            self.visit(p.Rhs)

            /* has to be a direct reference without any extracting,
             * and only post-scoping writes are tracked */
            if varrefp, ok := p.Lhs.(*ast.VarRef); ok && !self.sideEffect && varrefp.VarScopeP != nil {
                self.assignMap[varrefp.VarScopeP] = append(self.assignMap[varrefp.VarScopeP], p)
                self.checkAll(varrefp) // must still track the reference's dtype
            } else {
                self.visit(p.Lhs)
            }
            self.checkAll(p)
        }

        case ast.DType: {
            p.EachChild(self.visit)
            self.checkDType(p)
            self.checkAll(p)
        }

        default: {
            if n.IsOutputter() {
                self.sideEffect = true
            }
            n.EachChild(self.visit)
            self.checkAll(n)
        }
    }
}
