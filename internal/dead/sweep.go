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
    `github.com/oleiade/lane`
    `github.com/verikit/hdlc/internal/ast`
)

func reap(n ast.Node) {
    n.Base().UnlinkFrBack()
    n.Base().DeleteTree()
}

// deadCheckVar reaps unused varscopes (with their registered writes), then
// unused vars to a fixpoint, then unused dtypes in a single refined pass.
func (self *deadVisitor) deadCheckVar() {
    /* Phase 1: unused varscopes, each write deleted before its target */
    for _, vscp := range self.vscsp {
        if vscp.User1() != 0 {
            continue
        }
        debugf(4, "  Dead %s", vscp)

        /* every registered assignment debits its own dtype on the way down */
        for _, assp := range self.assignMap[vscp] {
            debugf(4, "    Dead assign %s", assp)
            if dtp := assp.DTypep(); dtp != nil {
                dtp.Base().User1Inc(-1)
            }
            reap(assp)
            statAssigns++
        }

        if vscp.ScopeP != nil {
            vscp.ScopeP.User1Inc(-1)
        }
        if dtp := vscp.DTypep(); dtp != nil {
            dtp.Base().User1Inc(-1)
        }
        reap(vscp)
        statVarScopes++
    }

    /* Phase 2: unused vars, rescanned until a scan deletes nothing */
    for retry := true; retry; {
        retry = false
        for i, varp := range self.varsp {
            if varp == nil {
                continue
            }
            if varp.User1() == 0 {
                debugf(4, "  Dead %s", varp)
                if dtp := varp.DTypep(); dtp != nil {
                    dtp.Base().User1Inc(-1)
                }
                reap(varp)
                self.varsp[i] = nil
                statVars++
                retry = true
            }
        }
    }

    /* Phase 3: unused dtypes. A class type whose members are still
     * individually referenced survives even with a zero count of its own. */
    for _, dtp := range self.dtypesp {
        if dtp.Base().User1() != 0 {
            continue
        }
        if classp, ok := dtp.(*ast.NodeClassDType); ok && classMemberLive(classp) {
            continue
        }
        debugf(4, "  Dead %s", dtp)
        reap(dtp)
        statDTypes++
    }
}

func classMemberLive(classp *ast.NodeClassDType) bool {
    for n := classp.Members.Head(); n != nil; n = n.Base().Nextp() {
        if n.Base().User1() != 0 {
            return true
        }
    }
    return false
}

// deadCheckScope reaps empty scopes to a fixpoint; killing an inner scope
// can unreference the scope above it.
func (self *deadVisitor) deadCheckScope() {
    for retry := true; retry; {
        retry = false
        for i, scp := range self.scopesp {
            if scp == nil {
                continue
            }
            if scp.User1() == 0 {
                debugf(4, "  Dead %s", scp)
                if scp.Above != nil {
                    scp.Above.User1Inc(-1)
                }
                if dtp := scp.DTypep(); dtp != nil {
                    dtp.Base().User1Inc(-1)
                }
                reap(scp)
                self.scopesp[i] = nil
                statScopes++
                retry = true
            }
        }
    }
}

// deadCheckCells reaps cells that instantiate empty modules. One pass is
// enough: a dead cell cannot free another cell.
func (self *deadVisitor) deadCheckCells() {
    for _, cellp := range self.cellsp {
        if cellp.User1() == 0 && cellp.ModP.Stmts.Empty() {
            debugf(4, "  Dead %s", cellp)
            cellp.ModP.User1Inc(-1)
            reap(cellp)
            statCells++
        }
    }
}

// deadCheckMod reaps unreferenced modules, rescanning the module list in
// order until a scan deletes nothing. Before a module dies, every module its interior cells
// reference is debited; the cells may be buried inside generate blocks, so
// the debit walks the whole subtree.
func (self *deadVisitor) deadCheckMod(rootp *ast.Netlist) {
    for retry := true; retry; {
        retry = false
        for n := rootp.Modules().Head(); n != nil; {
            nextp := n.Base().Nextp()
            modp := n.(ast.ModuleNode).Mod()

            // > 2 because L1 is the wrapper, L2 is the top user module
            if modp.Level > 2 && modp.User1() == 0 && !modp.Internal {
                debugf(4, "  Dead module %s", modp)
                debitModTree(n)
                reap(n)
                statModules++
                retry = true
            }
            n = nextp
        }
    }
}

// debitModTree corrects the in-use counts of the modules a dying module
// still instantiates.
func debitModTree(modp ast.Node) {
    s := lane.NewStack()
    s.Push(modp)

    for !s.Empty() {
        n := s.Pop().(ast.Node)

        switch p := n.(type) {
            case *ast.Cell: {
                p.ModP.User1Inc(-1)
            }

            /* expressions hold no cells, skip their subtrees */
            case *ast.Const, *ast.BinaryExpr, *ast.Display:
                continue
        }

        n.EachChild(func(ch ast.Node) {
            s.Push(ch)
        })
    }
}
