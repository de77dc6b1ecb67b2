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

// Package dead removes provably unreferenced nodes from an elaborated
// netlist: modules, cells, scopes, variables and data types, depending on
// how far the surrounding compiler has lowered the design.
//
// The pass rents the per-node user1 counter, walks the tree once crediting
// every observed reference, then sweeps the candidate kinds. Deleting a node
// debits the counters its sweep tracks for that kind (its dtype, its
// enclosing or above scope, the module a cell instantiates), which may free
// further candidates within the same sweep; the var, scope and module sweeps
// repeat until nothing more is deleted.
package dead

import (
    `path/filepath`

    `github.com/bytedance/gopkg/util/logger`
    `github.com/verikit/hdlc/internal/ast`
    `github.com/verikit/hdlc/internal/opts`
)

// Deletion counters of the most recent pass, for debug inspection.
var (
    statModules   int64
    statCells     int64
    statScopes    int64
    statVars      int64
    statVarScopes int64
    statDTypes    int64
    statAssigns   int64
)

// Stats is a snapshot of the deletion counters.
type Stats struct {
    Modules   int64
    Cells     int64
    Scopes    int64
    Vars      int64
    VarScopes int64
    DTypes    int64
    Assigns   int64
}

func GetStats() Stats {
    return Stats{
        Modules:   statModules,
        Cells:     statCells,
        Scopes:    statScopes,
        Vars:      statVars,
        VarScopes: statVarScopes,
        DTypes:    statDTypes,
        Assigns:   statAssigns,
    }
}

func resetStats() {
    statModules = 0
    statCells = 0
    statScopes = 0
    statVars = 0
    statVarScopes = 0
    statDTypes = 0
    statAssigns = 0
}

func debugf(level int, format string, v ...interface{}) {
    if opts.DebugEnabled(level) {
        logger.Debugf(format, v...)
    }
}

func deadify(rootp *ast.Netlist, elimUserVars bool, elimDTypes bool, elimScopes bool, elimCells bool) {
    inuse := ast.AcquireUser1()
    defer inuse.Release()

    /* deletions invalidate the type lookup cache, no lookups until repaired */
    rootp.TypeTablep().ClearCache()
    defer rootp.TypeTablep().RepairCache()

    resetStats()
    visitor := newDeadVisitor(elimUserVars, elimDTypes, elimScopes, elimCells)

    /* Phase 1: credit every reference, gather the candidates */
    visitor.visit(rootp)
    visitor.deletep.Flush()

    /* Phase 2: sweep. Scopes only in a flattened design, otherwise there
     * is no easy way to know whether a scope is used. Modules last: there
     * may be vars we delete inside a mod we delete. */
    visitor.deadCheckVar()
    if elimScopes {
        visitor.deadCheckScope()
    }
    if elimCells {
        visitor.deadCheckCells()
    }
    visitor.deadCheckMod(rootp)
}

func dumpTreeMaybe(rootp *ast.Netlist, name string, level int) {
    if !opts.DumpEnabled(level) {
        return
    }
    path := filepath.Join(opts.DumpDir, name)
    if err := ast.DumpTreeFile(path, rootp); err != nil {
        logger.Errorf("hdlc: cannot write tree dump %s: %v", path, err)
    }
}

// Modules removes unreferenced modules. Run early, before the generate
// blocks have been expanded away.
func Modules(rootp *ast.Netlist) {
    debugf(2, "deadifyModules:")
    deadify(rootp, false, false, false, false)
    dumpTreeMaybe(rootp, "deadModules.tree", 6)
}

// DTypes additionally removes unreferenced data types.
func DTypes(rootp *ast.Netlist) {
    debugf(2, "deadifyDTypes:")
    deadify(rootp, false, true, false, false)
    dumpTreeMaybe(rootp, "deadDtypes.tree", 3)
}

// DTypesScoped removes unreferenced data types and scopes; only valid once
// the design has been flattened.
func DTypesScoped(rootp *ast.Netlist) {
    debugf(2, "deadifyDTypesScoped:")
    deadify(rootp, false, true, true, false)
    dumpTreeMaybe(rootp, "deadDtypesScoped.tree", 3)
}

// All removes everything removable except scopes: user variables, data
// types, cells and modules. Run after tracing has been decided.
func All(rootp *ast.Netlist) {
    debugf(2, "deadifyAll:")
    deadify(rootp, true, true, false, true)
    dumpTreeMaybe(rootp, "deadAll.tree", 3)
}

// AllScoped is All plus scope elimination for flattened designs.
func AllScoped(rootp *ast.Netlist) {
    debugf(2, "deadifyAllScoped:")
    deadify(rootp, true, true, true, true)
    dumpTreeMaybe(rootp, "deadAllScoped.tree", 3)
}
