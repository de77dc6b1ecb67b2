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

// Package hdlc is the dead-code elimination stage of an HDL compiler. It
// operates on an elaborated netlist with all names resolved and removes
// nodes that are provably unreferenced, in place.
package hdlc

import (
	"github.com/verikit/hdlc/internal/ast"
	"github.com/verikit/hdlc/internal/dead"
)

// DeadifyModules removes unreferenced modules from the netlist.
func DeadifyModules(rootp *ast.Netlist) {
	dead.Modules(rootp)
}

// DeadifyDTypes removes unreferenced modules and data types.
func DeadifyDTypes(rootp *ast.Netlist) {
	dead.DTypes(rootp)
}

// DeadifyDTypesScoped removes unreferenced modules, data types and scopes;
// the design must have been flattened first.
func DeadifyDTypesScoped(rootp *ast.Netlist) {
	dead.DTypesScoped(rootp)
}

// DeadifyAll removes unreferenced modules, user variables, data types and
// cells. Run after tracing has been decided.
func DeadifyAll(rootp *ast.Netlist) {
	dead.All(rootp)
}

// DeadifyAllScoped is DeadifyAll plus scope elimination.
func DeadifyAllScoped(rootp *ast.Netlist) {
	dead.AllScoped(rootp)
}
