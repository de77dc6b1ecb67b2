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

// Netlist is the root of the whole design: the module list, in the order the
// modules were added, plus the table owning every data type.
type Netlist struct {
    NodeBase
    modules   NodeList
    typeTable *TypeTable
}

func NewNetlist() *Netlist {
    n := new(Netlist)
    initNode(&n.NodeBase, n)
    n.modules.init(n)
    n.typeTable = newTypeTable()
    return n
}

func (self *Netlist) Modules() *NodeList   { return &self.modules }
func (self *Netlist) TypeTablep() *TypeTable { return self.typeTable }

func (self *Netlist) AddModule(m ModuleNode) {
    self.modules.PushBack(m)
}

func (self *Netlist) String() string {
    return "NETLIST"
}

func (self *Netlist) EachChild(fn func(Node)) {
    self.modules.ForEach(fn)
    fn(self.typeTable)
}

// ModuleNode is implemented by Module and its Package refinement, so the
// netlist module list can hold both.
type ModuleNode interface {
    Node
    Mod() *Module
}

type Module struct {
    NodeBase
    Name     string
    Level    int
    Internal bool
    Stmts    NodeList
}

func NewModule(name string, level int) *Module {
    m := &Module{Name: name, Level: level}
    initNode(&m.NodeBase, m)
    m.Stmts.init(m)
    return m
}

func (self *Module) Mod() *Module { return self }

func (self *Module) String() string {
    return fmt.Sprintf("MODULE %s l%d", self.Name, self.Level)
}

func (self *Module) EachChild(fn func(Node)) {
    self.Stmts.ForEach(fn)
}

// Package is a namespace module: it can hold typedefs, parameters and
// functions, and is referenced through packagep back-pointers.
type Package struct {
    Module
}

func NewPackage(name string, level int) *Package {
    p := new(Package)
    p.Name = name
    p.Level = level
    initNode(&p.NodeBase, p)
    p.Stmts.init(p)
    return p
}

func (self *Package) String() string {
    return fmt.Sprintf("PACKAGE %s l%d", self.Name, self.Level)
}

// Cell instantiates a module inside another module.
type Cell struct {
    NodeBase
    Name string
    ModP *Module
    Pins NodeList
}

func NewCell(name string, modp *Module) *Cell {
    c := &Cell{Name: name, ModP: modp}
    initNode(&c.NodeBase, c)
    c.Pins.init(c)
    return c
}

func (self *Cell) String() string {
    return fmt.Sprintf("CELL %s -> %s", self.Name, self.ModP.Name)
}

func (self *Cell) EachChild(fn func(Node)) {
    self.Pins.ForEach(fn)
}

// Scope is an elaborated instance of a module in the flattened hierarchy.
type Scope struct {
    NodeBase
    Name      string
    Above     *Scope
    top       bool
    Vars      NodeList
    Blocks    NodeList
    FinalClks NodeList
}

func NewScope(name string, above *Scope) *Scope {
    s := &Scope{Name: name, Above: above}
    initNode(&s.NodeBase, s)
    s.Vars.init(s)
    s.Blocks.init(s)
    s.FinalClks.init(s)
    return s
}

func NewTopScope(name string) *Scope {
    s := NewScope(name, nil)
    s.top = true
    return s
}

func (self *Scope) IsTop() bool {
    return self.top
}

func (self *Scope) String() string {
    return fmt.Sprintf("SCOPE %s", self.Name)
}

func (self *Scope) EachChild(fn func(Node)) {
    self.Vars.ForEach(fn)
    self.Blocks.ForEach(fn)
    self.FinalClks.ForEach(fn)
}

// Var is a variable declaration inside a module or package.
type Var struct {
    NodeBase
    Name   string
    Public bool
    IO     bool
    Trace  bool
    Temp   bool
    Param  bool
}

func NewVar(name string) *Var {
    v := &Var{Name: name}
    initNode(&v.NodeBase, v)
    return v
}

func (self *Var) String() string {
    s := fmt.Sprintf("VAR %s", self.Name)
    if self.Public {
        s += " [P]"
    }
    if self.IO {
        s += " [IO]"
    }
    if self.Temp {
        s += " [TMP]"
    }
    if self.Param {
        s += " [PRM]"
    }
    return s
}

func (self *Var) EachChild(fn func(Node)) {}

// VarScope is the elaborated instance of a Var inside one specific Scope.
type VarScope struct {
    NodeBase
    VarP   *Var
    ScopeP *Scope
}

func NewVarScope(varp *Var, scopep *Scope) *VarScope {
    v := &VarScope{VarP: varp, ScopeP: scopep}
    initNode(&v.NodeBase, v)
    return v
}

func (self *VarScope) String() string {
    return fmt.Sprintf("VARSCOPE %s.%s", self.ScopeP.Name, self.VarP.Name)
}

func (self *VarScope) EachChild(fn func(Node)) {}

// VarRef is a read or write reference to a variable.
type VarRef struct {
    NodeBase
    Name      string
    VarP      *Var
    VarScopeP *VarScope
    PackageP  *Package
}

func NewVarRef(varp *Var, vscp *VarScope) *VarRef {
    r := &VarRef{Name: varp.Name, VarP: varp, VarScopeP: vscp}
    initNode(&r.NodeBase, r)
    return r
}

func (self *VarRef) String() string {
    return fmt.Sprintf("VARREF %s", self.Name)
}

func (self *VarRef) EachChild(fn func(Node)) {}

// FTaskRef is a call reference to a function or task.
type FTaskRef struct {
    NodeBase
    Name     string
    TaskP    *CFunc
    PackageP *Package
    Args     NodeList
}

func NewFTaskRef(taskp *CFunc) *FTaskRef {
    r := &FTaskRef{Name: taskp.Name, TaskP: taskp}
    initNode(&r.NodeBase, r)
    r.Args.init(r)
    return r
}

func (self *FTaskRef) String() string {
    return fmt.Sprintf("FTASKREF %s", self.Name)
}

func (self *FTaskRef) EachChild(fn func(Node)) {
    self.Args.ForEach(fn)
}

// EnumItemRef is a reference to a single enumeration item.
type EnumItemRef struct {
    NodeBase
    Name     string
    ItemP    Node
    PackageP *Package
}

func NewEnumItemRef(name string, itemp Node) *EnumItemRef {
    r := &EnumItemRef{Name: name, ItemP: itemp}
    initNode(&r.NodeBase, r)
    return r
}

func (self *EnumItemRef) String() string {
    return fmt.Sprintf("ENUMITEMREF %s", self.Name)
}

func (self *EnumItemRef) EachChild(fn func(Node)) {}

// Typedef names a data type; its defined type hangs off the child dtype
// slot.
type Typedef struct {
    NodeBase
    Name   string
    Public bool
}

func NewTypedef(name string, dtp DType) *Typedef {
    t := &Typedef{Name: name}
    initNode(&t.NodeBase, t)
    t.childDType = dtp
    return t
}

func (self *Typedef) String() string {
    if self.Public {
        return fmt.Sprintf("TYPEDEF %s [P]", self.Name)
    }
    return fmt.Sprintf("TYPEDEF %s", self.Name)
}

func (self *Typedef) EachChild(fn func(Node)) {}

// Modport is a directional view on the members of an interface.
type Modport struct {
    NodeBase
    Name string
    Vars NodeList
}

func NewModport(name string) *Modport {
    m := &Modport{Name: name}
    initNode(&m.NodeBase, m)
    m.Vars.init(m)
    return m
}

func (self *Modport) String() string {
    return fmt.Sprintf("MODPORT %s", self.Name)
}

func (self *Modport) EachChild(fn func(Node)) {
    self.Vars.ForEach(fn)
}

// Assign is a simple blocking or continuous assignment.
type Assign struct {
    NodeBase
    Lhs Node
    Rhs Node
}

func NewAssign(lhs Node, rhs Node) *Assign {
    a := &Assign{Lhs: lhs, Rhs: rhs}
    initNode(&a.NodeBase, a)
    return a
}

func (self *Assign) String() string {
    return "ASSIGN"
}

func (self *Assign) EachChild(fn func(Node)) {
    fn(self.Rhs)
    fn(self.Lhs)
}

// CFunc is a generated C function or task body attached to a scope.
type CFunc struct {
    NodeBase
    Name   string
    ScopeP *Scope
    Stmts  NodeList
}

func NewCFunc(name string, scopep *Scope) *CFunc {
    f := &CFunc{Name: name, ScopeP: scopep}
    initNode(&f.NodeBase, f)
    f.Stmts.init(f)
    return f
}

func (self *CFunc) String() string {
    return fmt.Sprintf("CFUNC %s", self.Name)
}

func (self *CFunc) EachChild(fn func(Node)) {
    self.Stmts.ForEach(fn)
}

// Const is a literal leaf expression.
type Const struct {
    NodeBase
    Value int64
}

func NewConst(value int64) *Const {
    c := &Const{Value: value}
    initNode(&c.NodeBase, c)
    return c
}

func (self *Const) String() string {
    return fmt.Sprintf("CONST %d", self.Value)
}

func (self *Const) EachChild(fn func(Node)) {}

// BinaryExpr is a generic two-operand expression.
type BinaryExpr struct {
    NodeBase
    Op  string
    Lhs Node
    Rhs Node
}

func NewBinaryExpr(op string, lhs Node, rhs Node) *BinaryExpr {
    e := &BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs}
    initNode(&e.NodeBase, e)
    return e
}

func (self *BinaryExpr) String() string {
    return fmt.Sprintf("BINOP %s", self.Op)
}

func (self *BinaryExpr) EachChild(fn func(Node)) {
    fn(self.Lhs)
    fn(self.Rhs)
}

// Display is a system output call; evaluating it has observable effects.
type Display struct {
    NodeBase
    Text string
}

func NewDisplay(text string) *Display {
    d := &Display{Text: text}
    initNode(&d.NodeBase, d)
    return d
}

func (self *Display) IsOutputter() bool {
    return true
}

func (self *Display) String() string {
    return fmt.Sprintf("DISPLAY %q", self.Text)
}

func (self *Display) EachChild(fn func(Node)) {}
