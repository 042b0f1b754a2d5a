// Package ast defines the tree of typed nodes the analyzer consumes. The
// tree is assumed already built by an upstream parser (internal/parser in
// this repository); the analyzer treats it as read-only except for the
// optional DataType annotation on expression nodes.
//
// Only the *Stmt family of control-flow nodes exists here. The original
// implementation this repository is grounded on carried two parallel node
// families per control-flow construct (e.g. IfNode and IfStmtNode) as
// historical leftovers from an earlier grammar; the parser only ever
// produced the *Stmt family, so that is the only family reproduced here.
package ast

// Position locates a node in source text for diagnostics rendering. It has
// no bearing on analysis itself: the analyzer never branches on Position.
type Position struct {
	Line   int
	Column int
}
