// Package editop defines the tagged-variant edit command that flows from
// the protocol codec into the operation engine.
//
// The teacher's dispatcher keyed function references by opcode and by
// motion direction in runtime maps; per spec §9 ("dynamic dispatch of
// edit kinds") this is replaced by a closed tagged variant and a single
// switch-based dispatcher in internal/engine, which is both clearer and
// lets the compiler check exhaustiveness.
package editop
