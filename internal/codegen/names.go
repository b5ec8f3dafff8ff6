// Package codegen provides naming helpers shared by the emitter package.
package codegen

// Variable names used in emitted scanner code.
const (
	InputName  = "input"
	PosName    = "pos"
	LineName   = "line"
	ColumnName = "column"
	TokensName = "tokens"
	ErrorsName = "errs"
)
