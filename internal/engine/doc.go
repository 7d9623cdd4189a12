// Package engine implements the textvault core operations.
//
// The engine sits between the transports (HTTP, CLI) and a record store:
//
//	value -> props.Compute -> ir.ID -> Store.InsertIfAbsent   (create path)
//	params | nlquery.Translate -> queryir.Build -> Store.Scan  (read path)
//
// The natural-language path only produces structured parameters; it never
// reaches the store except through queryir.Build.
//
// ERROR HANDLING:
//
// Every failure is classified by wrapping one of the sentinels in
// internal/errors. Code maps a classified error to a stable string for
// transports. The engine never logs and never retries; a failed operation
// leaves no partial record behind.
//
// CONCURRENCY:
//
// Engine holds no mutable state of its own. It is safe for concurrent use
// whenever its Store and Clock are.
package engine
