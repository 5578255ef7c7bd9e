package main

// reqMore asks the serving side for the next batch of coded symbols.
// reqDone tells the serving side the client is finished and the connection
// may be closed. This is the minimal framing cmd/riblt-sync needs on top of
// wire.WriteBatch/ReadBatch; it is deliberately not part of the wire
// package, which only specifies symbol and batch layout, not a request/
// response protocol (spec.md §1 keeps transport out of the core).
const (
	reqMore byte = 0x01
	reqDone byte = 0x02
)
