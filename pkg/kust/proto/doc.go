// Package proto implements the line protocol of the bioreactor
// interface box.
package proto

// The box speaks a compact ASCII request/response protocol over a
// serial link. A request is the fixed box prefix, a two letter
// operation mnemonic and an optional single-digit channel index,
// terminated by CRLF. A response echoes the mnemonic, carries a two
// digit error code and a value field.
//
// The protocol has no request identifiers: correlation relies on
// strictly sequential exchanges, which the transport layer enforces.
//
// Producer: interface box firmware
// Consumer: driver in pkg/kust
