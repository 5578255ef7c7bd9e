package main

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/pborman/options"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-fil-ribl/codedsymbol"
	"github.com/filecoin-project/go-fil-ribl/internal/digest"
	"github.com/filecoin-project/go-fil-ribl/internal/genset"
	"github.com/filecoin-project/go-fil-ribl/internal/manifest"
	"github.com/filecoin-project/go-fil-ribl/internal/sessionid"
	"github.com/filecoin-project/go-fil-ribl/riblt"
	"github.com/filecoin-project/go-fil-ribl/wire"
)

func runServe() {
	opts := &struct {
		Listen string       `getopt:"-l --listen Address to listen on"`
		Help   options.Help `getopt:"-h --help    Display help"`
	}{
		Listen: "127.0.0.1:4714",
	}
	options.RegisterAndParse(opts)

	var payload genset.Slice[digest.Chunk]
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		payload = append(payload, digest.Sum256(line))
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("serve: reading stdin: %s", err)
	}

	run := sessionid.New()
	sess := manifest.Session{
		Codec:       "digest.Chunk",
		SymbolWidth: digest.Width,
		BlockSize:   riblt.BLOCK,
		RunID:       run,
	}
	rootCID, err := sess.RootCID()
	if err != nil {
		log.Fatalf("serve: %s", err)
	}
	fmt.Fprintf(os.Stderr, "serve[%s]: %d chunks loaded, manifest %s\n", run, len(payload), rootCID)

	enc := riblt.NewEncoder[digest.Chunk](digest.Codec{}, payload)

	ln, err := net.Listen("tcp", opts.Listen)
	if err != nil {
		log.Fatalf("serve: listen: %s", err)
	}
	defer ln.Close()
	fmt.Fprintf(os.Stderr, "serve[%s]: listening on %s\n", run, ln.Addr())

	conn, err := ln.Accept()
	if err != nil {
		log.Fatalf("serve: accept: %s", err)
	}
	defer conn.Close()

	if err := serveLoop(conn, enc); err != nil {
		log.Fatalf("serve[%s]: %s", run, err)
	}
}

// serveLoop answers reqMore requests with the next riblt.BLOCK coded
// symbols from enc's stream, in order, until the client sends reqDone.
func serveLoop(conn net.Conn, enc *riblt.Encoder[digest.Chunk]) error {
	next := 0
	for {
		var req [1]byte
		if _, err := conn.Read(req[:]); err != nil {
			return xerrors.Errorf("reading request: %w", err)
		}

		switch req[0] {
		case reqDone:
			return nil
		case reqMore:
			batch := make([]codedsymbol.CodedSymbol[digest.Chunk], riblt.BLOCK)
			for i := range batch {
				batch[i] = enc.Get(next + i)
			}
			next += len(batch)
			if err := wire.WriteBatch(conn, batch); err != nil {
				return xerrors.Errorf("writing batch: %w", err)
			}
		default:
			return xerrors.Errorf("unknown request byte %x", req[0])
		}
	}
}
