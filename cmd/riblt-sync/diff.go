package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	"github.com/pborman/options"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-fil-ribl/codedsymbol"
	"github.com/filecoin-project/go-fil-ribl/internal/digest"
	"github.com/filecoin-project/go-fil-ribl/internal/genset"
	"github.com/filecoin-project/go-fil-ribl/internal/sessionid"
	"github.com/filecoin-project/go-fil-ribl/riblt"
	"github.com/filecoin-project/go-fil-ribl/wire"
)

// maxRounds caps how many batches diff will request before giving up on a
// stalled decode; spec.md §7 treats a decode stall as "not an error", so
// this is a CLI-level patience knob, not a protocol limit.
const maxRounds = 64

func runDiff() {
	opts := &struct {
		Connect string       `getopt:"-c --connect Address to connect to"`
		Local   string       `getopt:"-f --local    File of line-delimited local payload; defaults to stdin"`
		Help    options.Help `getopt:"-h --help     Display help"`
	}{
		Connect: "127.0.0.1:4714",
	}
	options.RegisterAndParse(opts)

	run := sessionid.New()

	local, err := readLocalSet(opts.Local)
	if err != nil {
		log.Fatalf("diff[%s]: reading local set: %s", run, err)
	}
	fmt.Fprintf(os.Stderr, "diff[%s]: %d local chunks loaded\n", run, len(local))

	localEnc := riblt.NewEncoder[digest.Chunk](digest.Codec{}, local)

	fmt.Fprintf(os.Stderr, "diff[%s]: connecting to %s\n", run, opts.Connect)
	conn, err := net.Dial("tcp", opts.Connect)
	if err != nil {
		log.Fatalf("diff: dial: %s", err)
	}
	defer conn.Close()

	remote := riblt.NewHolder[digest.Chunk](digest.Codec{})

	localOnly := uint64(0)
	remoteOnly := uint64(0)
	reported := map[digest.Chunk]struct{}{}

	for round := 0; round < maxRounds; round++ {
		if _, err := conn.Write([]byte{reqMore}); err != nil {
			log.Fatalf("diff[%s]: requesting batch: %s", run, err)
		}

		batch, err := wire.ReadBatch[digest.Chunk](conn, digest.Codec{})
		if err != nil {
			log.Fatalf("diff[%s]: reading batch: %s", run, err)
		}
		for _, cs := range batch {
			remote.Append(cs)
		}

		diff := localEnc.CollapseWith(remote)
		for _, r := range diff.PeelAll() {
			// Each round collapses the whole accumulated stream afresh, so
			// differences found in earlier rounds peel again; report each once.
			if _, ok := reported[r.Value]; ok {
				continue
			}
			reported[r.Value] = struct{}{}
			switch r.Kind {
			case codedsymbol.Local:
				localOnly++
				fmt.Printf("local-only  %s\n", hexChunk(r.Value))
			case codedsymbol.Remote:
				remoteOnly++
				fmt.Printf("remote-only %s\n", hexChunk(r.Value))
			}
		}

		if diff.IsEmpty() {
			fmt.Fprintf(os.Stderr, "diff[%s]: converged after %d round(s): %d local-only, %d remote-only\n",
				run, round+1, localOnly, remoteOnly)
			_, _ = conn.Write([]byte{reqDone})
			return
		}
	}

	log.Fatalf("diff[%s]: %s", run, xerrors.Errorf("did not converge within %d rounds", maxRounds))
}

// readLocalSet reads line-delimited payloads from path (or stdin if path is
// empty), dedupes them, and hashes each surviving line into a digest.Chunk.
// genset.Keys does the map-to-Slice adaptation.
func readLocalSet(path string) (genset.Slice[digest.Chunk], error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, xerrors.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	lines := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Errorf("scanning: %w", err)
	}

	return genset.Keys(lines, func(line string) digest.Chunk {
		return digest.Sum256([]byte(line))
	}), nil
}

func hexChunk(c digest.Chunk) string {
	return hex.EncodeToString(c.Sum[:]) + fmt.Sprintf(" (%d bytes)", c.Length)
}
