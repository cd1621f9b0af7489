package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MeKo-Christian/htmltok/tokenizer"
)

// emitter writes the tokenizer's output stream in a chosen wire format.
type emitter interface {
	token(tokenizer.Token) error
	error(tokenizer.ParseError) error
	close() error
}

func newEmitter(format string, w io.Writer) (emitter, error) {
	bw := bufio.NewWriter(w)
	switch format {
	case "text", "":
		return &textEmitter{w: bw}, nil
	case "json":
		return &jsonEmitter{w: bw, enc: json.NewEncoder(bw)}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: must be text or json", format)
	}
}

type textEmitter struct {
	w *bufio.Writer
}

func (e *textEmitter) token(tok tokenizer.Token) error {
	switch tok.Type {
	case tokenizer.DOCTYPE:
		_, err := fmt.Fprintf(e.w, "DOCTYPE name=%q public=%s system=%s force-quirks=%t\n",
			tok.Name, formatOptionalID(tok.PublicID), formatOptionalID(tok.SystemID), tok.ForceQuirks)
		return err
	case tokenizer.StartTag:
		_, err := fmt.Fprintf(e.w, "StartTag name=%q self-closing=%t attrs=%v\n",
			tok.Name, tok.SelfClosing, tokenizer.AttrsToMap(tok.Attrs))
		return err
	case tokenizer.EndTag:
		_, err := fmt.Fprintf(e.w, "EndTag name=%q\n", tok.Name)
		return err
	case tokenizer.Comment:
		_, err := fmt.Fprintf(e.w, "Comment data=%q\n", tok.Data)
		return err
	case tokenizer.Character:
		_, err := fmt.Fprintf(e.w, "Character data=%q\n", tok.Data)
		return err
	case tokenizer.EOF:
		_, err := fmt.Fprintln(e.w, "EOF")
		return err
	default:
		return nil
	}
}

func (e *textEmitter) error(perr tokenizer.ParseError) error {
	_, err := fmt.Fprintf(e.w, "! %s at %d:%d\n", perr.Code, perr.Line, perr.Column)
	return err
}

func (e *textEmitter) close() error {
	return e.w.Flush()
}

func formatOptionalID(id *string) string {
	if id == nil {
		return "<missing>"
	}
	return fmt.Sprintf("%q", *id)
}

// jsonEmitter writes one JSON object per line (JSON Lines), mirroring the
// html5lib-tests token encoding closely enough to be diffable against it.
type jsonEmitter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

func (e *jsonEmitter) token(tok tokenizer.Token) error {
	record := map[string]any{"kind": tok.Type.String()}
	switch tok.Type {
	case tokenizer.DOCTYPE:
		record["name"] = tok.Name
		record["publicId"] = tok.PublicID
		record["systemId"] = tok.SystemID
		record["forceQuirks"] = tok.ForceQuirks
	case tokenizer.StartTag:
		record["name"] = tok.Name
		record["selfClosing"] = tok.SelfClosing
		record["attrs"] = tokenizer.AttrsToMap(tok.Attrs)
	case tokenizer.EndTag:
		record["name"] = tok.Name
	case tokenizer.Comment, tokenizer.Character:
		record["data"] = tok.Data
	}
	return e.enc.Encode(record)
}

func (e *jsonEmitter) error(perr tokenizer.ParseError) error {
	return e.enc.Encode(map[string]any{
		"kind":   "ParseError",
		"code":   perr.Code,
		"line":   perr.Line,
		"column": perr.Column,
	})
}

func (e *jsonEmitter) close() error {
	return e.w.Flush()
}
