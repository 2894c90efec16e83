package event

import (
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"

	"github.com/valyala/fastjson"
)

// Kind tells which sink a decoded record belongs to.
type Kind int

const (
	KindLog Kind = iota
	KindTrace
)

func (k Kind) String() string {
	if k == KindTrace {
		return "trace"
	}
	return "log"
}

const (
	logField   = "log"
	traceField = "trace"
)

// Payload is the inner object carried in a record's log field.
type Payload struct {
	Kind Kind
	// Body is the inner JSON object exactly as it appeared in the log field.
	Body json.RawMessage

	trace         string
	traceIsString bool
}

// TraceBlob returns the binary trace carried by a trace payload.
func (p Payload) TraceBlob() ([]byte, error) {
	if !p.traceIsString {
		return nil, ErrTraceNotString
	}
	blob, err := base64.StdEncoding.DecodeString(p.trace)
	if err != nil {
		return nil, ErrTraceEncoding
	}
	return blob, nil
}

// Decoder turns record data into payloads. It is safe for concurrent use.
type Decoder struct {
	parsers fastjson.ParserPool
}

// Decode runs the two JSON layers of a record: the outer object and the JSON
// document held as a string in its log field. ok is false when the record has
// to be skipped.
func (d *Decoder) Decode(data []byte) (Payload, bool) {
	outer := d.parsers.Get()
	defer d.parsers.Put(outer)

	if !validJSON(data) {
		return Payload{}, false
	}
	v, err := outer.ParseBytes(data)
	if err != nil || v.Type() != fastjson.TypeObject {
		return Payload{}, false
	}

	logValue := v.Get(logField)
	if logValue == nil || logValue.Type() != fastjson.TypeString {
		return Payload{}, false
	}
	raw, err := logValue.StringBytes()
	if err != nil || len(raw) == 0 {
		return Payload{}, false
	}

	inner := d.parsers.Get()
	defer d.parsers.Put(inner)

	if !validJSON(raw) {
		return Payload{}, false
	}
	obj, err := inner.ParseBytes(raw)
	if err != nil || obj.Type() != fastjson.TypeObject {
		return Payload{}, false
	}

	p := Payload{
		Kind: KindLog,
		Body: append(json.RawMessage(nil), raw...),
	}
	if traceValue := obj.Get(traceField); traceValue != nil {
		p.Kind = KindTrace
		if traceValue.Type() == fastjson.TypeString {
			b, _ := traceValue.StringBytes()
			p.trace = string(b)
			p.traceIsString = true
		}
	}
	return p, true
}

// validJSON rejects what the parser lets through inside strings: unknown
// escapes, raw control characters and invalid UTF-8.
func validJSON(b []byte) bool {
	return utf8.Valid(b) && fastjson.ValidateBytes(b) == nil
}
