package log

import (
	"fmt"

	pb "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/hostbridge-project/sdk/execctx"
)

// Envelope field names used on the wire. The host unpacks these to feed its
// own logging facility.
const (
	fieldContext  = "context"
	fieldLevel    = "level"
	fieldFormat   = "format"
	fieldArgs     = "args"
	fieldMetadata = "metadata"
)

// Reserved metadata keys attached to records produced by the panic handler.
const (
	// MetaPanicFile carries the source file of a reported panic site.
	MetaPanicFile = "panic_file"

	// MetaPanicLine carries the source line of a reported panic site.
	MetaPanicLine = "panic_line"
)

// Record accumulates a single log entry: a severity, a format template using
// the host runtime's placeholder notation, positional values for the host
// formatter, and metadata pairs. Values are opaque here; the host renders
// them. A record is consumed by exactly one Send.
type Record struct {
	logger   *Logger
	level    Level
	format   string
	args     []any
	metadata []metaEntry
	consumed bool
}

type metaEntry struct {
	key   string
	value any
}

// NewRecord starts a record at the given level with a host-side format
// template.
func (l *Logger) NewRecord(level Level, format string) *Record {
	return &Record{logger: l, level: level, format: format}
}

// Arg appends a positional value for the host formatter.
func (r *Record) Arg(value any) *Record {
	r.args = append(r.args, value)
	return r
}

// OptArg appends value when present and otherwise leaves the record
// unchanged. The template must account for the possibly missing placeholder.
func (r *Record) OptArg(value any, present bool) *Record {
	if present {
		r.args = append(r.args, value)
	}
	return r
}

// OptArgElse appends value when present, or fallback otherwise.
func (r *Record) OptArgElse(value any, present bool, fallback any) *Record {
	if present {
		r.args = append(r.args, value)
	} else {
		r.args = append(r.args, fallback)
	}
	return r
}

// Meta sets a metadata pair. Keys are unique; setting a key again replaces
// the earlier value.
func (r *Record) Meta(key string, value any) *Record {
	for i := range r.metadata {
		if r.metadata[i].key == key {
			r.metadata[i].value = value
			return r
		}
	}
	r.metadata = append(r.metadata, metaEntry{key: key, value: value})
	return r
}

// OptMeta sets a metadata pair when present and otherwise leaves the record
// unchanged.
func (r *Record) OptMeta(key string, value any, present bool) *Record {
	if present {
		return r.Meta(key, value)
	}
	return r
}

// Send hands the record to the emission path. It never returns an error and
// never panics; records that cannot reach the host degrade to the fallback
// sink. Sending an already-consumed record is a no-op.
func (r *Record) Send() {
	if r.consumed {
		return
	}
	r.consumed = true
	r.logger.emit(r)
}

// Cancel discards a record that will not be sent.
func (r *Record) Cancel() {
	r.consumed = true
}

// envelope serializes the record, attributed to ctx, into the wire payload.
func (r *Record) envelope(ctx execctx.Context) ([]byte, error) {
	args := make([]*structpb.Value, 0, len(r.args))
	for _, a := range r.args {
		args = append(args, termValue(a))
	}

	meta := make(map[string]*structpb.Value, len(r.metadata))
	for _, m := range r.metadata {
		meta[m.key] = termValue(m.value)
	}

	env := &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldContext:  structpb.NewStringValue(ctx.Token()),
		fieldLevel:    structpb.NewStringValue(r.level.HostID()),
		fieldFormat:   structpb.NewStringValue(r.format),
		fieldArgs:     structpb.NewListValue(&structpb.ListValue{Values: args}),
		fieldMetadata: structpb.NewStructValue(&structpb.Struct{Fields: meta}),
	}}

	return pb.Marshal(env)
}

// termValue converts an opaque value into its wire representation. Values
// the structpb encoding cannot carry degrade to their text rendering rather
// than failing the record.
func termValue(v any) *structpb.Value {
	val, err := structpb.NewValue(v)
	if err != nil {
		return structpb.NewStringValue(fmt.Sprintf("%v", v))
	}
	return val
}
