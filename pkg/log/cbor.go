package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// A .tklog file is a plain concatenation of CBOR-encoded Events, one per
// HTTP exchange, with no header or framing between records. Writers emit
// canonical definite-length maps so the same exchange always produces the
// same bytes; readers tolerate duplicate keys and indefinite lengths so
// files written by other tools still load.
var (
	trafficEnc = mustEncMode(cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	})

	trafficDec = mustDecMode(cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		// Events are flat records; anything deeper is a corrupt file.
		MaxNestedLevels: 4,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("traffic log: invalid CBOR encoder options: %v", err))
	}
	return mode
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	mode, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("traffic log: invalid CBOR decoder options: %v", err))
	}
	return mode
}

// EncodeEvent returns the record bytes for a single exchange.
func EncodeEvent(event Event) ([]byte, error) {
	return trafficEnc.Marshal(event)
}

// DecodeEvent parses one record.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := trafficDec.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder returns an encoder that appends records to a .tklog stream.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return trafficEnc.NewEncoder(w)
}

// NewDecoder returns a decoder that reads records from a .tklog stream
// until io.EOF.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return trafficDec.NewDecoder(r)
}
