package cache

// Stored values carry a small envelope in front of the msgpack body:
//
//	magic(2) | version(1) | payload
//
// The envelope pins the serialization contract independently of the backend,
// so a value written through one connector decodes identically through any
// other, and a future format change can bump the version instead of
// corrupting old entries.

const wireVersion byte = 1

var wireMagic = [2]byte{'S', 'K'}

const wireHeaderLen = 3

func encodeEnvelope(payload []byte) []byte {
	buf := make([]byte, 0, wireHeaderLen+len(payload))
	buf = append(buf, wireMagic[0], wireMagic[1], wireVersion)
	return append(buf, payload...)
}

func decodeEnvelope(b []byte) ([]byte, error) {
	if len(b) < wireHeaderLen || b[0] != wireMagic[0] || b[1] != wireMagic[1] {
		return nil, ErrCorruptEntry
	}
	if b[2] != wireVersion {
		return nil, ErrUnsupportedVersion
	}
	return b[wireHeaderLen:], nil
}
