package xdr

import (
	"bytes"
	"encoding/base64"
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (v ScVal) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(buf).Encode(v)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The data must hold
// exactly one value.
func (v *ScVal) UnmarshalBinary(data []byte) (err error) {
	r := bytes.NewReader(data)

	err = NewDecoder(r).Decode(v)
	if err != nil {
		return err
	}

	if r.Len() != 0 {
		return Error.New("trailing bytes: %d", r.Len())
	}

	return nil
}

// MarshalBase64 returns the standard base64 encoding of the XDR form of v.
func (v ScVal) MarshalBase64() (string, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// SafeUnmarshalBase64 decodes a base64 XDR string into v, failing if the
// input holds anything beyond one value.
func SafeUnmarshalBase64(s string, v *ScVal) (err error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Error.Wrap(err)
	}

	return v.UnmarshalBinary(data)
}
