package sqsbundle

import "encoding/json"

// Codec translates payload values to and from SQS message bodies.
// Encode and Decode must round-trip every payload the application sends.
type Codec interface {
	Encode(v any) (string, error)
	Decode(body string, v any) error
}

// JSONCodec is the default Codec. It marshals payloads with encoding/json.
type JSONCodec struct{}

func (JSONCodec) Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (JSONCodec) Decode(body string, v any) error {
	return json.Unmarshal([]byte(body), v)
}
