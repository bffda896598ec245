package record

import "testing"

func TestStdDecoder_Decode(t *testing.T) {
	name, value, ok := StdDecoder{}.Decode([]byte(sampleLine))
	if !ok {
		t.Fatal("expected a successful decode")
	}
	if string(name) != "192.168.32.1" || string(value) != "foo.example.com" {
		t.Errorf("Decode = %q, %q", name, value)
	}
}

func TestStdDecoder_ToleratesReorderedFields(t *testing.T) {
	// Keyed access: field order does not matter here, unlike the scanner.
	line := []byte(`{"value":"foo.example.com","type":"ptr","name":"1.2.3.4","timestamp":"0"}`)
	name, value, ok := StdDecoder{}.Decode(line)
	if !ok {
		t.Fatal("expected a successful decode")
	}
	if string(name) != "1.2.3.4" || string(value) != "foo.example.com" {
		t.Errorf("Decode = %q, %q", name, value)
	}
}

func TestStdDecoder_Malformed(t *testing.T) {
	_, _, ok := StdDecoder{}.Decode([]byte(`{"name":`))
	if ok {
		t.Error("expected failure on malformed input")
	}
}
