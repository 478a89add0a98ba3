package pulsejet

import "testing"

func TestCheckSampleRejectsGarbage(t *testing.T) {
	if CheckSample([]byte("nope")) {
		t.Error("CheckSample on non-pulsejet data = true, want false")
	}
	if CheckSample(nil) {
		t.Error("CheckSample(nil) = true, want false")
	}
}

func TestCodecVersionStringFormat(t *testing.T) {
	got := CodecVersionString()
	want := "pulsejet v0.1"
	if got != want {
		t.Errorf("CodecVersionString() = %q, want %q", got, want)
	}
}

func TestLibraryVersionStringFormat(t *testing.T) {
	got := LibraryVersionString()
	want := "pulsejet v" + libraryVersion
	if got != want {
		t.Errorf("LibraryVersionString() = %q, want %q", got, want)
	}
}

func TestDecodeCheckedRejectsNonSample(t *testing.T) {
	_, err := DecodeChecked([]byte("not a pulsejet sample at all"))
	if err != ErrNotASample {
		t.Errorf("err = %v, want ErrNotASample", err)
	}
}

func TestDecodeCheckedAcceptsEncodedSample(t *testing.T) {
	samples := make([]float32, 2048)
	encoded, _ := Encode(samples, 44100, 64)

	decoded, err := DecodeChecked(encoded)
	if err != nil {
		t.Fatalf("DecodeChecked: %v", err)
	}
	if len(decoded) == 0 {
		t.Error("DecodeChecked returned no samples")
	}
}

func TestSampleVersionStringMatchesCodecVersion(t *testing.T) {
	samples := make([]float32, 2048)
	encoded, _ := Encode(samples, 44100, 64)
	if got, want := SampleVersionString(encoded), CodecVersionString(); got != want {
		t.Errorf("SampleVersionString() = %q, want %q", got, want)
	}
}
