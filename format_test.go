package intrange_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/menmos/intrange-go"
	"github.com/pkg/errors"
)

func Test_ParseExFmt(t *testing.T) {

	type testCase struct {
		name     string
		src      string
		expected [3]int
		wantErr  bool
	}

	cases := []testCase{
		{"with step", "2..14//3", [3]int{2, 14, 3}, false},
		{"inferred ascending", "1..5", [3]int{1, 5, 1}, false},
		{"inferred descending", "5..1", [3]int{5, 1, -1}, false},
		{"negative bounds", "-5..-1//2", [3]int{-5, -1, 2}, false},
		{"negative step", "20..1//-2", [3]int{20, 1, -2}, false},
		{"surrounding spaces", " 1..3 ", [3]int{1, 3, 1}, false},
		{"no separator", "5", [3]int{}, true},
		{"bad lower", "a..3", [3]int{}, true},
		{"bad upper", "1..b", [3]int{}, true},
		{"bad step", "1..3//x", [3]int{}, true},
		{"missing step", "1..3//", [3]int{}, true},
		{"zero step", "1..3//0", [3]int{}, true},
		{"too many dots", "1..2..3", [3]int{}, true},
	}

	for _, tCase := range cases {
		t.Run(tCase.name, func(t *testing.T) {
			actual, err := intrange.ParseExFmt(tCase.src)
			if (err != nil) != tCase.wantErr {
				t.Errorf("expectedErr=%v, gotErr=%v", tCase.wantErr, err)
				return
			}

			if err != nil {
				if !errors.Is(err, intrange.ErrInvalidArgument) {
					t.Errorf("expected an invalid argument error, got %v", err)
				}
				return
			}

			if actual.Unpack() != tCase.expected {
				t.Errorf("expected triple=%v, got %v", tCase.expected, actual.Unpack())
			}
		})
	}
}

func Test_ParseExFmtKeepsCause(t *testing.T) {
	_, err := intrange.ParseExFmt("1..x")
	if err == nil || !strings.Contains(err.Error(), "invalid syntax") {
		t.Errorf("expected the strconv cause in %v", err)
	}

	_, err = intrange.FromUntyped([]interface{}{1, 2})
	if err == nil || !strings.Contains(err.Error(), "got 2") {
		t.Errorf("expected the decoding cause in %v", err)
	}
}

func Test_StringRoundTrip(t *testing.T) {
	for _, r := range smallRanges() {
		parsed, err := intrange.ParseExFmt(r.String())
		if err != nil || !parsed.Equal(r) {
			t.Errorf("%v: round trip gave %v (err=%v)", r, parsed, err)
		}
	}
}

func Test_MustParse(t *testing.T) {
	if !intrange.MustParse("1..3").Equal(intrange.New(1, 3, 1)) {
		t.Errorf("unexpected parse result")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic on malformed notation")
		}
	}()
	intrange.MustParse("nope")
}

func Test_Text(t *testing.T) {
	text, err := intrange.New(20, 1, -2).MarshalText()
	if err != nil || string(text) != "20..1//-2" {
		t.Fatalf("unexpected text %q (err=%v)", text, err)
	}

	var r intrange.Range
	if err := r.UnmarshalText([]byte("2..14//3")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Unpack() != [3]int{2, 14, 3} {
		t.Errorf("unexpected range %v", r)
	}

	if err := r.UnmarshalText([]byte("2..")); err == nil {
		t.Errorf("expected an error")
	}
}

func Test_JSON(t *testing.T) {
	type document struct {
		Window intrange.Range `json:"window"`
	}

	data, err := json.Marshal(document{Window: intrange.New(7, 523, 19)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"window":[7,523,19]}` {
		t.Errorf("unexpected encoding %s", data)
	}

	var decoded document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([3]int{7, 523, 19}, decoded.Window.Unpack()); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{`[1, 2]`, `[1, 2, 0]`, `[1.5, 2, 3]`, `"1..2"`, `[1, "2", 3]`} {
		var r intrange.Range
		err := json.Unmarshal([]byte(bad), &r)
		if !errors.Is(err, intrange.ErrInvalidArgument) {
			t.Errorf("%s: expected an invalid argument error, got %v", bad, err)
		}
	}
}

func Test_FromUntyped(t *testing.T) {
	r, err := intrange.FromUntyped([]interface{}{2, 14, 3})
	if err != nil || r.Unpack() != [3]int{2, 14, 3} {
		t.Errorf("unexpected result %v (err=%v)", r, err)
	}

	if _, err := intrange.FromUntyped("2..14"); !errors.Is(err, intrange.ErrInvalidArgument) {
		t.Errorf("expected an invalid argument error, got %v", err)
	}
}

func Test_Info(t *testing.T) {
	info := intrange.New(1, 10, 2).Info()
	if info.Notation != "1..10//2" || info.Size != 5 || info.Sum != 25 {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Last == nil || *info.Last != 9 {
		t.Errorf("expected last=9, got %v", info.Last)
	}
	if !info.Parity.AllOdd || info.Parity.AnyEven {
		t.Errorf("unexpected parity %+v", info.Parity)
	}

	empty := intrange.Empty().Info()
	if !empty.Empty || empty.First != nil || empty.Max != nil {
		t.Errorf("unexpected empty info %+v", empty)
	}
}
