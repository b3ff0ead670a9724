package journal

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/waymark/internal/itinerary"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Record
		wantErr bool
	}{
		{
			name: "fsd jump",
			line: `{"timestamp":"2024-05-01T12:00:00Z","event":"FSDJump","StarSystem":"Sol","SystemAddress":10477373803}`,
			want: Record{
				Event:      "FSDJump",
				Kind:       KindFSDJump,
				StarSystem: "Sol",
				Timestamp:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "location",
			line: `{"event":"Location","StarSystem":"Colonia","Docked":true}`,
			want: Record{Event: "Location", Kind: KindLocation, StarSystem: "Colonia"},
		},
		{
			name: "carrier jump",
			line: `{"event":"CarrierJump","StarSystem":"Maia"}`,
			want: Record{Event: "CarrierJump", Kind: KindCarrierJump, StarSystem: "Maia"},
		},
		{
			name: "other event is unrecognized",
			line: `{"event":"FuelScoop","Scooped":5.0}`,
			want: Record{Event: "FuelScoop", Kind: KindUnrecognized},
		},
		{
			name: "bad timestamp is ignored",
			line: `{"timestamp":"yesterday","event":"FSDJump","StarSystem":"Sol"}`,
			want: Record{Event: "FSDJump", Kind: KindFSDJump, StarSystem: "Sol"},
		},
		{
			name: "system address as string",
			line: `{"event":"FSDJump","StarSystem":"Sol","SystemAddress":"10477373803"}`,
			want: Record{Event: "FSDJump", Kind: KindFSDJump, StarSystem: "Sol"},
		},
		{
			name: "system address overflows int64",
			line: `{"event":"FSDJump","StarSystem":"Maia","SystemAddress":1.5e20}`,
			want: Record{Event: "FSDJump", Kind: KindFSDJump, StarSystem: "Maia"},
		},
		{
			name: "numeric timestamp is ignored",
			line: `{"timestamp":12345,"event":"Location","StarSystem":"Sol"}`,
			want: Record{Event: "Location", Kind: KindLocation, StarSystem: "Sol"},
		},
		{
			name: "non-string system is not an arrival target",
			line: `{"event":"FSDJump","StarSystem":42}`,
			want: Record{Event: "FSDJump", Kind: KindFSDJump},
		},
		{
			name:    "json null",
			line:    `null`,
			wantErr: true,
		},
		{
			name:    "truncated json",
			line:    `{"event":"FSDJump","StarSys`,
			wantErr: true,
		},
		{
			name:    "not json",
			line:    `Journal says hello`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedRecord) {
					t.Fatalf("ParseRecord() error = %v, want ErrMalformedRecord", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRecord() error = %v", err)
			}
			if !got.Timestamp.Equal(tt.want.Timestamp) {
				t.Fatalf("Timestamp = %v, want %v", got.Timestamp, tt.want.Timestamp)
			}
			got.Timestamp, tt.want.Timestamp = time.Time{}, time.Time{}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseRecord() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKind(t *testing.T) {
	for _, k := range []Kind{KindFSDJump, KindLocation, KindCarrierJump} {
		if !k.Arrival() {
			t.Errorf("%s.Arrival() = false, want true", k)
		}
	}
	if KindUnrecognized.Arrival() {
		t.Errorf("Unrecognized.Arrival() = true, want false")
	}
	if got := KindUnrecognized.String(); got != "Unrecognized" {
		t.Errorf("String() = %q", got)
	}
}

func TestExtract_OnlyItineraryArrivals(t *testing.T) {
	it := itinerary.New("Sol", "Maia", "Colonia")
	lines := []string{
		`{"event":"FSDJump","StarSystem":"Sol"}`,
		`{"event":"FSDTarget","StarSystem":"Maia"}`,
		`{"event":"FSDJump","StarSystem":"Lave"}`,
		`{"event":"Location","StarSystem":"Colonia"}`,
		`{"event":"FSDJump","StarSystem":"sol"}`,
	}
	got := Extract(lines, it).Sorted()
	want := []string{"Colonia", "Sol"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtract_MalformedLineTolerance(t *testing.T) {
	it := itinerary.New("Sol", "Maia")
	clean := []string{
		`{"event":"FSDJump","StarSystem":"Sol"}`,
		`{"event":"CarrierJump","StarSystem":"Maia"}`,
	}
	dirty := []string{clean[0], `{"event":"FSDJump","Sta`, clean[1]}

	if got, want := Extract(dirty, it).Sorted(), Extract(clean, it).Sorted(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract(dirty) = %#v, want %#v", got, want)
	}
	if res := Scan(dirty, it); res.Malformed != 1 || res.Arrivals != 2 {
		t.Fatalf("Scan() = malformed %d arrivals %d, want 1 and 2", res.Malformed, res.Arrivals)
	}
}

func TestScan_OddFieldTypesKeepArrivals(t *testing.T) {
	it := itinerary.New("A", "B")
	lines := []string{
		`{"event":"FSDJump","StarSystem":"A","SystemAddress":"10477373803"}`,
		`{"event":"FSDJump","StarSystem":"B","SystemAddress":1.5e20}`,
		`{"event":"Location","StarSystem":"A","timestamp":12345}`,
	}
	res := Scan(lines, it)
	if res.Malformed != 0 {
		t.Fatalf("Scan() malformed = %d, want 0", res.Malformed)
	}
	if got, want := res.Visited.Sorted(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Scan() visited = %#v, want %#v", got, want)
	}
}

func TestExtract_OrderIndependent(t *testing.T) {
	it := itinerary.New("A", "B", "C")
	lines := []string{
		`{"event":"FSDJump","StarSystem":"C"}`,
		`{"event":"FSDJump","StarSystem":"A"}`,
		`{"event":"FSDJump","StarSystem":"B"}`,
	}
	reversed := []string{lines[2], lines[1], lines[0]}
	if a, b := Extract(lines, it).String(), Extract(reversed, it).String(); a != b {
		t.Fatalf("Extract order dependent: %q vs %q", a, b)
	}
}

func TestScan_LastArrival(t *testing.T) {
	it := itinerary.New("Sol")
	lines := []string{
		`{"timestamp":"2024-05-01T12:05:00Z","event":"FSDJump","StarSystem":"Lave"}`,
		`{"timestamp":"2024-05-01T12:00:00Z","event":"FSDJump","StarSystem":"Sol"}`,
		`{"timestamp":"2024-05-01T12:10:00Z","event":"Music","MusicTrack":"NoTrack"}`,
	}
	res := Scan(lines, it)
	if res.Last.StarSystem != "Lave" {
		t.Fatalf("Last = %+v, want Lave", res.Last)
	}
	if !res.Visited.Has("Sol") || res.Visited.Has("Lave") {
		t.Fatalf("Visited = %v", res.Visited.Sorted())
	}
}
