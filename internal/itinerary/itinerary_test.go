package itinerary

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/spf13/afero"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "comments and blanks only",
			input: "# route\n\n   \n  # nothing here\n",
			want:  nil,
		},
		{
			name:  "strips inline comments and whitespace",
			input: "  Sol   # home\nAlpha Centauri#next\n\tBarnard's Star\t\n",
			want:  []string{"Sol", "Alpha Centauri", "Barnard's Star"},
		},
		{
			name:  "keeps order and repeats",
			input: "Sol\nLHS 3447\nSol\n",
			want:  []string{"Sol", "LHS 3447", "Sol"},
		},
		{
			name:  "crlf line endings",
			input: "Sol\r\nShinrarta Dezhra\r\n",
			want:  []string{"Sol", "Shinrarta Dezhra"},
		},
		{
			name:  "no trailing newline",
			input: "Sol\nColonia",
			want:  []string{"Sol", "Colonia"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := it.Names(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse() = %#v, want %#v", got, tt.want)
			}
			if it.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", it.Len(), len(tt.want))
			}
		})
	}
}

func TestParse_ReaderFailure(t *testing.T) {
	_, err := Parse(iotest.ErrReader(errors.New("disk gone")))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(fs, "/routes/none.txt")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoad_EmptyFileIsNotAnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/routes/empty.txt", []byte("# todo\n\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	it, err := Load(fs, "/routes/empty.txt")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !it.Empty() {
		t.Fatalf("Empty() = false, want true for %#v", it.Names())
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/routes/road.txt", []byte("Sol\nAchenar # imperial\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	it, err := Load(fs, "/routes/road.txt")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := it.Names(), []string{"Sol", "Achenar"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %#v, want %#v", got, want)
	}
}

func TestItinerary_Membership(t *testing.T) {
	it := New("Sol", "Achenar", "Sol", "Colonia")

	if !it.Contains("Sol") || it.Contains("sol") {
		t.Fatalf("Contains should be exact: Sol=%v sol=%v", it.Contains("Sol"), it.Contains("sol"))
	}
	if got := it.Index("Sol"); got != 0 {
		t.Fatalf("Index(Sol) = %d, want first position 0", got)
	}
	if got := it.Index("Colonia"); got != 3 {
		t.Fatalf("Index(Colonia) = %d, want 3", got)
	}
	if got := it.Index("Maia"); got != -1 {
		t.Fatalf("Index(Maia) = %d, want -1", got)
	}
	if got := it.At(2); got != "Sol" {
		t.Fatalf("At(2) = %q, want Sol", got)
	}
}

func TestItinerary_NamesIsACopy(t *testing.T) {
	it := New("Sol", "Achenar")
	names := it.Names()
	names[0] = "Maia"
	if it.At(0) != "Sol" {
		t.Fatalf("At(0) = %q after mutating Names(), want Sol", it.At(0))
	}
}

func TestItinerary_Preview(t *testing.T) {
	it := New("A", "B", "C", "D", "E", "F")
	if got, want := it.Preview(5), "A, B, C, D, E..."; got != want {
		t.Fatalf("Preview(5) = %q, want %q", got, want)
	}
	if got, want := New("A", "B").Preview(5), "A, B"; got != want {
		t.Fatalf("Preview(5) = %q, want %q", got, want)
	}
	if got := it.Preview(0); got != "" {
		t.Fatalf("Preview(0) = %q, want empty", got)
	}
}
