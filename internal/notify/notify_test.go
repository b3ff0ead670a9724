package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/five82/waymark/internal/itinerary"
	"github.com/five82/waymark/internal/progress"
)

func update(visited []string, stops ...string) Update {
	return Update{Snapshot: progress.Compute(progress.NewVisitedSet(visited...), itinerary.New(stops...))}
}

func TestClipboard_CopiesOnlyOnChange(t *testing.T) {
	var copied []string
	c := &Clipboard{write: func(s string) error {
		copied = append(copied, s)
		return nil
	}}
	ctx := context.Background()

	steps := []Update{
		update(nil, "A", "B", "C"),
		update(nil, "A", "B", "C"),
		update([]string{"A"}, "A", "B", "C"),
		update([]string{"A", "C"}, "A", "B", "C"),
		update([]string{"A", "B", "C"}, "A", "B", "C"),
	}
	for i, u := range steps {
		if err := c.Notify(ctx, u); err != nil {
			t.Fatalf("step %d: Notify() error = %v", i, err)
		}
	}

	want := []string{"A", "B"}
	if strings.Join(copied, ",") != strings.Join(want, ",") {
		t.Fatalf("copied = %v, want %v", copied, want)
	}
	if c.Last() != "B" {
		t.Fatalf("Last() = %q, want B", c.Last())
	}
}

func TestClipboard_FailureIsSinkError(t *testing.T) {
	c := &Clipboard{write: func(string) error { return errors.New("xclip: not found") }}
	err := c.Notify(context.Background(), update(nil, "A"))
	if !errors.Is(err, ErrSink) {
		t.Fatalf("Notify() error = %v, want ErrSink", err)
	}
	if c.Last() != "" {
		t.Fatalf("Last() = %q, want nothing recorded after failure", c.Last())
	}
}

func TestMulti_RunsEveryNotifier(t *testing.T) {
	var calls []string
	failing := NotifierFunc(func(context.Context, Update) error {
		calls = append(calls, "failing")
		return ErrSink
	})
	ok := NotifierFunc(func(context.Context, Update) error {
		calls = append(calls, "ok")
		return nil
	})

	err := Multi{failing, nil, ok}.Notify(context.Background(), update(nil, "A"))
	if !errors.Is(err, ErrSink) {
		t.Fatalf("Notify() error = %v, want ErrSink", err)
	}
	if strings.Join(calls, ",") != "failing,ok" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestConsole_Render(t *testing.T) {
	tests := []struct {
		name    string
		u       Update
		want    []string
		notWant []string
	}{
		{
			name: "nothing visited",
			u:    update(nil, "Sol", "Maia"),
			want: []string{"[*] Visited: none yet", "NEXT SYSTEM (1/2): Sol", "On track"},
		},
		{
			name:    "skipped ahead",
			u:       update([]string{"Sol", "Merope"}, "Sol", "Maia", "Merope"),
			want:    []string{"Visited: Merope, Sol", "NEXT SYSTEM (2/3): Maia", "SKIPPED ahead: visit Maia next (already visited: Merope)"},
			notWant: []string{"On track"},
		},
		{
			name: "complete",
			u:    update([]string{"Sol", "Maia"}, "Sol", "Maia"),
			want: []string{"ALL 2 SYSTEMS VISITED"},
		},
		{
			name: "location and journal",
			u: Update{
				Snapshot: progress.Compute(progress.NewVisitedSet(), itinerary.New("Sol")),
				Journal:  "/journals/Journal.2024-05-01T120000.01.log",
				Location: "Lave",
			},
			want: []string{"Current system: Lave", "Journal: Journal.2024-05-01T120000.01.log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConsole(&out)
			if err := c.Notify(context.Background(), tt.u); err != nil {
				t.Fatalf("Notify() error = %v", err)
			}
			got := out.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("output unexpectedly has %q:\n%s", w, got)
				}
			}
		})
	}
}
