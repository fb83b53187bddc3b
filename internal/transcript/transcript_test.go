package transcript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCorrect(t *testing.T) {
	c := New(map[string]string{
		"אלונה":  "אלון",
		"No A":   "Noa",
		"  ":     "ignored",
		"ganeet": "gan",
	})

	tests := []struct {
		name  string
		in    string
		want  string
		fixes []Correction
	}{
		{
			name:  "configured hebrew name",
			in:    "לקחת את אלונה לגן",
			want:  "לקחת את אלון לגן",
			fixes: []Correction{{Original: "אלונה", Corrected: "אלון", Start: len("לקחת את ")}},
		},
		{
			name:  "default priority phrase",
			in:    "buy milk priority 1",
			want:  "buy milk P1",
			fixes: []Correction{{Original: "priority 1", Corrected: "P1", Start: 9}},
		},
		{
			name:  "case and extra spaces",
			in:    "pick up NO   A at 5",
			want:  "pick up Noa at 5",
			fixes: []Correction{{Original: "NO   A", Corrected: "Noa", Start: 8}},
		},
		{
			name:  "whole words only",
			in:    "ganeets and priority 12",
			want:  "ganeets and priority 12",
			fixes: []Correction{},
		},
		{
			name: "several",
			in:   "ganeet then ganeet",
			want: "gan then gan",
			fixes: []Correction{
				{Original: "ganeet", Corrected: "gan", Start: 0},
				{Original: "ganeet", Corrected: "gan", Start: 12},
			},
		},
		{
			name:  "empty",
			in:    "",
			want:  "",
			fixes: []Correction{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fixes := c.Correct(tt.in)
			if got != tt.want {
				t.Errorf("Correct() = %q, want %q", got, tt.want)
			}
			if diff := cmp.Diff(tt.fixes, fixes); diff != "" {
				t.Errorf("corrections mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCorrect_NoTable(t *testing.T) {
	c := &Corrector{}
	got, fixes := c.Correct("anything")
	if got != "anything" || len(fixes) != 0 {
		t.Errorf("Correct() = %q, %v", got, fixes)
	}
}
