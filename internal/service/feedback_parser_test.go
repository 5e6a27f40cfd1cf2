package service

import (
	"interview_prep_backend/internal/model"
	"strconv"
	"testing"
)

func intp(v int) *int { return &v }

func sameInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func fmtInt(p *int) string {
	if p == nil {
		return "nil"
	}
	return strconv.Itoa(*p)
}

func fmtStr(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func assertEvaluation(t *testing.T, name string, got, want model.Evaluation) {
	t.Helper()
	fields := []struct {
		label     string
		got, want *int
	}{
		{"Score", got.Score, want.Score},
		{"Correctness", got.Correctness, want.Correctness},
		{"Completeness", got.Completeness, want.Completeness},
		{"Clarity", got.Clarity, want.Clarity},
	}
	for _, f := range fields {
		if !sameInt(f.got, f.want) {
			t.Fatalf("%s: %s=%s, want %s", name, f.label, fmtInt(f.got), fmtInt(f.want))
		}
	}
	if (got.Feedback == nil) != (want.Feedback == nil) || fmtStr(got.Feedback) != fmtStr(want.Feedback) {
		t.Fatalf("%s: Feedback=%q, want %q", name, fmtStr(got.Feedback), fmtStr(want.Feedback))
	}
}

func strp(s string) *string { return &s }

func TestParseFeedback(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want model.Evaluation
	}{
		{
			name: "template",
			raw: "Score (overall, out of 5): 4\n" +
				"Correctness (0–5): 4\n" +
				"Completeness (0–5): 3\n" +
				"Clarity (0–5): 5\n" +
				"Feedback: Clear structure and correct use of terms.\n" +
				"Add a concrete example next time.",
			want: model.Evaluation{
				Score: intp(4), Correctness: intp(4), Completeness: intp(3), Clarity: intp(5),
				Feedback: strp("Clear structure and correct use of terms. Add a concrete example next time."),
			},
		},
		{
			name: "ascii ranges in labels",
			raw:  "Score (overall, out of 5): 3\nCorrectness (0-5): 2\nCompleteness (0-5): 3\nClarity (0-5): 4\nFeedback: Good grasp of basics.\nConsider adding an example.",
			want: model.Evaluation{
				Score: intp(3), Correctness: intp(2), Completeness: intp(3), Clarity: intp(4),
				Feedback: strp("Good grasp of basics. Consider adding an example."),
			},
		},
		{
			name: "keyword lines after feedback are commentary",
			raw:  "Score: 2\nFeedback: Too shallow.\nScore: 5 would need depth\nClarity: fine",
			want: model.Evaluation{
				Score:    intp(2),
				Feedback: strp("Too shallow. Score: 5 would need depth Clarity: fine"),
			},
		},
		{
			name: "no template lines keeps trimmed input",
			raw:  "  The answer is mostly right.\nIt misses edge cases.  \n",
			want: model.Evaluation{Feedback: strp("The answer is mostly right.\nIt misses edge cases.")},
		},
		{
			name: "missing digits leave field unset",
			raw:  "Score: N/A\nCorrectness (0–5): ?\nFeedback: Could not grade.",
			want: model.Evaluation{Feedback: strp("Could not grade.")},
		},
		{
			name: "first run of digits",
			raw:  "Correctness (0–5): 3/5\nClarity: about 4 or 5",
			want: model.Evaluation{Correctness: intp(3), Clarity: intp(4)},
		},
		{
			name: "only the segment before a second colon is read",
			raw:  "Score: none: 4",
			want: model.Evaluation{},
		},
		{
			name: "unreadable score line suppresses raw text",
			raw:  "Score: N/A\nThe model rambled.",
			want: model.Evaluation{},
		},
		{
			name: "blank lines inside commentary are skipped",
			raw:  "Score: 1\nFeedback:\n\nFirst point.\n   \nSecond point.",
			want: model.Evaluation{Score: intp(1), Feedback: strp("First point. Second point.")},
		},
		{
			name: "empty commentary stays unset",
			raw:  "Score: 3\nFeedback:   \n\n",
			want: model.Evaluation{Score: intp(3)},
		},
		{
			name: "keywords are case sensitive",
			raw:  "score: 4\nfeedback: lower case",
			want: model.Evaluation{Feedback: strp("score: 4\nfeedback: lower case")},
		},
		{
			name: "crlf line endings",
			raw:  "Score: 4\r\nClarity: 2\r\nFeedback: Okay.\r\n",
			want: model.Evaluation{Score: intp(4), Clarity: intp(2), Feedback: strp("Okay.")},
		},
		{
			name: "overflowing number is unset",
			raw:  "Score: 99999999999999999999999\nFeedback: Odd.",
			want: model.Evaluation{Feedback: strp("Odd.")},
		},
		{
			name: "empty input",
			raw:  "",
			want: model.Evaluation{},
		},
	}

	for _, c := range cases {
		assertEvaluation(t, c.name, ParseFeedback(c.raw), c.want)
	}
}

func TestParseFeedbackFallbackOnPanic(t *testing.T) {
	raw := "Score: 4\nFeedback: something\n"
	got := parseWithFallback(raw, func(string) (model.Evaluation, error) {
		var m map[string]int
		m["boom"] = 1
		return model.Evaluation{}, nil
	})

	if got.HasScores() {
		t.Fatalf("fallback should leave scores unset, got %+v", got)
	}
	if got.Feedback == nil || *got.Feedback != raw {
		t.Fatalf("fallback Feedback=%q, want raw input verbatim", fmtStr(got.Feedback))
	}
}

func TestExtractScore(t *testing.T) {
	cases := []struct {
		line string
		want *int
	}{
		{"Score (overall, out of 5): 4", intp(4)},
		{"Score: 0", intp(0)},
		{"Score:   12 points", intp(12)},
		{"Score 4", nil},
		{"Score:", nil},
		{"Score: -", nil},
	}
	for _, c := range cases {
		if got := extractScore(c.line); !sameInt(got, c.want) {
			t.Fatalf("extractScore(%q)=%s, want %s", c.line, fmtInt(got), fmtInt(c.want))
		}
	}
}
