package markup

import (
	"errors"
	"reflect"
	"testing"

	"cardpress/internal/carderr"
)

func TestComposeFullSpan(t *testing.T) {
	got := Compose("Hi", "Sans", 20, "red")
	want := `<span font="Sans" size="20000" foreground="red">Hi</span>`
	if got != want {
		t.Fatalf("Compose = %q, want %q", got, want)
	}
}

func TestComposeOmitsEmptyAttributes(t *testing.T) {
	got := Compose("x", "", 12.5, "")
	want := `<span size="12500">x</span>`
	if got != want {
		t.Fatalf("Compose = %q, want %q", got, want)
	}
}

func TestParseSpanStyles(t *testing.T) {
	lines, err := Parse(`<span font="Sans" size="18000" foreground="#ff0000">a<b>b</b></span>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := [][]Run{{
		{Text: "a", Font: "Sans", Size: 18, Colour: "#ff0000"},
		{Text: "b", Font: "Sans", Size: 18, Colour: "#ff0000", Bold: true},
	}}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("Parse = %+v, want %+v", lines, want)
	}
}

func TestParseNestedStyles(t *testing.T) {
	lines, err := Parse(`<b><i><u>x</u></i></b>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(lines) != 1 || len(lines[0]) != 1 {
		t.Fatalf("Parse = %+v, want one run", lines)
	}
	run := lines[0][0]
	if !run.Bold || !run.Italic || !run.Underline {
		t.Fatalf("styles not stacked: %+v", run)
	}
}

func TestParseStylePopsAfterClose(t *testing.T) {
	lines, err := Parse(`<b>a</b>b`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !lines[0][0].Bold || lines[0][1].Bold {
		t.Fatalf("bold must end at the closing tag: %+v", lines[0])
	}
}

func TestParseEntities(t *testing.T) {
	lines, err := Parse(`fish &amp; chips &lt;hot&gt;`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lines[0][0].Text != "fish & chips <hot>" {
		t.Fatalf("entities not decoded: %q", lines[0][0].Text)
	}
}

func TestParseSplitsLines(t *testing.T) {
	lines, err := Parse("<span size=\"12000\">a\n\nb</span>")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if len(lines[1]) != 0 {
		t.Fatalf("middle line must be empty, got %+v", lines[1])
	}
	if lines[0][0].Text != "a" || lines[2][0].Text != "b" {
		t.Fatalf("unexpected line text: %+v", lines)
	}
}

func TestParseRejectsUnknownElement(t *testing.T) {
	_, err := Parse(`<blink>x</blink>`)
	if !errors.Is(err, carderr.ErrCard) {
		t.Fatalf("expected card error, got %v", err)
	}
}

func TestParseRejectsUnknownAttribute(t *testing.T) {
	_, err := Parse(`<span rise="100">x</span>`)
	if !errors.Is(err, carderr.ErrCard) {
		t.Fatalf("expected card error, got %v", err)
	}
}

func TestParseRejectsBadSize(t *testing.T) {
	_, err := Parse(`<span size="big">x</span>`)
	if !errors.Is(err, carderr.ErrCard) {
		t.Fatalf("expected card error, got %v", err)
	}
}

func TestParseRejectsUnbalancedMarkup(t *testing.T) {
	_, err := Parse(`<b>x`)
	if !errors.Is(err, carderr.ErrCard) {
		t.Fatalf("expected card error, got %v", err)
	}
}
