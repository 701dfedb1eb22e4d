package richtext

import (
	"reflect"
	"testing"
)

func TestLinesPlainText(t *testing.T) {
	got := Lines("  2 eggs\r\n\n salt & pepper ")
	want := []string{"2 eggs", "salt & pepper"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestLinesUnorderedList(t *testing.T) {
	got := Lines("<p>For the dough:</p><ul><li>200g <strong>flour</strong></li><li>1&nbsp;egg</li></ul>")
	want := []string{"For the dough:", "• 200g flour", "• 1 egg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestLinesOrderedListAndBreaks(t *testing.T) {
	got := Lines("<ol><li>Boil</li><li>Simmer</li></ol>Serve<br>hot")
	want := []string{"1. Boil", "2. Simmer", "Serve", "hot"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestLinesDropsScripts(t *testing.T) {
	got := Lines("<div>rice<script>alert(1)</script></div><!-- note -->")
	want := []string{"rice"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestSummaryAndEmpty(t *testing.T) {
	if got := Summary("<p>a</p><p>b</p>", ", "); got != "a, b" {
		t.Fatalf("unexpected summary %q", got)
	}
	if got := Lines(""); len(got) != 0 {
		t.Fatalf("expected no lines, got %#v", got)
	}
	if got := PlainText("<p>x</p><p>y</p>"); got != "x\ny" {
		t.Fatalf("unexpected plain text %q", got)
	}
}

func TestSummaryDropsListMarkers(t *testing.T) {
	got := Summary("<p>Batter:</p><ol><li>200g flour</li><li>2 eggs</li></ol><ul><li>salt</li></ul>", " · ")
	if got != "Batter: · 200g flour · 2 eggs · salt" {
		t.Fatalf("unexpected summary %q", got)
	}
}
