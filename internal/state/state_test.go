package state

import (
	"testing"

	"github.com/shhac/dnotetea/internal/dnote"
)

func TestFocus_NextPrev(t *testing.T) {
	tests := []struct {
		f          Focus
		next, prev Focus
	}{
		{FocusBook, FocusPage, FocusBook},
		{FocusPage, FocusContent, FocusBook},
		{FocusContent, FocusContent, FocusPage},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if got := tt.f.Next(); got != tt.next {
				t.Errorf("Next() = %v, want %v", got, tt.next)
			}
			if got := tt.f.Prev(); got != tt.prev {
				t.Errorf("Prev() = %v, want %v", got, tt.prev)
			}
		})
	}
}

func TestParseFocus(t *testing.T) {
	for _, f := range []Focus{FocusBook, FocusPage, FocusContent} {
		got, err := ParseFocus(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFocus(%q) = %v, %v", f.String(), got, err)
		}
	}
	if got, err := ParseFocus(" Page "); err != nil || got != FocusPage {
		t.Errorf("ParseFocus should ignore case and whitespace, got %v, %v", got, err)
	}
	if _, err := ParseFocus("sidebar"); err == nil {
		t.Error("ParseFocus(sidebar) should fail")
	}
}

func TestClearPages(t *testing.T) {
	s := New()
	s.Pages.Set([]dnote.Page{{ID: 1}})
	s.Pages.Next()
	s.Content = &dnote.PageContent{Text: "x"}
	s.ClearPages()
	if s.Pages.Len() != 0 || s.Content != nil {
		t.Errorf("ClearPages left pages=%d content=%v", s.Pages.Len(), s.Content)
	}
	if _, ok := s.SelectedPage(); ok {
		t.Error("ClearPages should clear the page selection")
	}
}

func TestNotice_Expires(t *testing.T) {
	s := New()
	s.StatusLine = "hints"
	s.Notify("boom", 2, true)
	if s.Line() != "boom" {
		t.Fatalf("Line() = %q, want notice", s.Line())
	}
	s.AgeNotice()
	if s.Line() != "boom" {
		t.Fatalf("notice expired after one tick")
	}
	s.AgeNotice()
	if s.Line() != "hints" {
		t.Errorf("Line() = %q, want hints after expiry", s.Line())
	}
	if _, ok := s.Notice(); ok {
		t.Error("Notice() should report none after expiry")
	}
}

func TestNotice_DefaultTicks(t *testing.T) {
	s := New()
	s.Notify("x", 0, false)
	for i := 0; i < DefaultNoticeTicks-1; i++ {
		s.AgeNotice()
	}
	if _, ok := s.Notice(); !ok {
		t.Fatal("notice expired early")
	}
	s.AgeNotice()
	if _, ok := s.Notice(); ok {
		t.Error("notice should expire after DefaultNoticeTicks")
	}
}
