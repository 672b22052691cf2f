package el

import (
	"errors"
	"testing"

	"github.com/domkit-dev/domkit/pkg/dom"
)

func TestBasicConstruction(t *testing.T) {
	card := Div(Class("card"),
		H1("Title"),
		P("Content with ", Strong("emphasis"), "."),
	)

	want := "<div\tclass='card'>" +
		"<h1>Title</h1>" +
		"<p>Content with <strong>emphasis</strong>.</p>" +
		"</div>"
	if got := card.OuterHTML(); got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
}

func TestAttrHelpers(t *testing.T) {
	tests := []struct {
		name string
		elem *dom.Element
		want string
	}{
		{
			name: "id and class",
			elem: Div(ID("main"), Class("a", "b")),
			want: "<div\tclass='a b'\tid='main'></div>",
		},
		{
			name: "anchor",
			elem: A(Href("/docs"), "Docs"),
			want: "<a\thref='/docs'>Docs</a>",
		},
		{
			name: "image is void",
			elem: Img(Src("/x.png"), Alt("an image")),
			want: "<img\talt='an image'\tsrc='/x.png'/>",
		},
		{
			name: "data attribute",
			elem: Span(Data("state", "open")),
			want: "<span\tdata-state='open'></span>",
		},
		{
			name: "numeric value coerced",
			elem: Td(Colspan(2), "wide"),
			want: "<td\tcolspan='2'>wide</td>",
		},
		{
			name: "boolean aria",
			elem: Div(AriaHidden(true)),
			want: "<div\taria-hidden='true'></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.elem.OuterHTML(); got != tt.want {
				t.Errorf("OuterHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilArgsSkipped(t *testing.T) {
	list := Ul(
		Li("always"),
		If(false, Li("never")),
		Unless(false, Li("also always")),
		nil,
	)
	want := "<ul><li>always</li><li>also always</li></ul>"
	if got := list.OuterHTML(); got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
}

func TestSliceArgs(t *testing.T) {
	items := []*dom.Element{Li("one"), Li("two"), nil}
	attrs := []Attr{Class("menu"), {Key: "", Value: "skipped"}}
	list := Ul(attrs, items)
	want := "<ul\tclass='menu'><li>one</li><li>two</li></ul>"
	if got := list.OuterHTML(); got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
}

func TestIfElseWhen(t *testing.T) {
	if got := IfElse(true, Span("yes"), Span("no")).OuterHTML(); got != "<span>yes</span>" {
		t.Errorf("IfElse(true) = %q", got)
	}
	if got := IfElse(false, Span("yes"), Span("no")).OuterHTML(); got != "<span>no</span>" {
		t.Errorf("IfElse(false) = %q", got)
	}

	called := false
	When(false, func() *dom.Element {
		called = true
		return Span("lazy")
	})
	if called {
		t.Error("When(false) evaluated its function")
	}
}

func TestPanicsOnInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		build func()
		check func(error) bool
	}{
		{
			name:  "invalid tag",
			build: func() { E("1bad") },
			check: func(err error) bool {
				var e *dom.InvalidNameError
				return errors.As(err, &e)
			},
		},
		{
			name:  "invalid text child",
			build: func() { P("bad\x00text") },
			check: func(err error) bool {
				var e *dom.InvalidTextError
				return errors.As(err, &e)
			},
		},
		{
			name:  "child on void element",
			build: func() { Br("x") },
			check: func(err error) bool {
				var e *dom.VoidElementError
				return errors.As(err, &e)
			},
		},
		{
			name:  "content on script",
			build: func() { Script("alert(1)") },
			check: func(err error) bool {
				var e *dom.NotEscapableError
				return errors.As(err, &e)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				err, ok := r.(error)
				if !ok || !tt.check(err) {
					t.Errorf("panic value = %v, wrong error type", r)
				}
			}()
			tt.build()
		})
	}
}

func TestTitleAcceptsTextOnly(t *testing.T) {
	title := Title("plain & text")
	if got := title.OuterHTML(); got != "<title>plain &amp; text</title>" {
		t.Errorf("OuterHTML() = %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for element child under <title>")
		}
	}()
	Title(Span("nope"))
}
