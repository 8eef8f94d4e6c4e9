package css

import "testing"

func TestNewMediaQuery(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		condition string
		wantRaw   string
		wantType  string
	}{
		{"single", "screen", "(min-width: 48em)", "screen and (min-width: 48em)", "screen"},
		{"no condition", "print", "", "print", "print"},
		{"no type", "", "(orientation: landscape)", "(orientation: landscape)", ""},
		{
			"branches", "screen", "(-webkit-min-device-pixel-ratio: 2), (min-resolution: 192dpi)",
			"screen and (-webkit-min-device-pixel-ratio: 2), screen and (min-resolution: 192dpi)", "screen",
		},
		{"only modifier", "only screen", "(max-device-width: 480px)", "only screen and (max-device-width: 480px)", "screen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mq := NewMediaQuery(tt.mediaType, tt.condition)
			if mq.Raw != tt.wantRaw {
				t.Errorf("Raw = %q, want %q", mq.Raw, tt.wantRaw)
			}
			if mq.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", mq.Type, tt.wantType)
			}
		})
	}
}

func TestStylesheet_WriteTo(t *testing.T) {
	rule := NewRule(ClassSelector("hidden-md-above"), "display", KeywordValue("none !important"))
	sheet := &Stylesheet{}
	sheet.Append(
		StylesheetItem{Rule: &Rule{Selector: ClassSelector("x"), Declarations: []Declaration{
			{Property: "display", Value: KeywordValue("-webkit-box")},
			{Property: "display", Value: KeywordValue("block")},
			{Property: "color", Value: KeywordValue("red")},
		}}},
		StylesheetItem{MediaBlock: &MediaBlock{
			Query: NewMediaQuery("screen", "(min-width: 48em)"),
			Rules: []Rule{rule},
		}},
	)

	want := `.x {
  display: -webkit-box;
  display: block;
  color: red;
}

@media screen and (min-width: 48em) {
  .hidden-md-above {
    display: none !important;
  }
}
`
	if got := sheet.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestRule_GetPropertyLastWins(t *testing.T) {
	rule := Rule{Selector: ClassSelector("x"), Declarations: []Declaration{
		{Property: "display", Value: KeywordValue("-webkit-flex")},
		{Property: "color", Value: KeywordValue("red")},
		{Property: "display", Value: KeywordValue("flex")},
	}}

	v, ok := rule.GetProperty("display")
	if !ok || v.Raw != "flex" {
		t.Errorf("GetProperty(display) = %q, %v; want flex", v.Raw, ok)
	}
	if _, ok := rule.GetProperty("margin"); ok {
		t.Error("GetProperty(margin) must not be found")
	}
}

func TestKeywordValue(t *testing.T) {
	v := KeywordValue("none !important")
	if v.Keyword != "none" {
		t.Errorf("Keyword = %q, want 'none'", v.Keyword)
	}
	if !v.IsKeyword() || v.IsNumeric() {
		t.Error("expected keyword, non numeric value")
	}
}
