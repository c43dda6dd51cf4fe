package core

import "testing"

func pickerLabels(p *Picker) []string {
	items := p.Items()
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestPickerSubsequenceRanking(t *testing.T) {
	p := NewPicker("sections", []PickerItem{
		{ID: "0", Label: "Computers"},
		{ID: "1", Label: "Women's goods"},
		{ID: "2", Label: "Men's goods"},
		{ID: "3", Label: "Skincare"},
	})
	for _, r := range "men" {
		p.HandleKey(string(r))
	}
	got := pickerLabels(p)
	if len(got) != 2 || got[0] != "Men's goods" || got[1] != "Women's goods" {
		t.Fatalf("unexpected ranking %v", got)
	}
}

func TestPickerToleratesTypos(t *testing.T) {
	p := NewPicker("sections", []PickerItem{
		{ID: "0", Label: "Computers"},
		{ID: "1", Label: "Books"},
	})
	p.SetQuery("bookz")
	got := pickerLabels(p)
	if len(got) != 1 || got[0] != "Books" {
		t.Fatalf("expected typo match on Books, got %v", got)
	}
	p.SetQuery("xyzzy")
	if len(p.Items()) != 0 {
		t.Fatalf("expected no match for unrelated query")
	}
}

func TestPickerKeysMoveSelectAndCancel(t *testing.T) {
	p := NewPicker("sections", []PickerItem{{ID: "a", Label: "Alpha"}, {ID: "b", Label: "Beta"}})
	if res := p.HandleKey("up"); res.Action != PickerActionNone {
		t.Fatalf("up at top should do nothing")
	}
	if res := p.HandleKey("down"); res.Action != PickerActionMoved {
		t.Fatalf("down should move")
	}
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "b" {
		t.Fatalf("expected Beta selected, got %+v", res)
	}
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatalf("esc should cancel")
	}
}

func TestPickerBackspaceAndEmptySelection(t *testing.T) {
	p := NewPicker("sections", []PickerItem{{ID: "a", Label: "Alpha"}})
	p.HandleKey("q")
	p.HandleKey("q")
	if len(p.Items()) != 0 {
		t.Fatalf("qq should filter everything out")
	}
	if res := p.HandleKey("enter"); res.Action != PickerActionNone {
		t.Fatalf("enter with nothing listed should do nothing")
	}
	p.HandleKey("backspace")
	p.HandleKey("backspace")
	if p.Query() != "" || len(p.Items()) != 1 {
		t.Fatalf("expected query cleared, got %q", p.Query())
	}
}
