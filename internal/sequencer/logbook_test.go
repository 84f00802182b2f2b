package sequencer

import "testing"

func TestLogBookAppendListClear(t *testing.T) {
	t.Parallel()

	book := NewLogBook()
	book.Append(LogEntry{ID: 1, Index: 1, Message: "a"})
	book.Append(LogEntry{ID: 2, Index: 2, Message: "b"})

	list := book.List()
	if len(list) != 2 || book.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}

	list[0].Message = "mutated"
	if got := book.List()[0].Message; got != "a" {
		t.Fatalf("List() must return a copy, got %q", got)
	}

	book.Clear()
	if book.Len() != 0 {
		t.Fatalf("expected empty book after Clear, got %d", book.Len())
	}
}
