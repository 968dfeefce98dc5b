package validate

import "testing"

func TestChildPathEscapesSpecialCharacters(t *testing.T) {
	got := childPath("/properties", "a/b~c")
	want := "/properties/a~1b~0c"
	if got != want {
		t.Fatalf("childPath: got %q, want %q", got, want)
	}
}

func TestIndexPathAppendsNumericToken(t *testing.T) {
	got := indexPath("/allOf", 2)
	want := "/allOf/2"
	if got != want {
		t.Fatalf("indexPath: got %q, want %q", got, want)
	}
}
