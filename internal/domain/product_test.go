package domain

import "testing"

func TestNewCatalogRejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog([]Product{
		{ID: "ebook-1", DisplayName: "One"},
		{ID: "ebook-1", DisplayName: "One again"},
	})
	if err == nil {
		t.Fatal("duplicate product ids must be rejected")
	}
}

func TestNewCatalogRejectsBlankID(t *testing.T) {
	if _, err := NewCatalog([]Product{{ID: "  "}}); err == nil {
		t.Fatal("blank product id must be rejected")
	}
}

func TestCatalogLookupTrimsInput(t *testing.T) {
	catalog, err := NewCatalog([]Product{{ID: "ebook-1", DisplayName: "One"}})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if _, ok := catalog.Get(" ebook-1 "); !ok {
		t.Fatal("lookup should tolerate surrounding whitespace")
	}
	if _, ok := catalog.Get("ebook-2"); ok {
		t.Fatal("unknown id must miss")
	}
}
