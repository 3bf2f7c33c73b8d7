package models

import "testing"

func TestContractRepository_Fixtures(t *testing.T) {
	repo := NewContractRepository()

	if repo.Count() != 2 {
		t.Fatalf("expected 2 example contracts, got %d", repo.Count())
	}

	c, ok := repo.ByID("47")
	if !ok {
		t.Fatal("contract 47 missing")
	}
	if c.Vendor != "Adobe" {
		t.Fatalf("contract 47 vendor = %q", c.Vendor)
	}

	if _, ok := repo.ByID("999"); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestContractRepository_SortedByVendor(t *testing.T) {
	repo := NewContractRepository()

	sorted := repo.SortedByVendor()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Vendor > sorted[i].Vendor {
			t.Fatalf("contracts not sorted: %q before %q", sorted[i-1].Vendor, sorted[i].Vendor)
		}
	}
}

func TestContract_Document(t *testing.T) {
	repo := NewContractRepository()
	c, _ := repo.ByID("47")

	doc := c.Document()
	if doc["vendor"] != "Adobe" {
		t.Fatalf("document vendor = %v", doc["vendor"])
	}

	partners, ok := doc["partners"].([]interface{})
	if !ok {
		t.Fatalf("partners should be a sequence, got %T", doc["partners"])
	}
	if len(partners) != 3 {
		t.Fatalf("expected 3 partners, got %d", len(partners))
	}

	terms, ok := doc["terms"].(map[string]interface{})
	if !ok {
		t.Fatalf("terms should be a nested mapping, got %T", doc["terms"])
	}
	if _, ok := terms["support"].(map[string]interface{}); !ok {
		t.Fatal("terms.support should be a nested mapping")
	}
}

func TestContract_DisplayString(t *testing.T) {
	c := Contract{Vendor: "Adobe", ID: "47", Start: "2024-01-01", End: "2024-12-31"}
	want := "Adobe (47) 2024-01-01 - 2024-12-31"
	if got := c.DisplayString(); got != want {
		t.Fatalf("display string = %q, want %q", got, want)
	}
}
