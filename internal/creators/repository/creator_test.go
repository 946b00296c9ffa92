package repository

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	creatorserrors "creatorverse/internal/creators/errors"
	"creatorverse/pkg/model"
)

func TestSortFor(t *testing.T) {
	tests := []struct {
		order     model.SortOrder
		wantField string
		wantDir   int
	}{
		{model.SortCreatedAtAsc, "created_at", 1},
		{model.SortCreatedAtDesc, "created_at", -1},
		{model.SortNameAsc, "name", 1},
		{"", "created_at", 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			got := sortFor(tt.order)
			if len(got) != 2 {
				t.Fatalf("expected primary key plus _id tiebreak, got %v", got)
			}
			if got[0].Key != tt.wantField || got[0].Value != tt.wantDir {
				t.Errorf("expected %s %d, got %v", tt.wantField, tt.wantDir, got[0])
			}
			if got[1].Key != "_id" {
				t.Errorf("expected _id tiebreak, got %v", got[1])
			}
		})
	}
}

func TestSearchFilter(t *testing.T) {
	if f := searchFilter("   "); len(f) != 0 {
		t.Errorf("blank search should match everything, got %v", f)
	}

	f := searchFilter(" a.b ")
	cond, ok := f["name"].(bson.M)
	if !ok {
		t.Fatalf("expected name condition, got %v", f)
	}
	re, ok := cond["$regex"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex, got %v", cond)
	}
	if re.Pattern != `a\.b` || re.Options != "i" {
		t.Errorf("expected escaped case-insensitive pattern, got %+v", re)
	}
}

func TestObjectID(t *testing.T) {
	if _, err := objectID("507f1f77bcf86cd799439011"); err != nil {
		t.Errorf("valid hex rejected: %v", err)
	}
	if _, err := objectID("not-an-id"); !errors.Is(err, creatorserrors.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}
