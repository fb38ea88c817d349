package tidset

import (
	"testing"
)

func TestTidsetAdd(t *testing.T) {
	tidset := NewTidset(4)
	tidset.Add(2)
	tidset.Add(3)
	tidset.Add(3)
	if ok := tidset.Has(3); !ok {
		t.Fatalf("should be true at tid 3, got %v", ok)
	}
	if ok := tidset.Has(1); ok {
		t.Fatalf("should be false at tid 1, got %v", ok)
	}
	if tidset.Support() != 2 {
		t.Fatalf("support should be 2, got %v", tidset.Support())
	}
}

func TestTidsetJoin(t *testing.T) {
	a := FromTids(6, 0, 1, 2, 5)
	b := FromTids(6, 1, 2, 3)
	ab := a.Join(b)
	if ab.Support() != 2 {
		t.Fatalf("support of the join should be 2, got %v", ab.Support())
	}
	if !ab.(*Tidset).Equals(FromTids(6, 1, 2)) {
		t.Fatalf("join should be {1, 2}, got %v", ab)
	}
	if a.Support() != 4 || b.Support() != 3 {
		t.Fatal("join shouldn't modify its operands")
	}
}

func TestTidsetJoinMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("joining a tidset with a diffset should panic")
		}
	}()
	NewTidset(3).Join(NewDiffset(3))
}

func TestDiffsetScan(t *testing.T) {
	d := NewDiffset(5)
	d.Add(0)
	d.Add(3)
	d.Add(3)
	if d.Support() != 2 {
		t.Fatalf("support should be 2, got %v", d.Support())
	}
	if d.Diff().Count() != 3 {
		t.Fatalf("diffset should hold the 3 other transactions, got %v", d.Diff())
	}
	if !d.Cover().Equal(FromTids(5, 0, 3).Cover()) {
		t.Fatalf("cover should be {0, 3}, got %v", d.Cover())
	}
}

func TestDiffsetJoin(t *testing.T) {
	tids := [][]uint{{0, 1, 2, 5}, {1, 2, 3}, {1, 2, 5}}
	diffsets := make([]*Diffset, len(tids))
	tidsets := make([]*Tidset, len(tids))
	for i := range tids {
		diffsets[i] = NewDiffset(6)
		tidsets[i] = NewTidset(6)
		for _, tid := range tids[i] {
			diffsets[i].Add(tid)
			tidsets[i].Add(tid)
		}
	}
	d01 := diffsets[0].Join(diffsets[1])
	t01 := tidsets[0].Join(tidsets[1])
	if d01.Support() != t01.Support() {
		t.Fatalf("supports should match, got %v and %v", d01.Support(), t01.Support())
	}
	if !d01.Cover().Equal(t01.Cover()) {
		t.Fatalf("covers should match, got %v and %v", d01.Cover(), t01.Cover())
	}
	d02 := diffsets[0].Join(diffsets[2])
	t02 := tidsets[0].Join(tidsets[2])
	d012 := d01.Join(d02)
	t012 := t01.Join(t02)
	if d012.Support() != 2 || t012.Support() != 2 {
		t.Fatalf("support of {0, 1, 2} should be 2, got %v and %v", d012.Support(), t012.Support())
	}
	if !d012.Cover().Equal(t012.Cover()) {
		t.Fatalf("covers should match, got %v and %v", d012.Cover(), t012.Cover())
	}
}

func TestHash(t *testing.T) {
	cover := FromTids(10, 1, 4, 7).Cover()
	if h := Hash(cover, 1000); h != 12 {
		t.Fatalf("hash should be 12, got %v", h)
	}
	if h := Hash(cover, 5); h != 2 {
		t.Fatalf("hash should be 2, got %v", h)
	}
	if h := Hash(NewTidset(10).Cover(), 7); h != 0 {
		t.Fatalf("hash of an empty cover should be 0, got %v", h)
	}
}
