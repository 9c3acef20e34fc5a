package repository

import "testing"

func TestLikeOperatorByDialect(t *testing.T) {
	cases := []struct {
		dialect string
		want    string
	}{
		{"sqlite", "LIKE"},
		{"postgres", "ILIKE"},
		{"postgresql", "ILIKE"},
		{"  Postgres  ", "ILIKE"},
		{"", "LIKE"},
	}
	for _, tc := range cases {
		if got := likeOperatorByDialect(tc.dialect); got != tc.want {
			t.Fatalf("dialect %q operator want %s got %s", tc.dialect, tc.want, got)
		}
	}
}

func TestDBDialectNameNilDefaultsSqlite(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("nil db dialect want sqlite got %s", got)
	}
}
