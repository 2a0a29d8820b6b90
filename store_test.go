package rebalance

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestStore_SaveLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "portfolio.csv"))

	saved := Portfolio{
		Cash:     EUR(101.5),
		Holdings: Holdings{"GLBX": 3, "ACME": 12},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !loaded.Cash.Equal(saved.Cash) {
		t.Errorf("cash = %s, want %s", loaded.Cash, saved.Cash)
	}
	if !reflect.DeepEqual(loaded.Holdings, saved.Holdings) {
		t.Errorf("holdings = %v, want %v", loaded.Holdings, saved.Holdings)
	}
}

func TestStore_FileShape(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "portfolio.csv"))
	if err := store.Save(Portfolio{Cash: EUR(101.5), Holdings: Holdings{"GLBX": 3, "ACME": 12}}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	content, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	// CASH row first, then tickers ascending: a stable, diff-friendly file.
	want := "CASH,101.5\nACME,12\nGLBX,3\n"
	if string(content) != want {
		t.Errorf("file content = %q, want %q", content, want)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "portfolio.csv"))
	_, err := store.Load()
	if !errors.Is(err, ErrMissingState) {
		t.Errorf("Load() error = %v, want %v", err, ErrMissingState)
	}
}

func TestStore_SaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "portfolio.csv"))

	if err := store.Save(NewPortfolio(EUR(1))); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if err := store.Save(NewPortfolio(EUR(2))); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !loaded.Cash.Equal(EUR(2)) {
		t.Errorf("cash = %s, want %s", loaded.Cash, EUR(2))
	}

	// No temporary file left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".portfolio-") {
			t.Errorf("temporary file %q left behind", e.Name())
		}
	}
}

func TestDecodePortfolio_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "Missing CASH row",
			content: "ACME,12\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Duplicate CASH row",
			content: "CASH,1\nCASH,2\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Duplicate ticker",
			content: "CASH,1\nACME,12\nACME,3\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Negative quantity",
			content: "CASH,1\nACME,-12\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Negative cash",
			content: "CASH,-1\n",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Fractional quantity",
			content: "CASH,1\nACME,1.5\n",
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodePortfolio(strings.NewReader(tc.content))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("decodePortfolio() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
