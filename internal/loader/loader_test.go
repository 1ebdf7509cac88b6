package loader

import (
	"errors"
	"strings"
	"testing"
	"time"

	"SwapDesk/internal/domain/models"
)

var tenors = []models.Tenor{models.Tenor3M, models.Tenor6M}

func TestReadKeepsOnlyCompleteRows(t *testing.T) {
	csv := strings.Join([]string{
		"Date,ON,3M,6M",
		"02.01.1990,14.9,15.1,15.2",
		"03.01.1990,14.9,,15.2",
		"04.01.1990,14.9,15.0,",
		"05.01.1990,,15.0,15.1",
	}, "\n")

	got, err := Read(strings.NewReader(csv), "", tenors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 complete rows, got %d", len(got))
	}
	if got[0].Rates[models.Tenor3M] != 15.1 || got[0].Rates[models.Tenor6M] != 15.2 {
		t.Fatalf("unexpected rates %v", got[0].Rates)
	}
	// Row missing only a non-requested tenor still survives.
	if !got[1].Date.Equal(time.Date(1990, time.January, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got[1].Date)
	}
}

func TestReadSortsAscending(t *testing.T) {
	csv := strings.Join([]string{
		"Date,3M,6M",
		"30.06.1991,11.2,11.4",
		"02.01.1990,15.1,15.2",
		"15.03.1990,15.0,15.1",
	}, "\n")

	got, err := Read(strings.NewReader(csv), "", tenors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Date.Before(got[i].Date) {
			t.Fatalf("series not ascending at %d: %v >= %v", i, got[i-1].Date, got[i].Date)
		}
	}
}

func TestReadMalformedDate(t *testing.T) {
	csv := "Date,3M,6M\n1990-01-02,15.1,15.2\n"

	_, err := Read(strings.NewReader(csv), "", tenors)
	var mde *MalformedDateError
	if !errors.As(err, &mde) {
		t.Fatalf("expected MalformedDateError, got %v", err)
	}
	if mde.Value != "1990-01-02" {
		t.Fatalf("unexpected value %q", mde.Value)
	}
}

func TestReadNoCompleteRows(t *testing.T) {
	csv := "Date,3M,6M\n02.01.1990,,15.2\n03.01.1990,15.1,\n"

	_, err := Read(strings.NewReader(csv), "", tenors)
	if !errors.Is(err, ErrNoCompleteRows) {
		t.Fatalf("expected ErrNoCompleteRows, got %v", err)
	}
}

func TestReadMissingColumn(t *testing.T) {
	csv := "Date,3M\n02.01.1990,15.1\n"

	_, err := Read(strings.NewReader(csv), "", tenors)
	if err == nil || !strings.Contains(err.Error(), "6M") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestReadDuplicateDate(t *testing.T) {
	csv := "Date,3M,6M\n02.01.1990,15.1,15.2\n02.01.1990,15.0,15.1\n"

	_, err := Read(strings.NewReader(csv), "", tenors)
	if err == nil || !strings.Contains(err.Error(), "duplicate date") {
		t.Fatalf("expected duplicate date error, got %v", err)
	}
}
