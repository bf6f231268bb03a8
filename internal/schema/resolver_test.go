package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctstest25/Avio-Aero-Obrada/internal/passenger"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/xlsxreader"
)

func standardTable() *xlsxreader.Table {
	return &xlsxreader.Table{Rows: [][]string{
		{"Flight manifest"},
		{},
		{},
		{"Passenger Surname", "Passenger Name", "Title", "Passport", "Nationality", "Pass Expire Date", "Birthday"},
		{"Smith", "John", "MR", "AB12345", "Bosnia", "15/09/2030", "01/02/1990"},
		{"Doe", "Jane", "MRS", "CD67890", "Germany", "01/01/2031", "02/03/1985"},
	}}
}

func TestResolveStandardLayout(t *testing.T) {
	r := NewResolver()

	res, err := r.Resolve(standardTable())
	require.NoError(t, err)

	assert.Equal(t, LayoutStandard, res.Layout)
	require.Len(t, res.Records, 2)

	assert.Equal(t, passenger.Record{
		Surname:        "Smith",
		GivenName:      "John",
		Title:          "MR",
		Passport:       "AB12345",
		NationalityRaw: "Bosnia",
		PassExpireDate: "15/09/2030",
		Birthday:       "01/02/1990",
	}, res.Records[0])
	assert.Equal(t, "Doe", res.Records[1].Surname)
}

func TestResolveStandardLayoutReorderedColumns(t *testing.T) {
	// The standard layout matches by header name, not position.
	table := &xlsxreader.Table{Rows: [][]string{
		{},
		{},
		{},
		{"Birthday", "Title", "Passenger Name", "Passenger Surname", "Passport", "Nationality", "Pass Expire Date"},
		{"01/02/1990", "MR", "John", "Smith", "AB12345", "Bosnia", "15/09/2030"},
	}}

	r := NewResolver()
	res, err := r.Resolve(table)
	require.NoError(t, err)

	assert.Equal(t, LayoutStandard, res.Layout)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Smith", res.Records[0].Surname)
	assert.Equal(t, "John", res.Records[0].GivenName)
	assert.Equal(t, "01/02/1990", res.Records[0].Birthday)
}

func TestResolveFallbackLayout(t *testing.T) {
	// No named header; 8 positional columns in the fallback field order:
	// Reservation, Surname, Name, Title, Nationality, Passport, Birthday,
	// Pass Expire Date.
	table := &xlsxreader.Table{Rows: [][]string{
		{"Agency export"},
		{},
		{},
		{"RES-1", "Smith", "John", "MR", "Bosnia", "AB12345", "01/02/1990", "15/09/2030"},
		{"RES-2", "Doe", "Jane", "MRS", "Germany", "CD67890", "02/03/1985", "01/01/2031"},
	}}

	r := NewResolver()
	res, err := r.Resolve(table)
	require.NoError(t, err)

	assert.Equal(t, LayoutFallback, res.Layout)
	require.Len(t, res.Records, 2)

	// The positional order differs from the standard layout: nationality
	// comes before passport, birthday before expiry.
	assert.Equal(t, passenger.Record{
		Surname:        "Smith",
		GivenName:      "John",
		Title:          "MR",
		NationalityRaw: "Bosnia",
		Passport:       "AB12345",
		Birthday:       "01/02/1990",
		PassExpireDate: "15/09/2030",
	}, res.Records[0])
}

func TestResolveSkipsBlankRows(t *testing.T) {
	table := standardTable()
	table.Rows = append(table.Rows[:5], append([][]string{{"", "", ""}}, table.Rows[5:]...)...)

	r := NewResolver()
	res, err := r.Resolve(table)
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
}

func TestResolveFailsOnUnknownLayout(t *testing.T) {
	// Too narrow for the positional layout and no named header.
	table := &xlsxreader.Table{Rows: [][]string{
		{"a", "b"},
		{"c", "d"},
		{"e", "f"},
		{"g", "h"},
	}}

	r := NewResolver()
	res, err := r.Resolve(table)
	require.Error(t, err)
	assert.Nil(t, res)

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Len(t, resErr.Attempts, 2)
}

func TestResolveFailsOnEmptyTable(t *testing.T) {
	r := NewResolver()

	_, err := r.Resolve(&xlsxreader.Table{})

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
}

func TestAvioRows(t *testing.T) {
	table := &xlsxreader.Table{Rows: [][]string{
		{"R1", "MR", "Smith", "John"},
		{"R1", "CHD", "Smith", "Tom"},
		{"", "MRS", "Doe", "Jane"},
	}}

	rows := AvioRows(table)
	require.Len(t, rows, 3)
	assert.Equal(t, passenger.AvioRecord{
		Reservation: "R1", Title: "MR", Surname: "Smith", Name: "John",
	}, rows[0])
}

// Rows missing the surname or the given name are dropped before processing;
// a filtering invariant, not a validation warning.
func TestAvioRowsDropsNamelessRows(t *testing.T) {
	table := &xlsxreader.Table{Rows: [][]string{
		{"R1", "MR", "Smith", "John"},
		{"R2", "MR", "", "John"},
		{"R3", "MR", "Smith", ""},
		{"R4", "MR", "nan", "John"},
		{"R5", "MR"},
		{"R6", "MRS", "Doe", "Jane"},
	}}

	rows := AvioRows(table)
	require.Len(t, rows, 2)
	assert.Equal(t, "Smith", rows[0].Surname)
	assert.Equal(t, "Doe", rows[1].Surname)
}
