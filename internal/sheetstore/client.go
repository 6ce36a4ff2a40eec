// Package sheetstore wraps the Google Sheets values API behind the small
// row-oriented surface the domain services consume.
package sheetstore

import (
	"context"
	"fmt"

	sheets "google.golang.org/api/sheets/v4"
)

// Client provides range-based reads and writes against a spreadsheet.
type Client struct {
	svc *sheets.Service
}

// New creates a client backed by an authorized Sheets service.
func New(svc *sheets.Service) *Client {
	if svc == nil {
		panic("sheetstore: sheets service required")
	}
	return &Client{svc: svc}
}

// Get reads the given A1-notation range and returns its rows as strings.
// Trailing empty cells are omitted by the API, so rows may be ragged.
func (c *Client) Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheetstore: get %s: %w", readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append adds one row after the last row of data in the given range.
func (c *Client) Append(ctx context.Context, spreadsheetID, writeRange string, row []string) error {
	_, err := c.svc.Spreadsheets.Values.
		Append(spreadsheetID, writeRange, valueRange(row)).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheetstore: append %s: %w", writeRange, err)
	}
	return nil
}

// Update overwrites the given range with one row.
func (c *Client) Update(ctx context.Context, spreadsheetID, writeRange string, row []string) error {
	_, err := c.svc.Spreadsheets.Values.
		Update(spreadsheetID, writeRange, valueRange(row)).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheetstore: update %s: %w", writeRange, err)
	}
	return nil
}

func valueRange(row []string) *sheets.ValueRange {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return &sheets.ValueRange{Values: [][]interface{}{cells}}
}
