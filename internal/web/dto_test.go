package web

import (
	"errors"
	"testing"
)

func Test_listQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   listQuery
		wantErr error
	}{
		{
			name:  "empty",
			query: listQuery{},
		},
		{
			name:  "page",
			query: listQuery{Limit: 50, Offset: 100},
		},
		{
			name:  "max limit",
			query: listQuery{Limit: maxLimit},
		},
		{
			name:    "negative offset",
			query:   listQuery{Offset: -1},
			wantErr: ErrNegativeOffset,
		},
		{
			name:    "limit too big",
			query:   listQuery{Limit: maxLimit + 1},
			wantErr: ErrBadLimit,
		},
		{
			name:    "negative limit",
			query:   listQuery{Limit: -5, Offset: -5},
			wantErr: ErrBadLimit,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.query.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func Test_listQuery_window(t *testing.T) {
	tests := []struct {
		name      string
		query     listQuery
		n         int
		wantStart int
		wantEnd   int
	}{
		{name: "all", query: listQuery{}, n: 10, wantStart: 0, wantEnd: 10},
		{name: "first page", query: listQuery{Limit: 3}, n: 10, wantStart: 0, wantEnd: 3},
		{name: "last page", query: listQuery{Limit: 3, Offset: 9}, n: 10, wantStart: 9, wantEnd: 10},
		{name: "past the end", query: listQuery{Limit: 3, Offset: 20}, n: 10, wantStart: 10, wantEnd: 10},
		{name: "empty table", query: listQuery{Limit: 3}, n: 0, wantStart: 0, wantEnd: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, end := tt.query.window(tt.n)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("window() = %d, %d, want %d, %d", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
