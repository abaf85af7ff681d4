package calendarview_test

import (
	"testing"

	"github.com/go-theft-auto/calendarview"
)

func TestClosestPageIndex(t *testing.T) {
	tests := []struct {
		offset, pageSize float64
		want             int
	}{
		{0, 100, 0},
		{-49, 100, 0},
		{-51, 100, -1},
		{51, 100, 1},
		{799, 100, 8},
		{801, 100, 8},
		{150, 100, 2},
		{-150, 100, -2},
		{500, 0, 0},
	}
	for _, tt := range tests {
		if got := calendarview.ClosestPageIndex(tt.offset, tt.pageSize); got != tt.want {
			t.Errorf("ClosestPageIndex(%v, %v): expected %d, got %d", tt.offset, tt.pageSize, tt.want, got)
		}
	}
}

func TestClosestPageOffset(t *testing.T) {
	tests := []struct {
		name     string
		target   float64
		touchUp  float64
		velocity float64
		pageSize float64
		want     float64
	}{
		{"no velocity rounds up", 75, 75, 0, 100, 100},
		{"no velocity rounds down", 25, 25, 0, 100, 0},
		{"forward fling reaches next page", 90, 40, 5, 100, 100},
		{"short forward fling still advances", 45, 40, 5, 100, 100},
		{"long forward fling follows target", 420, 40, 5, 100, 400},
		{"backward fling", 10, 60, -5, 100, 0},
		{"long backward fling follows target", -250, 60, -5, 100, -300},
		{"velocity under threshold", 75, 10, 0.0005, 100, 100},
		{"zero page size", 75, 10, 5, 0, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendarview.ClosestPageOffset(tt.target, tt.touchUp, tt.velocity, tt.pageSize)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAdjacentPageOffset(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		target   float64
		velocity float64
		pageSize float64
		want     float64
	}{
		{"forward without velocity", 0, 30, 0, 100, 100},
		{"backward without velocity", 2, 150, 0, 100, 100},
		{"forward with velocity", 1, 180, 5, 100, 200},
		{"far fling moves one page", 1, 900, 5, 100, 200},
		{"backward with velocity", 3, 250, -5, 100, 200},
		{"target behind forward fling", 1, 50, 5, 100, 100},
		{"target ahead of backward fling", 1, 150, -5, 100, 100},
		{"target on previous page", 3, 300, 0, 100, 300},
		{"zero page size", 3, 42, 5, 0, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendarview.AdjacentPageOffset(tt.previous, tt.target, tt.velocity, tt.pageSize)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
