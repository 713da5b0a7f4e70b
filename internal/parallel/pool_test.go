package parallel

import (
	"sync/atomic"
	"testing"
)

func TestExecuteAllRunsEverything(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var count atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { count.Add(1) }
	}
	p.ExecuteAll(work)

	if got := count.Load(); got != 100 {
		t.Errorf("ExecuteAll ran %d items, want 100", got)
	}
}

func TestExecuteAllEmpty(t *testing.T) {
	p := NewWorkerPool(2)
	defer p.Close()
	p.ExecuteAll(nil) // must not hang or panic
}

func TestCloseIdempotent(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()
	p.Close()
	if p.IsRunning() {
		t.Error("pool still running after Close")
	}
	p.ExecuteAll([]func(){func() { t.Error("work ran after Close") }})
}

func TestDefaultWorkers(t *testing.T) {
	p := NewWorkerPool(0)
	defer p.Close()
	if p.Workers() <= 0 {
		t.Errorf("Workers() = %d, want > 0", p.Workers())
	}
}

func TestTilesCoverScreen(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		wantTiles     int
		wantLastW     int
		wantLastH     int
	}{
		{"exact", 128, 128, 4, 64, 64},
		{"ragged", 130, 70, 6, 2, 6},
		{"single", 10, 10, 1, 10, 10},
		{"empty", 0, 100, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := Tiles(tt.w, tt.h)
			if len(tiles) != tt.wantTiles {
				t.Fatalf("len(tiles) = %d, want %d", len(tiles), tt.wantTiles)
			}
			if tt.wantTiles == 0 {
				return
			}
			last := tiles[len(tiles)-1]
			if last.Width != tt.wantLastW || last.Height != tt.wantLastH {
				t.Errorf("last tile %dx%d, want %dx%d", last.Width, last.Height, tt.wantLastW, tt.wantLastH)
			}
			area := 0
			for _, tile := range tiles {
				area += tile.Width * tile.Height
			}
			if area != tt.w*tt.h {
				t.Errorf("tile area sum = %d, want %d", area, tt.w*tt.h)
			}
		})
	}
}
