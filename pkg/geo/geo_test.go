package geo

import (
	"math"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name       string
		bounds     Bounds
		rows, cols int
	}{
		{"default grid", Chuncheon.Bounds, 4, 4},
		{"single tile", Chuncheon.Bounds, 1, 1},
		{"uneven grid", NewBounds(-1.5, 10, 2.25, 13.3), 3, 7},
		{"non positive treated as one", NewBounds(0, 0, 1, 1), 0, -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tiles := Split(tc.bounds, tc.rows, tc.cols)
			rows, cols := max(tc.rows, 1), max(tc.cols, 1)
			if len(tiles) != rows*cols {
				t.Fatalf("len(Split) = %d; want %d", len(tiles), rows*cols)
			}

			minLat, minLon := math.Inf(1), math.Inf(1)
			maxLat, maxLon := math.Inf(-1), math.Inf(-1)
			area := 0.0
			for _, tile := range tiles {
				minLat = math.Min(minLat, tile.SW.Lat)
				minLon = math.Min(minLon, tile.SW.Lon)
				maxLat = math.Max(maxLat, tile.NE.Lat)
				maxLon = math.Max(maxLon, tile.NE.Lon)
				area += (tile.NE.Lat - tile.SW.Lat) * (tile.NE.Lon - tile.SW.Lon)
			}
			if minLat != tc.bounds.SW.Lat || minLon != tc.bounds.SW.Lon ||
				maxLat != tc.bounds.NE.Lat || maxLon != tc.bounds.NE.Lon {
				t.Fatalf("tiles span [%f,%f → %f,%f]; want %s", minLat, minLon, maxLat, maxLon, tc.bounds)
			}
			want := (tc.bounds.NE.Lat - tc.bounds.SW.Lat) * (tc.bounds.NE.Lon - tc.bounds.SW.Lon)
			if math.Abs(area-want) > 1e-9 {
				t.Fatalf("tile area sum = %f; want %f (gap or overlap)", area, want)
			}
		})
	}
}

func TestSplitOrder(t *testing.T) {
	tiles := Split(NewBounds(0, 0, 2, 2), 2, 2)
	want := []Coordinates{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, w := range want {
		if tiles[i].SW != w {
			t.Errorf("tile %d SW = %+v; want %+v", i, tiles[i].SW, w)
		}
	}
}

func TestDistance(t *testing.T) {
	here := Coordinates{Lat: 37.8866, Lon: 127.7354}
	cases := []struct {
		name    string
		a       Coordinates
		ref     *Coordinates
		want    float64
		epsilon float64
	}{
		{"same point", here, &here, 0, 1},
		{"one degree of latitude", Coordinates{0, 0}, &Coordinates{1, 0}, 111195, 1},
		{"no reference", here, nil, math.Inf(1), 0},
		{"nan coordinate", Coordinates{math.NaN(), 127}, &here, math.Inf(1), 0},
		{"infinite reference", here, &Coordinates{math.Inf(1), 0}, math.Inf(1), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.a, tc.ref)
			if math.IsInf(tc.want, 1) {
				if !math.IsInf(got, 1) {
					t.Fatalf("Distance = %f; want +Inf", got)
				}
				return
			}
			if math.Abs(got-tc.want) > tc.epsilon {
				t.Fatalf("Distance = %f; want %f±%f", got, tc.want, tc.epsilon)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name    string
		in      Coordinates
		want    Coordinates
		wantErr bool
	}{
		{"valid", Coordinates{37.88, 127.73}, Coordinates{37.88, 127.73}, false},
		{"swapped", Coordinates{127.73, 37.88}, Coordinates{37.88, 127.73}, false},
		{"out of range", Coordinates{95, 200}, Coordinates{}, true},
		{"nan", Coordinates{math.NaN(), 127}, Coordinates{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Normalize(%+v) err = %v; wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%+v) = %+v; want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRegion_InRegion(t *testing.T) {
	cases := []struct {
		name    string
		point   Coordinates
		address string
		want    bool
	}{
		{"inside box", Coordinates{37.88, 127.73}, "", true},
		{"outside box, address matches", Coordinates{37.70, 127.73}, "강원 춘천시 동면 1", true},
		{"outside box and address", Coordinates{37.56, 126.97}, "서울 중구 세종대로 110", false},
		{"invalid point, address matches", Coordinates{math.NaN(), 0}, "강원특별자치도 춘천시 중앙로 1", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Chuncheon.InRegion(tc.point, tc.address); got != tc.want {
				t.Fatalf("InRegion(%+v, %q) = %v; want %v", tc.point, tc.address, got, tc.want)
			}
		})
	}
}
