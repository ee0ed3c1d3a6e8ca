package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state State
		query string
	}{
		{"default", Default(), ""},
		{"query and brand", State{Query: "라떼", Region: All, Brand: "chain", Sort: SortPopularity}, "brand=chain&q=%EB%9D%BC%EB%96%BC"},
		{"everything", State{Query: "a&b", Region: "효자1동", Brand: "independent", Radius: 1500, Sort: SortNearest, FavoritesOnly: true}, ""},
		{"unknown region", State{Region: "", Brand: All, Sort: SortName}, "region=&sort=name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Save(tt.state)
			if tt.query != "" || tt.name == "default" {
				assert.Equal(t, tt.query, v.Encode())
			}
			assert.Equal(t, tt.state, Load(v))
			assert.Equal(t, tt.state, ParseQuery("?"+v.Encode()))
			assert.Equal(t, v, Save(Load(v)), "save is idempotent")
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want func(*State)
	}{
		{"absent keys keep defaults", "", func(*State) {}},
		{"unrecognized keys ignored", "page=3&zoom=9", func(*State) {}},
		{"invalid enums ignored", "brand=franchise&sort=random", func(*State) {}},
		{"radius all", "r=all", func(*State) {}},
		{"radius metres", "r=3000", func(s *State) { s.Radius = 3000 }},
		{"bad radius", "r=far", func(*State) {}},
		{"fav true", "fav=true", func(s *State) { s.FavoritesOnly = true }},
		{"fav zero", "fav=0", func(*State) {}},
		{"sort recent", "sort=recent", func(s *State) { s.Sort = SortRecent }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.raw)
			assert.NoError(t, err)
			want := Default()
			tt.want(&want)
			assert.Equal(t, want, Load(v))
		})
	}
}
